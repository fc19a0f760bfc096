package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
)

// CreateDocenteAsignaturaRequest links a docente to an asignatura.
type CreateDocenteAsignaturaRequest struct {
	IDDocente    int `json:"idDocente" db:"id_docente" validate:"required"`
	IDAsignatura int `json:"idAsignatura" db:"id_asignatura" validate:"required"`
}

// NewDocenteAsignaturaService constructs the docente-asignatura service.
func NewDocenteAsignaturaService(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger) *CrudService[CreateDocenteAsignaturaRequest, models.DocenteAsignatura] {
	return NewCrudService[CreateDocenteAsignaturaRequest, models.DocenteAsignatura](repository.NewDocenteAsignaturaRepository(db), "docente_asignatura", validate, logger)
}
