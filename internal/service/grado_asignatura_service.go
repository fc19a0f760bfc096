package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
)

// CreateGradoAsignaturaRequest assigns an asignatura to a grado, optionally
// naming the docente who teaches it there.
type CreateGradoAsignaturaRequest struct {
	IDGrado      int  `json:"idGrado" db:"id_grado" validate:"required"`
	IDAsignatura int  `json:"idAsignatura" db:"id_asignatura" validate:"required"`
	IDDocente    *int `json:"idDocente" db:"id_docente"`
}

// NewGradoAsignaturaService constructs the grado-asignatura service.
func NewGradoAsignaturaService(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger) *CrudService[CreateGradoAsignaturaRequest, models.GradoAsignatura] {
	return NewCrudService[CreateGradoAsignaturaRequest, models.GradoAsignatura](repository.NewGradoAsignaturaRepository(db), "grado_asignatura", validate, logger)
}
