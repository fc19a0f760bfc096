package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
)

// CreateAsignaturaRequest holds the client-settable subject fields.
type CreateAsignaturaRequest struct {
	IDArea int    `json:"idArea" db:"id_area" validate:"required"`
	Nombre string `json:"nombre" db:"nombre" validate:"required,max=50"`
	Codigo string `json:"codigo" db:"codigo" validate:"required,max=20"`
}

// NewAsignaturaService constructs the asignatura service.
func NewAsignaturaService(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger) *CrudService[CreateAsignaturaRequest, models.Asignatura] {
	return NewCrudService[CreateAsignaturaRequest, models.Asignatura](repository.NewAsignaturaRepository(db), "asignatura", validate, logger)
}
