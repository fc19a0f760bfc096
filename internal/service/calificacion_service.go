package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
)

// CreateCalificacionRequest records a score. Valor is a pointer so a grade
// of zero still passes required; the [0, 5] bound is also enforced by the
// database check constraint.
type CreateCalificacionRequest struct {
	IDEstudiante  int      `json:"idEstudiante" db:"id_estudiante" validate:"required"`
	IDEvaluacion  int      `json:"idEvaluacion" db:"id_evaluacion" validate:"required"`
	Valor         *float64 `json:"valor" db:"valor" validate:"required,gte=0,lte=5"`
	Observaciones *string  `json:"observaciones" db:"observaciones"`
}

// NewCalificacionService constructs the calificacion service.
func NewCalificacionService(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger) *CrudService[CreateCalificacionRequest, models.Calificacion] {
	return NewCrudService[CreateCalificacionRequest, models.Calificacion](repository.NewCalificacionRepository(db), "calificacion", validate, logger)
}
