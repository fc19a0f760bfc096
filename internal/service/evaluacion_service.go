package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
)

// CreateEvaluacionRequest holds the client-settable assessment fields.
// Porcentaje is a pointer so a weight of zero still passes required.
type CreateEvaluacionRequest struct {
	IDGradoAsignatura int         `json:"idGradoAsignatura" db:"id_grado_asignatura" validate:"required"`
	Tipo              string      `json:"tipo" db:"tipo" validate:"required,max=50"`
	Fecha             models.Date `json:"fecha" db:"fecha" validate:"required"`
	Descripcion       *string     `json:"descripcion" db:"descripcion"`
	Porcentaje        *float64    `json:"porcentaje" db:"porcentaje" validate:"required,gte=0,lte=100"`
}

// NewEvaluacionService constructs the evaluacion service.
func NewEvaluacionService(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger) *CrudService[CreateEvaluacionRequest, models.Evaluacion] {
	return NewCrudService[CreateEvaluacionRequest, models.Evaluacion](repository.NewEvaluacionRepository(db), "evaluacion", validate, logger)
}
