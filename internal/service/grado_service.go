package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
)

// CreateGradoRequest holds the client-settable grade-level fields.
type CreateGradoRequest struct {
	Nombre      string  `json:"nombre" db:"nombre" validate:"required,max=20"`
	Nivel       string  `json:"nivel" db:"nivel" validate:"required,max=20"`
	Descripcion *string `json:"descripcion" db:"descripcion" validate:"omitempty,max=50"`
}

// NewGradoService constructs the grado service.
func NewGradoService(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger) *CrudService[CreateGradoRequest, models.Grado] {
	return NewCrudService[CreateGradoRequest, models.Grado](repository.NewGradoRepository(db), "grado", validate, logger)
}
