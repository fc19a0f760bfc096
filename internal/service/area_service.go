package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
)

// CreateAreaRequest holds the client-settable area fields.
type CreateAreaRequest struct {
	Nombre      string  `json:"nombre" db:"nombre" validate:"required,max=50"`
	Descripcion *string `json:"descripcion" db:"descripcion" validate:"omitempty,max=50"`
}

// NewAreaService constructs the area service.
func NewAreaService(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger) *CrudService[CreateAreaRequest, models.Area] {
	return NewCrudService[CreateAreaRequest, models.Area](repository.NewAreaRepository(db), "area", validate, logger)
}
