package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
)

// CreateRolRequest holds the client-settable role fields.
type CreateRolRequest struct {
	Nombre      string  `json:"nombre" db:"nombre" validate:"required,max=20"`
	Descripcion *string `json:"descripcion" db:"descripcion" validate:"omitempty,max=100"`
}

// NewRolService constructs the rol service.
func NewRolService(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger) *CrudService[CreateRolRequest, models.Rol] {
	return NewCrudService[CreateRolRequest, models.Rol](repository.NewRolRepository(db), "rol", validate, logger)
}
