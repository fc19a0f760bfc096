package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
)

// CreateTipoDocumentoRequest holds the client-settable document-type fields.
type CreateTipoDocumentoRequest struct {
	Nombre      string `json:"nombre" db:"nombre" validate:"required,max=20"`
	Abreviatura string `json:"abreviatura" db:"abreviatura" validate:"required,max=2"`
}

// NewTipoDocumentoService constructs the tipo_documento service.
func NewTipoDocumentoService(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger) *CrudService[CreateTipoDocumentoRequest, models.TipoDocumento] {
	return NewCrudService[CreateTipoDocumentoRequest, models.TipoDocumento](repository.NewTipoDocumentoRepository(db), "tipo_documento", validate, logger)
}
