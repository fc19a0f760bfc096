package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
)

// CreateAcudienteRequest holds the client-settable guardian fields.
type CreateAcudienteRequest struct {
	IDTipoDocumento int     `json:"idTipoDocumento" db:"id_tipo_documento" validate:"required"`
	NumeroDocumento string  `json:"numeroDocumento" db:"numero_documento" validate:"required,max=10"`
	Genero          string  `json:"genero" db:"genero" validate:"required,max=20"`
	Nombres         string  `json:"nombres" db:"nombres" validate:"required,max=50"`
	Apellidos       string  `json:"apellidos" db:"apellidos" validate:"required,max=50"`
	Telefono        *string `json:"telefono" db:"telefono" validate:"omitempty,max=15"`
	Correo          *string `json:"correo" db:"correo" validate:"omitempty,email,max=30"`
}

// NewAcudienteService constructs the acudiente service.
func NewAcudienteService(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger) *CrudService[CreateAcudienteRequest, models.Acudiente] {
	return NewCrudService[CreateAcudienteRequest, models.Acudiente](repository.NewAcudienteRepository(db), "acudiente", validate, logger)
}
