package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
)

// CreateDocenteRequest holds the client-settable teacher fields. The usuario
// link is optional; hire date is required, birth date is not.
type CreateDocenteRequest struct {
	IDUsuario         *int         `json:"idUsuario" db:"id_usuario"`
	IDTipoDocumento   int          `json:"idTipoDocumento" db:"id_tipo_documento" validate:"required"`
	NumeroDocumento   string       `json:"numeroDocumento" db:"numero_documento" validate:"required,max=10"`
	Nombres           string       `json:"nombres" db:"nombres" validate:"required,max=50"`
	Apellidos         string       `json:"apellidos" db:"apellidos" validate:"required,max=50"`
	Telefono          *string      `json:"telefono" db:"telefono" validate:"omitempty,max=15"`
	Correo            *string      `json:"correo" db:"correo" validate:"omitempty,email,max=50"`
	FechaNacimiento   *models.Date `json:"fechaNacimiento" db:"fecha_nacimiento"`
	Genero            *string      `json:"genero" db:"genero" validate:"omitempty,max=20"`
	FechaContratacion models.Date  `json:"fechaContratacion" db:"fecha_contratacion" validate:"required"`
}

// NewDocenteService constructs the docente service.
func NewDocenteService(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger) *CrudService[CreateDocenteRequest, models.Docente] {
	return NewCrudService[CreateDocenteRequest, models.Docente](repository.NewDocenteRepository(db), "docente", validate, logger)
}
