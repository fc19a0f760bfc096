package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
)

// CreateEstudianteRequest holds the client-settable student fields. The
// idAcudiente link points at the primary guardian and may be omitted.
type CreateEstudianteRequest struct {
	IDTipoDocumento int         `json:"idTipoDocumento" db:"id_tipo_documento" validate:"required"`
	IDAcudiente     *int        `json:"idAcudiente" db:"id_acudiente"`
	NumeroDocumento string      `json:"numeroDocumento" db:"numero_documento" validate:"required,max=10"`
	Genero          string      `json:"genero" db:"genero" validate:"required,max=20"`
	Nombres         string      `json:"nombres" db:"nombres" validate:"required,max=50"`
	Apellidos       string      `json:"apellidos" db:"apellidos" validate:"required,max=50"`
	FechaNacimiento models.Date `json:"fechaNacimiento" db:"fecha_nacimiento" validate:"required"`
}

// NewEstudianteService constructs the estudiante service.
func NewEstudianteService(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger) *CrudService[CreateEstudianteRequest, models.Estudiante] {
	return NewCrudService[CreateEstudianteRequest, models.Estudiante](repository.NewEstudianteRepository(db), "estudiante", validate, logger)
}
