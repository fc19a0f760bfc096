package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
)

// CreateAcudienteEstudianteRequest records a guardianship link.
type CreateAcudienteEstudianteRequest struct {
	IDAcudiente  int     `json:"idAcudiente" db:"id_acudiente" validate:"required"`
	IDEstudiante int     `json:"idEstudiante" db:"id_estudiante" validate:"required"`
	Parentesco   *string `json:"parentesco" db:"parentesco" validate:"omitempty,max=30"`
}

// NewAcudienteEstudianteService constructs the acudiente-estudiante service.
func NewAcudienteEstudianteService(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger) *CrudService[CreateAcudienteEstudianteRequest, models.AcudienteEstudiante] {
	return NewCrudService[CreateAcudienteEstudianteRequest, models.AcudienteEstudiante](repository.NewAcudienteEstudianteRepository(db), "acudiente_estudiante", validate, logger)
}
