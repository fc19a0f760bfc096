package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
)

// CreateMatriculaRequest enrolls an estudiante into a grupo. The registry
// date is set by the database, not the client.
type CreateMatriculaRequest struct {
	IDEstudiante int    `json:"idEstudiante" db:"id_estudiante" validate:"required"`
	IDGrupo      int    `json:"idGrupo" db:"id_grupo" validate:"required"`
	Periodo      string `json:"periodo" db:"periodo" validate:"required,max=10"`
}

// NewMatriculaService constructs the matricula service.
func NewMatriculaService(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger) *CrudService[CreateMatriculaRequest, models.Matricula] {
	return NewCrudService[CreateMatriculaRequest, models.Matricula](repository.NewMatriculaRepository(db), "matricula", validate, logger)
}
