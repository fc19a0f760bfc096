package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
)

// CreateGrupoRequest holds the client-settable class-group fields.
type CreateGrupoRequest struct {
	IDGrado     int    `json:"idGrado" db:"id_grado" validate:"required"`
	Codigo      string `json:"codigo" db:"codigo" validate:"required,max=5"`
	AnioLectivo string `json:"anioLectivo" db:"anio_lectivo" validate:"required,max=10"`
}

// NewGrupoService constructs the grupo service.
func NewGrupoService(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger) *CrudService[CreateGrupoRequest, models.Grupo] {
	return NewCrudService[CreateGrupoRequest, models.Grupo](repository.NewGrupoRepository(db), "grupo", validate, logger)
}
