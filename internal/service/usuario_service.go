package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
	appErrors "github.com/academico/school-management-api/pkg/errors"
)

// CreateUsuarioRequest holds the client-settable account fields. Password
// arrives in clear and is hashed before it ever reaches storage.
type CreateUsuarioRequest struct {
	Username  string `json:"username" db:"username" validate:"required,max=20"`
	Password  string `json:"password" db:"password" validate:"required,min=4,max=72"`
	Nombres   string `json:"nombres" db:"nombres" validate:"required,max=50"`
	Apellidos string `json:"apellidos" db:"apellidos" validate:"required,max=50"`
	IDRol     int    `json:"idRol" db:"id_rol" validate:"required"`
}

// UsuarioService wraps the generic CRUD flow with password hashing on
// account creation.
type UsuarioService struct {
	*CrudService[CreateUsuarioRequest, models.Usuario]
}

// NewUsuarioService constructs a UsuarioService.
func NewUsuarioService(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger) *UsuarioService {
	crud := NewCrudService[CreateUsuarioRequest, models.Usuario](repository.NewUsuarioRepository(db), "usuario", validate, logger)
	return &UsuarioService{CrudService: crud}
}

// Create hashes the incoming password with bcrypt and delegates the insert.
func (s *UsuarioService) Create(ctx context.Context, req CreateUsuarioRequest) (*models.Usuario, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("password hashing failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create usuario")
	}
	req.Password = string(hash)

	return s.CrudService.Create(ctx, req)
}
