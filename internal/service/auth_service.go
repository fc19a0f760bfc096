package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
	"github.com/academico/school-management-api/pkg/config"
	appErrors "github.com/academico/school-management-api/pkg/errors"
)

type credentialRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Usuario, error)
}

type rolFinder interface {
	FindByID(ctx context.Context, id interface{}) (*models.Rol, error)
}

// AuthService authenticates usuarios and issues session tokens.
type AuthService struct {
	usuarios  credentialRepository
	roles     rolFinder
	jwtCfg    config.JWTConfig
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(db *sqlx.DB, jwtCfg config.JWTConfig, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		usuarios:  repository.NewUsuarioRepository(db),
		roles:     repository.NewRolRepository(db),
		jwtCfg:    jwtCfg,
		validator: validate,
		logger:    logger,
	}
}

// Login verifies the credentials and returns the user projection with a
// signed token. Every rejection reason collapses into the same 401 so the
// response does not leak which part was wrong, except a disabled account
// which gets its own message.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, appErrors.ErrInvalidCredentials.Message)
	}

	user, err := s.usuarios.FindByUsername(ctx, req.Username)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Error("user lookup failed", zap.String("username", req.Username), zap.Error(err))
		}
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, appErrors.ErrInvalidCredentials.Message)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, appErrors.ErrInvalidCredentials.Message)
	}

	if !user.Estado {
		return nil, appErrors.Clone(appErrors.ErrInactiveAccount, appErrors.ErrInactiveAccount.Message)
	}

	resp := &models.LoginResponse{
		ID:        user.ID,
		Username:  user.Username,
		Nombres:   user.Nombres,
		Apellidos: user.Apellidos,
	}

	if rol, err := s.roles.FindByID(ctx, user.IDRol); err == nil {
		resp.Rol = &models.RolInfo{ID: rol.ID, Nombre: rol.Nombre}
	} else if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Warn("role lookup failed", zap.Int("id_rol", user.IDRol), zap.Error(err))
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.logger.Error("token signing failed", zap.Int("user_id", user.ID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign token")
	}
	resp.Token = token

	return resp, nil
}

func (s *AuthService) issueToken(user *models.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"rol":      user.IDRol,
		"iss":      s.jwtCfg.Issuer,
		"iat":      now.Unix(),
		"exp":      now.Add(s.jwtCfg.Expiration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.Secret))
}
