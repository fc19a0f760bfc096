package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	appErrors "github.com/academico/school-management-api/pkg/errors"
)

// crudRepository is the storage surface the generic service runs on.
type crudRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, arg interface{}) (*T, error)
	SoftDelete(ctx context.Context, id int) error
}

// CrudService mediates between untyped external payloads and one entity's
// storage: strict validation on the way in, tagged errors on the way out.
// Req is the creation payload exposing only client-settable columns.
type CrudService[Req any, T any] struct {
	repo      crudRepository[T]
	entity    string
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCrudService constructs the service for one entity.
func NewCrudService[Req any, T any](repo crudRepository[T], entity string, validate *validator.Validate, logger *zap.Logger) *CrudService[Req, T] {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CrudService[Req, T]{repo: repo, entity: entity, validator: validate, logger: logger}
}

// List returns all visible rows of the entity.
func (s *CrudService[Req, T]) List(ctx context.Context) ([]T, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list failed", zap.String("entity", s.entity), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list "+s.entity)
	}
	return rows, nil
}

// Create validates the payload and inserts one row, returning it fully
// populated. Constraint rejections from the storage engine pass through
// with their tagged kind intact.
func (s *CrudService[Req, T]) Create(ctx context.Context, req Req) (*T, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		var appErr *appErrors.Error
		if errors.As(err, &appErr) && appErr.Status < 500 {
			return nil, err
		}
		s.logger.Error("create failed", zap.String("entity", s.entity), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create "+s.entity)
	}
	return created, nil
}

// Delete stamps the soft-delete marker on a live row. Only wired for
// entities whose table carries deleted_at.
func (s *CrudService[Req, T]) Delete(ctx context.Context, id int) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, s.entity+" not found")
		}
		var appErr *appErrors.Error
		if errors.As(err, &appErr) && appErr.Status < 500 {
			return err
		}
		s.logger.Error("delete failed", zap.String("entity", s.entity), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete "+s.entity)
	}
	return nil
}
