package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
	appErrors "github.com/academico/school-management-api/pkg/errors"
)

// CreateStudentRequest holds the legacy roster fields. Status defaults to
// active when omitted.
type CreateStudentRequest struct {
	FirstName      string      `json:"firstName" validate:"required,max=50"`
	LastName       string      `json:"lastName" validate:"required,max=50"`
	Email          string      `json:"email" validate:"required,email,max=100"`
	DateOfBirth    models.Date `json:"dateOfBirth" validate:"required"`
	EnrollmentDate models.Date `json:"enrollmentDate" validate:"required"`
	Grade          int         `json:"grade" validate:"required,gte=1,lte=12"`
	Status         string      `json:"status" validate:"omitempty,oneof=active inactive graduated"`
}

// StudentService serves the legacy English-named roster kept outside the
// core schema.
type StudentService struct {
	repo      *repository.StudentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repository.NewStudentRepository(db), validator: validate, logger: logger}
}

// List returns every legacy student record.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list failed", zap.String("entity", "student"), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Create validates and inserts a legacy student, returning the stored row.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}

	student := &models.Student{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		DateOfBirth:    req.DateOfBirth,
		EnrollmentDate: req.EnrollmentDate,
		Grade:          req.Grade,
		Status:         req.Status,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		var appErr *appErrors.Error
		if errors.As(err, &appErr) && appErr.Status < 500 {
			return nil, err
		}
		s.logger.Error("create failed", zap.String("entity", "student"), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}
	return student, nil
}
