package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/academico/school-management-api/internal/models"
	appErrors "github.com/academico/school-management-api/pkg/errors"
)

// StudentRepository manages the legacy uuid-keyed students roster. Unlike
// the core tables it keeps no estado flag and generates identifiers
// client-side.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns every legacy student record.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	const query = `SELECT id, first_name, last_name, email, date_of_birth, enrollment_date, grade, status, created_at, updated_at
        FROM students ORDER BY created_at`
	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// Create inserts a new legacy student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now
	if student.Status == "" {
		student.Status = "active"
	}
	const query = `INSERT INTO students (id, first_name, last_name, email, date_of_birth, enrollment_date, grade, status, created_at, updated_at)
        VALUES (:id, :first_name, :last_name, :email, :date_of_birth, :enrollment_date, :grade, :status, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return appErrors.FromPostgres(err)
	}
	return nil
}
