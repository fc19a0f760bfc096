package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/models"
	appErrors "github.com/academico/school-management-api/pkg/errors"
)

type mockCrudRepo[T any] struct {
	rows      []T
	created   *T
	listErr   error
	createErr error
	deleteErr error

	createCalled bool
	deletedID    int
}

func (m *mockCrudRepo[T]) List(ctx context.Context) ([]T, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.rows, nil
}

func (m *mockCrudRepo[T]) Create(ctx context.Context, arg interface{}) (*T, error) {
	m.createCalled = true
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.created, nil
}

func (m *mockCrudRepo[T]) SoftDelete(ctx context.Context, id int) error {
	m.deletedID = id
	return m.deleteErr
}

func testDate(t *testing.T, value string) models.Date {
	t.Helper()
	d, err := models.ParseDate(value)
	require.NoError(t, err)
	return d
}

func newRolService(repo *mockCrudRepo[models.Rol]) *CrudService[CreateRolRequest, models.Rol] {
	return NewCrudService[CreateRolRequest, models.Rol](repo, "rol", validator.New(), zap.NewNop())
}

func TestCrudServiceListReturnsRows(t *testing.T) {
	repo := &mockCrudRepo[models.Rol]{rows: []models.Rol{{ID: 1, Nombre: "administrador"}, {ID: 2, Nombre: "docente"}}}
	svc := newRolService(repo)

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "administrador", rows[0].Nombre)
}

func TestCrudServiceListWrapsRepositoryFailure(t *testing.T) {
	repo := &mockCrudRepo[models.Rol]{listErr: errors.New("connection reset")}
	svc := newRolService(repo)

	_, err := svc.List(context.Background())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErr.Code)
	assert.Equal(t, 500, appErr.Status)
}

func TestCrudServiceCreateRejectsInvalidPayload(t *testing.T) {
	repo := &mockCrudRepo[models.Rol]{}
	svc := newRolService(repo)

	_, err := svc.Create(context.Background(), CreateRolRequest{Nombre: ""})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, 400, appErr.Status)
	assert.False(t, repo.createCalled, "invalid payload must not reach the repository")
}

func TestCrudServiceCreateReturnsStoredRow(t *testing.T) {
	stored := &models.Rol{ID: 7, Nombre: "coordinador", Estado: true}
	repo := &mockCrudRepo[models.Rol]{created: stored}
	svc := newRolService(repo)

	got, err := svc.Create(context.Background(), CreateRolRequest{Nombre: "coordinador"})
	require.NoError(t, err)
	assert.Equal(t, 7, got.ID)
	assert.True(t, got.Estado)
}

func TestCrudServiceCreatePassesThroughConstraintErrors(t *testing.T) {
	dup := appErrors.Clone(appErrors.ErrDuplicateKey, "ya existe un rol con ese nombre")
	repo := &mockCrudRepo[models.Rol]{createErr: dup}
	svc := newRolService(repo)

	_, err := svc.Create(context.Background(), CreateRolRequest{Nombre: "docente"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrDuplicateKey.Code, appErr.Code)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "ya existe un rol con ese nombre", appErr.Message)
}

func TestCrudServiceCreateMasksUnexpectedErrors(t *testing.T) {
	repo := &mockCrudRepo[models.Rol]{createErr: errors.New("disk full")}
	svc := newRolService(repo)

	_, err := svc.Create(context.Background(), CreateRolRequest{Nombre: "docente"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErr.Code)
	assert.NotContains(t, appErr.Message, "disk full")
}

func TestCrudServiceDeleteMapsMissingRowToNotFound(t *testing.T) {
	repo := &mockCrudRepo[models.Rol]{deleteErr: sql.ErrNoRows}
	svc := newRolService(repo)

	err := svc.Delete(context.Background(), 42)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, 42, repo.deletedID)
}

func TestCrudServiceDeleteSucceeds(t *testing.T) {
	repo := &mockCrudRepo[models.Rol]{}
	svc := newRolService(repo)

	require.NoError(t, svc.Delete(context.Background(), 3))
	assert.Equal(t, 3, repo.deletedID)
}

func TestCalificacionRequestAcceptsZeroValor(t *testing.T) {
	valor := 0.0
	repo := &mockCrudRepo[models.Calificacion]{created: &models.Calificacion{ID: 1, Valor: 0}}
	svc := NewCrudService[CreateCalificacionRequest, models.Calificacion](repo, "calificacion", validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateCalificacionRequest{IDEstudiante: 1, IDEvaluacion: 2, Valor: &valor})
	assert.NoError(t, err)
}

func TestCalificacionRequestRejectsMissingAndOutOfRangeValor(t *testing.T) {
	repo := &mockCrudRepo[models.Calificacion]{}
	svc := NewCrudService[CreateCalificacionRequest, models.Calificacion](repo, "calificacion", validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateCalificacionRequest{IDEstudiante: 1, IDEvaluacion: 2})
	require.Error(t, err, "missing valor must fail validation")

	tooHigh := 5.5
	_, err = svc.Create(context.Background(), CreateCalificacionRequest{IDEstudiante: 1, IDEvaluacion: 2, Valor: &tooHigh})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.False(t, repo.createCalled)
}

func TestEvaluacionRequestBoundsPorcentaje(t *testing.T) {
	repo := &mockCrudRepo[models.Evaluacion]{created: &models.Evaluacion{ID: 1}}
	svc := NewCrudService[CreateEvaluacionRequest, models.Evaluacion](repo, "evaluacion", validator.New(), zap.NewNop())

	hundred := 100.0
	req := CreateEvaluacionRequest{IDGradoAsignatura: 1, Tipo: "examen", Porcentaje: &hundred}
	req.Fecha = testDate(t, "2025-03-10")
	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)

	over := 100.5
	req.Porcentaje = &over
	_, err = svc.Create(context.Background(), req)
	assert.Error(t, err)
}
