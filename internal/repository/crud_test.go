package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/academico/school-management-api/pkg/errors"
	"github.com/lib/pq"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestCrudListFiltersActiveRows(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewRolRepository(db)

	rows := sqlmock.NewRows([]string{"id", "nombre", "descripcion", "estado", "created_at", "updated_at"}).
		AddRow(1, "admin", "Administrator", true, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, nombre, descripcion, estado, created_at, updated_at FROM core.rol WHERE estado = TRUE ORDER BY id")).
		WillReturnRows(rows)

	roles, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, roles, 1)
	assert.Equal(t, "admin", roles[0].Nombre)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCrudListExcludesSoftDeleted(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewAcudienteRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "id_tipo_documento", "numero_documento", "genero", "nombres", "apellidos",
		"telefono", "correo", "estado", "created_at", "updated_at", "deleted_at",
	}).AddRow(1, 1, "10203040", "F", "Maria", "Lopez", nil, nil, true, time.Now(), time.Now(), nil)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE estado = TRUE AND deleted_at IS NULL ORDER BY id")).
		WillReturnRows(rows)

	acudientes, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, acudientes, 1)
	assert.Nil(t, acudientes[0].DeletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCrudListUnfilteredForLookupTables(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTipoDocumentoRepository(db)

	rows := sqlmock.NewRows([]string{"id", "nombre", "abreviatura", "created_at", "updated_at"}).
		AddRow(1, "Cédula de Ciudadanía", "CC", time.Now(), time.Now()).
		AddRow(2, "Tarjeta de Identidad", "TI", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, nombre, abreviatura, created_at, updated_at FROM core.tipo_documento ORDER BY id")).
		WillReturnRows(rows)

	tipos, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, tipos, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCrudCreateReturnsPopulatedRow(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewRolRepository(db)

	returned := sqlmock.NewRows([]string{"id", "nombre", "descripcion", "estado", "created_at", "updated_at"}).
		AddRow(7, "admin", "Administrator", true, time.Now(), time.Now())
	mock.ExpectQuery("INSERT INTO core.rol").
		WithArgs("admin", "Administrator").
		WillReturnRows(returned)

	descripcion := "Administrator"
	rol, err := repo.Create(context.Background(), map[string]interface{}{
		"nombre":      "admin",
		"descripcion": descripcion,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, rol.ID)
	assert.True(t, rol.Estado)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCrudCreateTagsConstraintViolations(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewMatriculaRepository(db)

	mock.ExpectQuery("INSERT INTO core.matricula").
		WillReturnError(&pq.Error{Code: "23503", Message: "insert or update on table \"matricula\" violates foreign key constraint"})

	_, err := repo.Create(context.Background(), map[string]interface{}{
		"id_estudiante": 999,
		"id_grupo":      1,
		"periodo":       "2025-1",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrForeignKeyMissing.Code, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCrudSoftDelete(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEstudianteRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE core.estudiante SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL")).
		WithArgs(3, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SoftDelete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCrudSoftDeleteMissingRow(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEstudianteRepository(db)

	mock.ExpectExec("UPDATE core.estudiante SET deleted_at").
		WithArgs(99, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDelete(context.Background(), 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestCrudSoftDeleteUnsupportedTable(t *testing.T) {
	db, _, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewRolRepository(db)

	err := repo.SoftDelete(context.Background(), 1)
	require.Error(t, err)
}
