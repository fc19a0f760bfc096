package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPostgresClassifiesConstraintViolations(t *testing.T) {
	cases := []struct {
		sqlstate pq.ErrorCode
		code     string
	}{
		{"23505", ErrDuplicateKey.Code},
		{"23503", ErrForeignKeyMissing.Code},
		{"23514", ErrCheckFailed.Code},
		{"23502", ErrNotNull.Code},
	}

	for _, tc := range cases {
		pqErr := &pq.Error{Code: tc.sqlstate, Message: "detail from postgres"}
		appErr := FromPostgres(pqErr)
		require.NotNil(t, appErr)
		assert.Equal(t, tc.code, appErr.Code)
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
		assert.Equal(t, "detail from postgres", appErr.Message)
	}
}

func TestFromPostgresFallsBackToInternal(t *testing.T) {
	appErr := FromPostgres(errors.New("connection reset"))
	require.NotNil(t, appErr)
	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}

func TestFromErrorPreservesTypedErrors(t *testing.T) {
	wrapped := Wrap(errors.New("boom"), ErrDuplicateKey.Code, ErrDuplicateKey.Status, "numero_documento ya registrado")
	appErr := FromError(wrapped)
	assert.Equal(t, ErrDuplicateKey.Code, appErr.Code)
	assert.Equal(t, "numero_documento ya registrado", appErr.Message)
}

func TestCloneOverridesMessageOnly(t *testing.T) {
	clone := Clone(ErrNotFound, "acudiente no encontrado")
	assert.Equal(t, ErrNotFound.Code, clone.Code)
	assert.Equal(t, ErrNotFound.Status, clone.Status)
	assert.Equal(t, "acudiente no encontrado", clone.Message)
	assert.Equal(t, "resource not found", ErrNotFound.Message)
}
