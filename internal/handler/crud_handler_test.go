package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/service"
	appErrors "github.com/academico/school-management-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubCrudService struct {
	rows      []models.Rol
	created   *models.Rol
	listErr   error
	createErr error
	deleteErr error
	deletedID int
}

func (s *stubCrudService) List(ctx context.Context) ([]models.Rol, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.rows, nil
}

func (s *stubCrudService) Create(ctx context.Context, req service.CreateRolRequest) (*models.Rol, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubCrudService) Delete(ctx context.Context, id int) error {
	s.deletedID = id
	return s.deleteErr
}

func newTestRouter(svc *stubCrudService) *gin.Engine {
	r := gin.New()
	h := NewCrudHandler[service.CreateRolRequest, models.Rol](svc)
	r.GET("/api/roles", h.List)
	r.POST("/api/roles", h.Create)
	r.DELETE("/api/roles/:id", h.Delete)
	r.NoRoute(notFound)
	return r
}

func TestListReturnsBareArray(t *testing.T) {
	svc := &stubCrudService{rows: []models.Rol{{ID: 1, Nombre: "administrador", Estado: true}}}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/roles", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows), "list body must be a bare JSON array")
	require.Len(t, rows, 1)
	assert.Equal(t, "administrador", rows[0]["nombre"])
	assert.Equal(t, true, rows[0]["estado"])
}

func TestListEmptyStaysAnArray(t *testing.T) {
	r := newTestRouter(&stubCrudService{rows: []models.Rol{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/roles", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestCreateRespondsWithStoredObject(t *testing.T) {
	svc := &stubCrudService{created: &models.Rol{ID: 5, Nombre: "docente", Estado: true}}
	r := newTestRouter(svc)

	body := bytes.NewBufferString(`{"nombre":"docente"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/roles", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.EqualValues(t, 5, got["id"])
	assert.Equal(t, "docente", got["nombre"])
}

func TestCreateMalformedBodyYields400(t *testing.T) {
	r := newTestRouter(&stubCrudService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/roles", bytes.NewBufferString(`{"nombre":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Contains(t, got, "error")
}

func TestCreateConstraintErrorKeepsStatusAndMessage(t *testing.T) {
	svc := &stubCrudService{createErr: appErrors.Clone(appErrors.ErrDuplicateKey, "ya existe un rol con ese nombre")}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/roles", bytes.NewBufferString(`{"nombre":"docente"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"ya existe un rol con ese nombre"}`, w.Body.String())
}

func TestDeleteRespondsNoContent(t *testing.T) {
	svc := &stubCrudService{}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/roles/9", nil))

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 9, svc.deletedID)
}

func TestDeleteRejectsNonNumericID(t *testing.T) {
	r := newTestRouter(&stubCrudService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/roles/abc", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteMissingRowYields404(t *testing.T) {
	svc := &stubCrudService{deleteErr: appErrors.Clone(appErrors.ErrNotFound, "rol not found")}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/roles/99", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownRouteReturnsDocumentedPayload(t *testing.T) {
	r := newTestRouter(&stubCrudService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/desconocido", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Ruta no encontrada", got["error"])
	assert.Equal(t, "/api/desconocido", got["path"])
	assert.Equal(t, "GET", got["method"])
}
