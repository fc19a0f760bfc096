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
	appErrors "github.com/academico/school-management-api/pkg/errors"
)

type stubLoginService struct {
	resp *models.LoginResponse
	err  error
}

func (s *stubLoginService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func newAuthRouter(svc loginService) *gin.Engine {
	r := gin.New()
	r.POST("/api/auth/login", NewAuthHandler(svc).Login)
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginEndpointReturnsUserProjection(t *testing.T) {
	svc := &stubLoginService{resp: &models.LoginResponse{
		ID:        1,
		Username:  "admin",
		Nombres:   "Ana",
		Apellidos: "García",
		Rol:       &models.RolInfo{ID: 2, Nombre: "administrador"},
		Token:     "signed.jwt.token",
	}}
	r := newAuthRouter(svc)

	w := postLogin(r, `{"username":"admin","password":"secreto123"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.EqualValues(t, 1, got["id"])
	assert.Equal(t, "admin", got["username"])
	assert.NotContains(t, got, "password")
	rol, ok := got["rol"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "administrador", rol["nombre"])
	assert.Equal(t, "signed.jwt.token", got["token"])
}

func TestLoginEndpointRejectsBadCredentials(t *testing.T) {
	svc := &stubLoginService{err: appErrors.ErrInvalidCredentials}
	r := newAuthRouter(svc)

	w := postLogin(r, `{"username":"admin","password":"mala"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Credenciales inválidas"}`, w.Body.String())
}

func TestLoginEndpointRejectsMalformedBody(t *testing.T) {
	r := newAuthRouter(&stubLoginService{})

	w := postLogin(r, `{"username":`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Credenciales inválidas"}`, w.Body.String())
}

func TestLoginEndpointDisabledAccountMessage(t *testing.T) {
	svc := &stubLoginService{err: appErrors.ErrInactiveAccount}
	r := newAuthRouter(svc)

	w := postLogin(r, `{"username":"admin","password":"secreto123"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Usuario deshabilitado"}`, w.Body.String())
}
