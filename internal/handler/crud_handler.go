package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/academico/school-management-api/pkg/errors"
	"github.com/academico/school-management-api/pkg/response"
)

// crudService is the application surface one resource exposes over HTTP.
type crudService[Req any, T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, req Req) (*T, error)
	Delete(ctx context.Context, id int) error
}

// CrudHandler serves one resource's list, create and delete routes.
type CrudHandler[Req any, T any] struct {
	svc crudService[Req, T]
}

// NewCrudHandler constructs a handler for one resource.
func NewCrudHandler[Req any, T any](svc crudService[Req, T]) *CrudHandler[Req, T] {
	return &CrudHandler[Req, T]{svc: svc}
}

// List responds with every visible row as a bare JSON array.
func (h *CrudHandler[Req, T]) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, 200, rows)
}

// Create inserts one row from the JSON body and echoes it back with 201.
func (h *CrudHandler[Req, T]) Create(c *gin.Context) {
	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error()))
		return
	}

	created, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Delete soft-deletes the row addressed by the id parameter.
func (h *CrudHandler[Req, T]) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "id inválido"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
