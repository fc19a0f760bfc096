package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/service"
	appErrors "github.com/academico/school-management-api/pkg/errors"
	"github.com/academico/school-management-api/pkg/response"
)

type studentService interface {
	List(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, req service.CreateStudentRequest) (*models.Student, error)
}

// StudentHandler serves the legacy English-named roster routes.
type StudentHandler struct {
	students studentService
}

// NewStudentHandler constructs a new StudentHandler.
func NewStudentHandler(students studentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List responds with every legacy student record.
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.students.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, 200, students)
}

// Create inserts one legacy student from the JSON body.
func (h *StudentHandler) Create(c *gin.Context) {
	var req service.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error()))
		return
	}

	student, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}
