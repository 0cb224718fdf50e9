package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/job-board-api/internal/dto"
	apierrors "github.com/hireloop/job-board-api/internal/errors"
	"github.com/hireloop/job-board-api/internal/services"
)

// DepartmentHandler coordinates department HTTP handlers.
type DepartmentHandler struct {
	departmentService *services.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler(departmentService *services.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
	}
}

// CreateDepartment creates a department with a unique name.
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	type CreateDepartmentRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	department, err := h.departmentService.CreateDepartment(req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDepartmentWithSameName):
			apierrors.Conflict(c, err.Error())
		default:
			respondValidationOrInternal(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"department": dto.ToDepartmentDTO(*department),
	})
}

// ListDepartments returns every department.
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	departments, err := h.departmentService.ListDepartments()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"departments": dto.ToDepartmentDTOs(departments),
	})
}
