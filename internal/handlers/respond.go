package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	apierrors "github.com/hireloop/job-board-api/internal/errors"
	"github.com/hireloop/job-board-api/internal/models"
)

// respondValidationOrInternal maps value-object and schema validation
// failures to 400 with field details; anything else is a 500.
func respondValidationOrInternal(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		apierrors.BadRequestWithDetails(c, validationErr.Error(), validationErr)
		return
	}
	apierrors.InternalError(c, "")
}
