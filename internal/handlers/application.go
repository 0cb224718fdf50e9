package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/job-board-api/internal/dto"
	apierrors "github.com/hireloop/job-board-api/internal/errors"
	"github.com/hireloop/job-board-api/internal/models"
	"github.com/hireloop/job-board-api/internal/services"
)

// ApplicationHandler coordinates job application HTTP handlers.
type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// ApplyToJob submits a candidate application against an open job.
func (h *ApplicationHandler) ApplyToJob(c *gin.Context) {
	type ApplyToJobRequest struct {
		ApplicantFirstName string  `json:"applicant_first_name" binding:"required"`
		ApplicantLastName  string  `json:"applicant_last_name" binding:"required"`
		ApplicantEmail     string  `json:"applicant_email" binding:"required"`
		ApplicantPhone     *string `json:"applicant_phone"`
		ApplicantResumeURL *string `json:"applicant_resume_url"`
	}

	var req ApplyToJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	application, err := h.applicationService.ApplyToJob(services.ApplyToJobInput{
		JobID:     c.Param("id"),
		FirstName: req.ApplicantFirstName,
		LastName:  req.ApplicantLastName,
		Email:     req.ApplicantEmail,
		Phone:     req.ApplicantPhone,
		ResumeURL: req.ApplicantResumeURL,
	})
	if err != nil {
		respondApplicationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"job_application": dto.ToJobApplicationDTO(*application),
	})
}

// UpdateStatus moves an application through the review pipeline.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	type UpdateStatusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	application, err := h.applicationService.UpdateApplicationStatus(
		c.Param("id"),
		models.ApplicationStatus(req.Status),
	)
	if err != nil {
		respondApplicationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_application": dto.ToJobApplicationDTO(*application),
	})
}

func respondApplicationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrJobNotFound),
		errors.Is(err, services.ErrApplicationNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrApplicationAlreadySubmitted):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrJobClosed),
		errors.Is(err, models.ErrInvalidStatusTransition):
		apierrors.UnprocessableEntity(c, err.Error())
	default:
		respondValidationOrInternal(c, err)
	}
}
