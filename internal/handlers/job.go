package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/job-board-api/internal/dto"
	apierrors "github.com/hireloop/job-board-api/internal/errors"
	"github.com/hireloop/job-board-api/internal/models"
	"github.com/hireloop/job-board-api/internal/services"
	"github.com/hireloop/job-board-api/internal/utils"
)

// JobHandler coordinates job HTTP handlers.
type JobHandler struct {
	jobService *services.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// CreateJob creates a job under an existing department.
func (h *JobHandler) CreateJob(c *gin.Context) {
	type CreateJobRequest struct {
		Title               string   `json:"title" binding:"required"`
		DescriptionMarkdown string   `json:"description_markdown" binding:"required"`
		DepartmentID        string   `json:"department_id" binding:"required"`
		Country             string   `json:"country" binding:"required"`
		City                string   `json:"city" binding:"required"`
		ZipCode             *string  `json:"zip_code"`
		WorkplaceLocation   string   `json:"workplace_location" binding:"required"`
		EmploymentType      string   `json:"employment_type" binding:"required"`
		SalaryMin           *float64 `json:"salary_min"`
		SalaryMax           *float64 `json:"salary_max"`
		Status              string   `json:"status"`
		Tags                []string `json:"tags"`
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	job, err := h.jobService.CreateJob(services.CreateJobInput{
		Title:               req.Title,
		DescriptionMarkdown: req.DescriptionMarkdown,
		DepartmentID:        req.DepartmentID,
		Country:             req.Country,
		City:                req.City,
		ZipCode:             req.ZipCode,
		WorkplaceLocation:   models.WorkplaceLocation(req.WorkplaceLocation),
		EmploymentType:      models.EmploymentType(req.EmploymentType),
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		Status:              models.JobStatus(req.Status),
		Tags:                req.Tags,
	})
	if err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"job": dto.ToJobDTO(*job),
	})
}

// GetJob returns a job with its tags and department.
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(c.Param("id"))
	if err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job": dto.ToJobDTO(*job),
	})
}

// UpdateJob applies a partial patch. The raw body is inspected so that an
// absent field, an explicit null, and a value are three different things.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var input services.UpdateJobInput
	if value, ok := stringField(raw, "title"); ok {
		input.Title = value
	}
	if value, ok := stringField(raw, "description_markdown"); ok {
		input.DescriptionMarkdown = value
	}
	if value, ok := stringField(raw, "department_id"); ok {
		input.DepartmentID = value
	}
	if value, ok := stringField(raw, "country"); ok {
		input.Country = value
	}
	if value, ok := stringField(raw, "city"); ok {
		input.City = value
	}
	if rawValue, ok := raw["zip_code"]; ok {
		if rawValue == nil {
			input.ClearZipCode = true
		} else if value, ok := rawValue.(string); ok {
			input.ZipCode = &value
		}
	}
	if value, ok := stringField(raw, "workplace_location"); ok {
		workplace := models.WorkplaceLocation(*value)
		input.WorkplaceLocation = &workplace
	}
	if value, ok := stringField(raw, "employment_type"); ok {
		employment := models.EmploymentType(*value)
		input.EmploymentType = &employment
	}
	if rawValue, ok := raw["salary_min"]; ok {
		if rawValue == nil {
			input.ClearSalaryMin = true
		} else if value, ok := rawValue.(float64); ok {
			input.SalaryMin = &value
		}
	}
	if rawValue, ok := raw["salary_max"]; ok {
		if rawValue == nil {
			input.ClearSalaryMax = true
		} else if value, ok := rawValue.(float64); ok {
			input.SalaryMax = &value
		}
	}
	if value, ok := stringField(raw, "status"); ok {
		status := models.JobStatus(*value)
		if !status.IsValid() {
			apierrors.BadRequest(c, "Invalid status")
			return
		}
		input.Status = &status
	}
	if rawValue, ok := raw["tags"]; ok {
		input.ReplaceTags = true
		if list, ok := rawValue.([]any); ok {
			for _, item := range list {
				if name, ok := item.(string); ok {
					input.Tags = append(input.Tags, name)
				}
			}
		}
	}

	job, err := h.jobService.UpdateJob(c.Param("id"), input)
	if err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job": dto.ToJobDTO(*job),
	})
}

// ListJobs returns the filtered, paginated job list.
func (h *JobHandler) ListJobs(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	input := services.ListJobsInput{
		Page:              params.Page,
		ItemsPerPage:      params.ItemsPerPage,
		DepartmentName:    c.Query("department_name"),
		JobTitle:          c.Query("job_title"),
		WorkplaceLocation: models.WorkplaceLocation(c.Query("workplace_location")),
		EmploymentType:    models.EmploymentType(c.Query("employment_type")),
		Country:           c.Query("country"),
		City:              c.Query("city"),
		Tags:              c.QueryArray("tags"),
	}
	if value := c.Query("salary_min"); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid salary_min")
			return
		}
		input.SalaryMin = &parsed
	}
	if value := c.Query("salary_max"); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid salary_max")
			return
		}
		input.SalaryMax = &parsed
	}

	result, err := h.jobService.ListJobs(input)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.JobListResponse{
		Jobs:       dto.ToJobDTOs(result.Jobs),
		Page:       result.Page,
		TotalCount: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

func stringField(raw map[string]any, key string) (*string, bool) {
	rawValue, ok := raw[key]
	if !ok {
		return nil, false
	}
	value, ok := rawValue.(string)
	if !ok {
		return nil, false
	}
	return &value, true
}

func respondJobError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrJobNotFound),
		errors.Is(err, services.ErrDepartmentNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, models.ErrInvalidSalaryRange):
		apierrors.BadRequest(c, err.Error())
	default:
		respondValidationOrInternal(c, err)
	}
}
