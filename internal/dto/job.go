package dto

import (
	"time"

	"github.com/hireloop/job-board-api/internal/models"
)

// JobTagDTO represents a job tag in API responses
type JobTagDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// JobDTO represents a job in API responses
type JobDTO struct {
	ID                  string                   `json:"id"`
	Title               string                   `json:"title"`
	DescriptionMarkdown string                   `json:"description_markdown"`
	WorkplaceLocation   models.WorkplaceLocation `json:"workplace_location"`
	EmploymentType      models.EmploymentType    `json:"employment_type"`
	Country             string                   `json:"country"`
	City                string                   `json:"city"`
	ZipCode             *string                  `json:"zip_code"`
	SalaryMin           *float64                 `json:"salary_min"`
	SalaryMax           *float64                 `json:"salary_max"`
	Status              models.JobStatus         `json:"status"`
	DepartmentID        string                   `json:"department_id"`
	Tags                []JobTagDTO              `json:"tags"`
	Department          *DepartmentDTO           `json:"department,omitempty"`
	CreatedAt           time.Time                `json:"created_at"`
	UpdatedAt           time.Time                `json:"updated_at"`
}

// JobListResponse represents a paginated list of jobs
type JobListResponse struct {
	Jobs       []JobDTO `json:"jobs"`
	Page       int      `json:"page"`
	TotalCount int64    `json:"total_count"`
	TotalPages int      `json:"total_pages"`
}

// ToJobDTO converts a Job model to JobDTO
func ToJobDTO(job models.Job) JobDTO {
	dto := JobDTO{
		ID:                  job.ID,
		Title:               job.Title,
		DescriptionMarkdown: job.DescriptionMarkdown,
		WorkplaceLocation:   job.WorkplaceLocation,
		EmploymentType:      job.EmploymentType,
		Country:             job.Country,
		City:                job.City,
		ZipCode:             job.ZipCode,
		SalaryMin:           job.SalaryMin,
		SalaryMax:           job.SalaryMax,
		Status:              job.Status,
		DepartmentID:        job.DepartmentID,
		Tags:                make([]JobTagDTO, len(job.Tags)),
		CreatedAt:           job.CreatedAt,
		UpdatedAt:           job.UpdatedAt,
	}

	for i, tag := range job.Tags {
		dto.Tags[i] = JobTagDTO{ID: tag.ID, Name: tag.Name}
	}

	// Include department if preloaded
	if job.Department.ID != "" {
		department := ToDepartmentDTO(job.Department)
		dto.Department = &department
	}

	return dto
}

// ToJobDTOs converts a slice of jobs
func ToJobDTOs(jobs []models.Job) []JobDTO {
	dtos := make([]JobDTO, len(jobs))
	for i, job := range jobs {
		dtos[i] = ToJobDTO(job)
	}
	return dtos
}
