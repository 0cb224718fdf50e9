package dto

import (
	"time"

	"github.com/hireloop/job-board-api/internal/models"
)

// JobApplicationDTO represents a job application in API responses
type JobApplicationDTO struct {
	ID        string                   `json:"id"`
	Email     string                   `json:"email"`
	FirstName string                   `json:"first_name"`
	LastName  string                   `json:"last_name"`
	Phone     *string                  `json:"phone,omitempty"`
	ResumeURL *string                  `json:"resume_url,omitempty"`
	JobID     string                   `json:"job_id"`
	Status    models.ApplicationStatus `json:"status"`
	CreatedAt time.Time                `json:"created_at"`
}

// ToJobApplicationDTO converts a JobApplication model to JobApplicationDTO
func ToJobApplicationDTO(application models.JobApplication) JobApplicationDTO {
	return JobApplicationDTO{
		ID:        application.ID,
		Email:     application.Email,
		FirstName: application.FirstName,
		LastName:  application.LastName,
		Phone:     application.Phone,
		ResumeURL: application.ResumeURL,
		JobID:     application.JobID,
		Status:    application.Status,
		CreatedAt: application.CreatedAt,
	}
}
