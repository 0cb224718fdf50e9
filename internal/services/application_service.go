package services

import (
	"errors"
	"fmt"

	"github.com/hireloop/job-board-api/internal/models"
	"github.com/hireloop/job-board-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrJobClosed                   = errors.New("job is closed for applications")
	ErrApplicationAlreadySubmitted = errors.New("an application for this job has already been submitted")
	ErrApplicationNotFound         = errors.New("job application not found")
)

// ApplicationService handles job application business logic
type ApplicationService struct {
	jobsRepo         repository.JobsRepository
	applicationsRepo repository.JobApplicationsRepository
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(jobsRepo repository.JobsRepository, applicationsRepo repository.JobApplicationsRepository) *ApplicationService {
	return &ApplicationService{
		jobsRepo:         jobsRepo,
		applicationsRepo: applicationsRepo,
	}
}

// ApplyToJobInput represents a candidate's submission
type ApplyToJobInput struct {
	JobID     string
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	ResumeURL *string
}

// ApplyToJob submits an application against an open job. The email is
// normalized before the duplicate check, so duplicate detection is case and
// whitespace insensitive. The check itself is an early exit; the composite
// unique index on (email, job_id) closes the race.
func (s *ApplicationService) ApplyToJob(input ApplyToJobInput) (*models.JobApplication, error) {
	job, err := s.jobsRepo.FindByID(input.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	if job.IsClosed() {
		return nil, ErrJobClosed
	}

	email, err := models.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	if _, err := s.applicationsRepo.FindByApplicantEmailAndJobID(email.String(), job.ID); err == nil {
		return nil, ErrApplicationAlreadySubmitted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check for existing application: %w", err)
	}

	var phone *models.Phone
	if input.Phone != nil && *input.Phone != "" {
		parsed, err := models.NewPhone(*input.Phone)
		if err != nil {
			return nil, err
		}
		phone = &parsed
	}
	var resumeURL *models.URL
	if input.ResumeURL != nil && *input.ResumeURL != "" {
		parsed, err := models.NewURL(*input.ResumeURL)
		if err != nil {
			return nil, err
		}
		resumeURL = &parsed
	}

	application, err := models.NewJobApplication(models.NewJobApplicationInput{
		Email:     email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     phone,
		ResumeURL: resumeURL,
		JobID:     job.ID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.applicationsRepo.Create(&application); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrApplicationAlreadySubmitted
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return &application, nil
}

// UpdateApplicationStatus advances an application through the review
// pipeline, enforcing the transition table.
func (s *ApplicationService) UpdateApplicationStatus(id string, status models.ApplicationStatus) (*models.JobApplication, error) {
	application, err := s.applicationsRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}

	updated, err := application.UpdateStatus(status)
	if err != nil {
		return nil, err
	}

	if err := s.applicationsRepo.Update(&updated); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	return &updated, nil
}
