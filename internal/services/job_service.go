package services

import (
	"errors"
	"fmt"

	"github.com/hireloop/job-board-api/internal/models"
	"github.com/hireloop/job-board-api/internal/repository"
	"github.com/hireloop/job-board-api/internal/utils"
	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobService handles job business logic
type JobService struct {
	jobsRepo        repository.JobsRepository
	departmentsRepo repository.DepartmentsRepository
}

// NewJobService creates a new JobService
func NewJobService(jobsRepo repository.JobsRepository, departmentsRepo repository.DepartmentsRepository) *JobService {
	return &JobService{
		jobsRepo:        jobsRepo,
		departmentsRepo: departmentsRepo,
	}
}

// CreateJobInput represents input for creating a job
type CreateJobInput struct {
	Title               string
	DescriptionMarkdown string
	DepartmentID        string
	Country             string
	City                string
	ZipCode             *string
	WorkplaceLocation   models.WorkplaceLocation
	EmploymentType      models.EmploymentType
	SalaryMin           *float64
	SalaryMax           *float64
	Status              models.JobStatus
	Tags                []string
}

// CreateJob creates a job under an existing department
func (s *JobService) CreateJob(input CreateJobInput) (*models.Job, error) {
	department, err := s.departmentsRepo.FindByID(input.DepartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to find department: %w", err)
	}

	if input.SalaryMin != nil && input.SalaryMax != nil {
		if _, err := models.NewSalaryRange(*input.SalaryMin, *input.SalaryMax); err != nil {
			return nil, err
		}
	}

	job, err := models.NewJob(models.NewJobInput{
		Title:               input.Title,
		DescriptionMarkdown: input.DescriptionMarkdown,
		WorkplaceLocation:   input.WorkplaceLocation,
		EmploymentType:      input.EmploymentType,
		Country:             input.Country,
		City:                input.City,
		ZipCode:             input.ZipCode,
		SalaryMin:           input.SalaryMin,
		SalaryMax:           input.SalaryMax,
		Status:              input.Status,
		DepartmentID:        department.ID,
		Tags:                input.Tags,
	})
	if err != nil {
		return nil, err
	}

	if err := s.jobsRepo.Create(&job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return s.jobsRepo.FindByID(job.ID)
}

// UpdateJobInput represents input for partially updating a job. Nil pointers
// leave the current value untouched; the Clear flags null out nullable fields;
// ReplaceTags swaps the whole tag set for Tags.
type UpdateJobInput struct {
	Title               *string
	DescriptionMarkdown *string
	DepartmentID        *string
	Country             *string
	City                *string
	ZipCode             *string
	ClearZipCode        bool
	WorkplaceLocation   *models.WorkplaceLocation
	EmploymentType      *models.EmploymentType
	SalaryMin           *float64
	ClearSalaryMin      bool
	SalaryMax           *float64
	ClearSalaryMax      bool
	Status              *models.JobStatus
	Tags                []string
	ReplaceTags         bool
}

// UpdateJob applies a partial patch to an existing job
func (s *JobService) UpdateJob(id string, input UpdateJobInput) (*models.Job, error) {
	job, err := s.jobsRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	if input.DepartmentID != nil {
		if _, err := s.departmentsRepo.FindByID(*input.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDepartmentNotFound
			}
			return nil, fmt.Errorf("failed to find department: %w", err)
		}
	}

	updated, err := job.Update(models.JobPatch{
		Title:               input.Title,
		DescriptionMarkdown: input.DescriptionMarkdown,
		WorkplaceLocation:   input.WorkplaceLocation,
		EmploymentType:      input.EmploymentType,
		Country:             input.Country,
		City:                input.City,
		ZipCode:             input.ZipCode,
		ClearZipCode:        input.ClearZipCode,
		SalaryMin:           input.SalaryMin,
		ClearSalaryMin:      input.ClearSalaryMin,
		SalaryMax:           input.SalaryMax,
		ClearSalaryMax:      input.ClearSalaryMax,
		DepartmentID:        input.DepartmentID,
	})
	if err != nil {
		return nil, err
	}

	if input.ReplaceTags {
		updated = updated.SetTags(input.Tags)
	}
	if input.Status != nil {
		if *input.Status == models.JobStatusClosed {
			updated = updated.Close()
		} else {
			updated = updated.Open()
		}
	}

	if err := s.jobsRepo.Update(&updated); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return s.jobsRepo.FindByID(updated.ID)
}

// GetJob returns a job with its tags and department
func (s *JobService) GetJob(id string) (*models.Job, error) {
	job, err := s.jobsRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return job, nil
}

// ListJobsInput represents filters for listing jobs
type ListJobsInput struct {
	Page              int
	ItemsPerPage      int
	DepartmentName    string
	JobTitle          string
	SalaryMin         *float64
	SalaryMax         *float64
	WorkplaceLocation models.WorkplaceLocation
	EmploymentType    models.EmploymentType
	Country           string
	City              string
	Tags              []string
}

// ListJobsResult is the paginated listing outcome. TotalCount and TotalPages
// describe the full filtered set, not the returned slice.
type ListJobsResult struct {
	Jobs       []models.Job
	Page       int
	TotalCount int64
	TotalPages int
}

// ListJobs returns the filtered, paginated job list. A page beyond the
// available data yields an empty slice, not an error.
func (s *JobService) ListJobs(input ListJobsInput) (*ListJobsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	itemsPerPage := input.ItemsPerPage
	if itemsPerPage < 1 {
		itemsPerPage = 10
	}

	jobs, total, err := s.jobsRepo.List(repository.JobFilter{
		DepartmentName:    input.DepartmentName,
		JobTitle:          input.JobTitle,
		SalaryMin:         input.SalaryMin,
		SalaryMax:         input.SalaryMax,
		WorkplaceLocation: input.WorkplaceLocation,
		EmploymentType:    input.EmploymentType,
		Country:           input.Country,
		City:              input.City,
		Tags:              input.Tags,
		Page:              page,
		ItemsPerPage:      itemsPerPage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return &ListJobsResult{
		Jobs:       jobs,
		Page:       page,
		TotalCount: total,
		TotalPages: utils.TotalPages(total, itemsPerPage),
	}, nil
}
