package repository

import (
	"github.com/hireloop/job-board-api/internal/models"
)

// DepartmentsRepository defines the interface for department data access
type DepartmentsRepository interface {
	// Create persists a new department
	Create(department *models.Department) error

	// FindByName finds a department by exact name
	FindByName(name string) (*models.Department, error)

	// FindByID finds a department by ID
	FindByID(id string) (*models.Department, error)

	// FindAll lists every department
	FindAll() ([]models.Department, error)
}

// JobsRepository defines the interface for job data access
type JobsRepository interface {
	// Create persists a new job with its tags
	Create(job *models.Job) error

	// FindByID finds a job by ID with tags and department loaded
	FindByID(id string) (*models.Job, error)

	// List retrieves jobs matching the filter, paginated, with the
	// pre-pagination total
	List(filter JobFilter) ([]models.Job, int64, error)

	// Update persists a job, replacing its tag set atomically
	Update(job *models.Job) error
}

// JobFilter holds filtering and pagination options for listing jobs.
// Zero-valued fields are ignored.
type JobFilter struct {
	DepartmentName    string
	JobTitle          string
	SalaryMin         *float64
	SalaryMax         *float64
	WorkplaceLocation models.WorkplaceLocation
	EmploymentType    models.EmploymentType
	Country           string
	City              string
	Tags              []string
	Page              int
	ItemsPerPage      int
}

// JobApplicationsRepository defines the interface for application data access
type JobApplicationsRepository interface {
	// Create persists a new application
	Create(application *models.JobApplication) error

	// FindByApplicantEmailAndJobID finds an application by its uniqueness key
	FindByApplicantEmailAndJobID(email, jobID string) (*models.JobApplication, error)

	// FindByID finds an application by ID
	FindByID(id string) (*models.JobApplication, error)

	// Update persists an application's status change
	Update(application *models.JobApplication) error
}

// OrganizationRepository defines the interface for the singleton organization
type OrganizationRepository interface {
	// GetOrganizationInfo returns the singleton organization row
	GetOrganizationInfo() (*models.Organization, error)

	// Create persists the organization (seed/bootstrap only)
	Create(organization *models.Organization) error

	// Update persists organization changes
	Update(organization *models.Organization) error
}
