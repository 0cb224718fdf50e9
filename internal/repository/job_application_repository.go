package repository

import (
	"github.com/hireloop/job-board-api/internal/models"
	"gorm.io/gorm"
)

// GormJobApplicationsRepository is a GORM implementation of JobApplicationsRepository
type GormJobApplicationsRepository struct {
	db *gorm.DB
}

// NewJobApplicationsRepository creates a new JobApplicationsRepository
func NewJobApplicationsRepository(db *gorm.DB) JobApplicationsRepository {
	return &GormJobApplicationsRepository{db: db}
}

// Create persists a new application
func (r *GormJobApplicationsRepository) Create(application *models.JobApplication) error {
	return r.db.Create(application).Error
}

// FindByApplicantEmailAndJobID finds an application by its uniqueness key.
// The caller is expected to pass a normalized email.
func (r *GormJobApplicationsRepository) FindByApplicantEmailAndJobID(email, jobID string) (*models.JobApplication, error) {
	var application models.JobApplication
	if err := r.db.Where("email = ? AND job_id = ?", email, jobID).
		First(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// FindByID finds an application by ID
func (r *GormJobApplicationsRepository) FindByID(id string) (*models.JobApplication, error) {
	var application models.JobApplication
	if err := r.db.Where("id = ?", id).First(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// Update persists an application's status change
func (r *GormJobApplicationsRepository) Update(application *models.JobApplication) error {
	return r.db.Save(application).Error
}
