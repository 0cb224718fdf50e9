package repository

import (
	"github.com/hireloop/job-board-api/internal/models"
	"gorm.io/gorm"
)

// GormOrganizationRepository is a GORM implementation of OrganizationRepository
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// GetOrganizationInfo returns the singleton organization row
func (r *GormOrganizationRepository) GetOrganizationInfo() (*models.Organization, error) {
	var organization models.Organization
	if err := r.db.First(&organization).Error; err != nil {
		return nil, err
	}
	return &organization, nil
}

// Create persists the organization (seed/bootstrap only)
func (r *GormOrganizationRepository) Create(organization *models.Organization) error {
	return r.db.Create(organization).Error
}

// Update persists organization changes
func (r *GormOrganizationRepository) Update(organization *models.Organization) error {
	return r.db.Save(organization).Error
}
