package services

import (
	"errors"
	"fmt"

	"github.com/hireloop/job-board-api/internal/models"
	"github.com/hireloop/job-board-api/internal/repository"
	"gorm.io/gorm"
)

var ErrOrganizationNotCreated = errors.New("organization has not been created yet")

// OrganizationService handles the singleton organization's profile
type OrganizationService struct {
	organizationRepo repository.OrganizationRepository
}

// NewOrganizationService creates a new OrganizationService
func NewOrganizationService(organizationRepo repository.OrganizationRepository) *OrganizationService {
	return &OrganizationService{
		organizationRepo: organizationRepo,
	}
}

// GetOrganizationInfo returns the singleton organization
func (s *OrganizationService) GetOrganizationInfo() (*models.Organization, error) {
	organization, err := s.organizationRepo.GetOrganizationInfo()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotCreated
		}
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}
	return organization, nil
}

// UpdateOrganizationInput represents a partial profile patch. Nil pointers
// keep the current value; the Clear flags null out the image and banner URLs.
type UpdateOrganizationInput struct {
	Name                *string
	DescriptionMarkdown *string
	ImageURL            *string
	ClearImageURL       bool
	BannerURL           *string
	ClearBannerURL      bool
}

// UpdateOrganization applies a partial patch to the organization profile
func (s *OrganizationService) UpdateOrganization(input UpdateOrganizationInput) (*models.Organization, error) {
	organization, err := s.organizationRepo.GetOrganizationInfo()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotCreated
		}
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}

	updated, err := organization.UpdateProfile(models.OrganizationProfilePatch{
		Name:                input.Name,
		DescriptionMarkdown: input.DescriptionMarkdown,
		ImageURL:            input.ImageURL,
		ClearImageURL:       input.ClearImageURL,
		BannerURL:           input.BannerURL,
		ClearBannerURL:      input.ClearBannerURL,
	})
	if err != nil {
		return nil, err
	}

	if err := s.organizationRepo.Update(&updated); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return &updated, nil
}
