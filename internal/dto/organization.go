package dto

import "github.com/hireloop/job-board-api/internal/models"

// OrganizationDTO represents the organization in API responses. The password
// hash never leaves the service layer.
type OrganizationDTO struct {
	ID                  string  `json:"id"`
	Email               string  `json:"email"`
	Name                string  `json:"name"`
	DescriptionMarkdown *string `json:"description_markdown,omitempty"`
	ImageURL            *string `json:"image_url,omitempty"`
	BannerURL           *string `json:"banner_url,omitempty"`
}

// ToOrganizationDTO converts an Organization model to OrganizationDTO
func ToOrganizationDTO(organization models.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:                  organization.ID,
		Email:               organization.Email,
		Name:                organization.Name,
		DescriptionMarkdown: organization.DescriptionMarkdown,
		ImageURL:            organization.ImageURL,
		BannerURL:           organization.BannerURL,
	}
}
