package models

import (
	"strings"

	"github.com/google/uuid"
)

// Organization is the single tenant operating the job board. Exactly one row
// is expected per deployment; it is created by the seed step and only ever
// updated afterwards.
type Organization struct {
	ID                  string  `gorm:"type:char(36);primarykey" json:"id"`
	Email               string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash        string  `gorm:"type:varchar(255);not null" json:"-"`
	Name                string  `gorm:"type:varchar(255);not null" json:"name"`
	DescriptionMarkdown *string `gorm:"type:text" json:"description_markdown,omitempty"`
	ImageURL            *string `gorm:"type:varchar(2048)" json:"image_url,omitempty"`
	BannerURL           *string `gorm:"type:varchar(2048)" json:"banner_url,omitempty"`
}

// NewOrganization creates the organization record. The email is normalized
// through the Email value object and the password must already be hashed.
func NewOrganization(email, passwordHash, name string) (Organization, error) {
	address, err := NewEmail(email)
	if err != nil {
		return Organization{}, err
	}
	if passwordHash == "" {
		return Organization{}, newValidationError("passwordHash", "must not be empty")
	}
	if strings.TrimSpace(name) == "" {
		return Organization{}, newValidationError("name", "must not be empty")
	}
	return Organization{
		ID:           uuid.NewString(),
		Email:        address.String(),
		PasswordHash: passwordHash,
		Name:         strings.TrimSpace(name),
	}, nil
}

// OrganizationProfilePatch carries the profile fields to change. Nil pointers
// leave the current value untouched; the Clear flags reset nullable fields.
type OrganizationProfilePatch struct {
	Name                *string
	DescriptionMarkdown *string
	ImageURL            *string
	ClearImageURL       bool
	BannerURL           *string
	ClearBannerURL      bool
}

// UpdateProfile returns a copy with the patched fields applied.
func (o Organization) UpdateProfile(patch OrganizationProfilePatch) (Organization, error) {
	updated := o
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return Organization{}, newValidationError("name", "must not be empty")
		}
		updated.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.DescriptionMarkdown != nil {
		updated.DescriptionMarkdown = patch.DescriptionMarkdown
	}
	if patch.ClearImageURL {
		updated.ImageURL = nil
	} else if patch.ImageURL != nil {
		if _, err := NewURL(*patch.ImageURL); err != nil {
			return Organization{}, newValidationError("imageURL", "must be a valid absolute URL")
		}
		updated.ImageURL = patch.ImageURL
	}
	if patch.ClearBannerURL {
		updated.BannerURL = nil
	} else if patch.BannerURL != nil {
		if _, err := NewURL(*patch.BannerURL); err != nil {
			return Organization{}, newValidationError("bannerURL", "must be a valid absolute URL")
		}
		updated.BannerURL = patch.BannerURL
	}
	return updated, nil
}

// UpdatePassword returns a copy with the new password hash.
func (o Organization) UpdatePassword(passwordHash string) (Organization, error) {
	if passwordHash == "" {
		return Organization{}, newValidationError("passwordHash", "must not be empty")
	}
	updated := o
	updated.PasswordHash = passwordHash
	return updated, nil
}
