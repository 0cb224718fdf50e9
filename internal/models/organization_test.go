package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrganization(t *testing.T) {
	organization, err := NewOrganization("  Admin@Example.COM ", "hashed", "  Acme ")
	require.NoError(t, err)

	assert.NotEmpty(t, organization.ID)
	assert.Equal(t, "admin@example.com", organization.Email)
	assert.Equal(t, "Acme", organization.Name)
	assert.Nil(t, organization.DescriptionMarkdown)
}

func TestNewOrganization_Invalid(t *testing.T) {
	_, err := NewOrganization("not-an-email", "hashed", "Acme")
	assert.Error(t, err)

	_, err = NewOrganization("admin@example.com", "", "Acme")
	assert.Error(t, err)

	_, err = NewOrganization("admin@example.com", "hashed", "   ")
	assert.Error(t, err)
}

func TestOrganization_UpdateProfile_PartialPatch(t *testing.T) {
	organization, err := NewOrganization("admin@example.com", "hashed", "Acme")
	require.NoError(t, err)

	name := "Acme Corp"
	description := "## About us"
	updated, err := organization.UpdateProfile(OrganizationProfilePatch{
		Name:                &name,
		DescriptionMarkdown: &description,
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", updated.Name)
	require.NotNil(t, updated.DescriptionMarkdown)
	assert.Equal(t, "## About us", *updated.DescriptionMarkdown)
	assert.Equal(t, organization.Email, updated.Email)
	assert.Equal(t, organization.PasswordHash, updated.PasswordHash)
}

func TestOrganization_UpdateProfile_SetAndClearURLs(t *testing.T) {
	organization, err := NewOrganization("admin@example.com", "hashed", "Acme")
	require.NoError(t, err)

	image := "https://example.com/logo.png"
	updated, err := organization.UpdateProfile(OrganizationProfilePatch{ImageURL: &image})
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, image, *updated.ImageURL)

	cleared, err := updated.UpdateProfile(OrganizationProfilePatch{ClearImageURL: true})
	require.NoError(t, err)
	assert.Nil(t, cleared.ImageURL)
}

func TestOrganization_UpdateProfile_InvalidURL(t *testing.T) {
	organization, err := NewOrganization("admin@example.com", "hashed", "Acme")
	require.NoError(t, err)

	banner := "not a url"
	_, err = organization.UpdateProfile(OrganizationProfilePatch{BannerURL: &banner})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestOrganization_UpdateProfile_EmptyName(t *testing.T) {
	organization, err := NewOrganization("admin@example.com", "hashed", "Acme")
	require.NoError(t, err)

	empty := "   "
	_, err = organization.UpdateProfile(OrganizationProfilePatch{Name: &empty})
	assert.Error(t, err)
}

func TestOrganization_UpdatePassword(t *testing.T) {
	organization, err := NewOrganization("admin@example.com", "hashed", "Acme")
	require.NoError(t, err)

	updated, err := organization.UpdatePassword("rehashed")
	require.NoError(t, err)
	assert.Equal(t, "rehashed", updated.PasswordHash)
	assert.Equal(t, "hashed", organization.PasswordHash)

	_, err = organization.UpdatePassword("")
	assert.Error(t, err)
}
