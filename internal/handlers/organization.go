package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/job-board-api/internal/dto"
	apierrors "github.com/hireloop/job-board-api/internal/errors"
	"github.com/hireloop/job-board-api/internal/services"
)

// OrganizationHandler coordinates organization HTTP handlers.
type OrganizationHandler struct {
	organizationService *services.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler.
func NewOrganizationHandler(organizationService *services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		organizationService: organizationService,
	}
}

// GetOrganization returns the public organization profile.
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	organization, err := h.organizationService.GetOrganizationInfo()
	if err != nil {
		respondOrganizationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"organization": dto.ToOrganizationDTO(*organization),
	})
}

// UpdateOrganization applies a partial profile patch. The raw body is
// inspected so that an absent field, an explicit null, and a value are three
// different things.
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var input services.UpdateOrganizationInput
	if value, ok := stringField(raw, "name"); ok {
		input.Name = value
	}
	if value, ok := stringField(raw, "description_markdown"); ok {
		input.DescriptionMarkdown = value
	}
	if rawValue, ok := raw["image_url"]; ok {
		if rawValue == nil {
			input.ClearImageURL = true
		} else if value, ok := rawValue.(string); ok {
			input.ImageURL = &value
		}
	}
	if rawValue, ok := raw["banner_url"]; ok {
		if rawValue == nil {
			input.ClearBannerURL = true
		} else if value, ok := rawValue.(string); ok {
			input.BannerURL = &value
		}
	}

	organization, err := h.organizationService.UpdateOrganization(input)
	if err != nil {
		respondOrganizationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"organization": dto.ToOrganizationDTO(*organization),
	})
}

func respondOrganizationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrganizationNotCreated):
		apierrors.NotFound(c, err.Error())
	default:
		respondValidationOrInternal(c, err)
	}
}
