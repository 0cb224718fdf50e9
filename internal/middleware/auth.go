package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/job-board-api/internal/constants"
	apierrors "github.com/hireloop/job-board-api/internal/errors"
	"github.com/hireloop/job-board-api/internal/token"
)

// RequireAuth verifies the Bearer access token and stores the organization id
// in the request context.
func RequireAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		organizationID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "), token.TypeAccess)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyOrganizationID, organizationID)
		c.Next()
	}
}

// GetOrganizationID retrieves the authenticated organization id from context
func GetOrganizationID(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.ContextKeyOrganizationID)
	if !exists {
		return "", false
	}

	organizationID, ok := value.(string)
	if !ok || organizationID == "" {
		return "", false
	}
	return organizationID, true
}
