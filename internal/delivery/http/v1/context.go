package v1

import (
	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/domain"
)

// currentUserID returns the authenticated account id, or 0 for anonymous
// requests on optional-auth routes.
func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(string(domain.KeyUserID))
}

func currentUserRole(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserRole))
}
