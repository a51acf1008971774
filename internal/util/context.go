package util

import "github.com/gin-gonic/gin"

const AdminIDKey = "x-admin-id"

func SetAdminContext(c *gin.Context, adminID string) {
	c.Set(AdminIDKey, adminID)
}

// GetAdminID returns the authenticated admin id set by the JWT
// middleware. Empty outside authenticated routes.
func GetAdminID(c *gin.Context) string {
	return c.GetString(AdminIDKey)
}
