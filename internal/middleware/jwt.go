package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ramya-constructions/estate-backend/internal/resputil"
	"github.com/ramya-constructions/estate-backend/internal/util"
)

// AuthRequired guards admin write surfaces with a bearer token. Token
// validity is taken as sufficient: a deleted admin's outstanding token
// stays usable until it expires, matching the issuing contract.
func AuthRequired(tokenMgr *util.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			resputil.HTTPError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		adminID, err := tokenMgr.CheckToken(token)
		if err != nil {
			resputil.HTTPError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		util.SetAdminContext(c, adminID)
		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	parts := strings.Split(c.Request.Header.Get("Authorization"), " ")
	if len(parts) < 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
