package resputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ramya-constructions/estate-backend/pkg/apperror"
	"github.com/ramya-constructions/estate-backend/pkg/logutils"
)

// Response is the standard success envelope.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func Success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// HTTPError writes an error envelope with an explicit status code.
func HTTPError(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{
		"success": false,
		"detail":  detail,
	})
}

// Error maps a core error onto its HTTP status. Callers match on status,
// not on structured codes; internal causes are logged here and never
// leak into the response body.
func Error(c *gin.Context, err error) {
	switch apperror.KindOf(err) {
	case apperror.KindValidation, apperror.KindConflict:
		HTTPError(c, http.StatusBadRequest, apperror.DetailOf(err))
	case apperror.KindUnauthenticated:
		HTTPError(c, http.StatusUnauthorized, apperror.DetailOf(err))
	case apperror.KindNotFound:
		HTTPError(c, http.StatusNotFound, apperror.DetailOf(err))
	default:
		logutils.Log.WithField("path", c.FullPath()).Error(err)
		HTTPError(c, http.StatusInternalServerError, apperror.DetailOf(err))
	}
}
