package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gearguard/internal/shared/constants"
)

// RequestID propagates X-Request-ID, generating one when the client did
// not send it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(constants.ContextKeyRequestID, id)
		c.Header(constants.HeaderXRequestID, id)
		c.Next()
	}
}
