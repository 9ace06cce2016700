package server

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katiyar-electronics/bill-engine/internal/common"
)

// requestID tags every request context with a fresh id so pipeline and
// lookup logs can be correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Request = c.Request.WithContext(common.WithRequestID(c.Request.Context(), id))
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
