package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// OperatorOnly gates the operator endpoints (order status updates, order
// deletion) behind a shared token carried in the X-Operator-Token header.
func OperatorOnly(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader("X-Operator-Token")
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "operator only"})
			return
		}
		c.Next()
	}
}
