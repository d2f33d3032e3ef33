package middleware

import (
	"net/http"

	"goldvest-ledger/pkg/apperror"
	"goldvest-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// MaxBodySize limits the request body. A declared Content-Length over the
// limit is refused up front with 413; otherwise the reader fails once the
// limit is crossed and binding reports a validation error.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, apperror.New(apperror.CodeValidation, "Request body too large", http.StatusRequestEntityTooLarge))
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
