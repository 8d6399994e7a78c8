package middleware

import (
	"bytes"
	"io"

	"github.com/gin-gonic/gin"

	logger "prepwise-backend-V1.0/pkg/logging"
)

// RequestDumpMiddleware logs method, URL, headers and body of every
// request. Enabled via the REQUEST_DUMP config attribute; never enable it
// in production, bodies may contain credentials.
func RequestDumpMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		logger.Debug(
			"[Request]\n"+
				"\tMethod: %s\n"+
				"\tURL: %s\n"+
				"\tHeaders: %v\n"+
				"\tParams: %v\n"+
				"\tBody: %s",
			c.Request.Method,
			c.Request.URL.String(),
			c.Request.Header,
			c.Params,
			string(bodyBytes),
		)

		c.Next()
	}
}
