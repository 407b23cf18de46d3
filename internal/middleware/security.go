package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders adds hardening headers to every response. Journal content is
// private, so responses are never cacheable. HSTS is only sent in production,
// where the API sits behind TLS.
func SecurityHeaders(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")

		c.Header("Cache-Control", "no-store")
		c.Header("Pragma", "no-cache")

		if production {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

		c.Next()
	}
}
