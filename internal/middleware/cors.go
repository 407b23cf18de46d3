package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

// wildcardOrigin matches exactly one subdomain label, e.g. https://*.example.com
// matches https://app.example.com but not https://a.b.example.com.
type wildcardOrigin struct {
	scheme string
	suffix string
}

// parseWildcardOrigin returns nil unless pattern is scheme://*.domain.tld.
func parseWildcardOrigin(pattern string) *wildcardOrigin {
	scheme, host, ok := strings.Cut(pattern, "://")
	if !ok || scheme == "" {
		return nil
	}
	if !strings.HasPrefix(host, "*.") {
		return nil
	}
	suffix := host[1:]
	rest := suffix[1:]
	if strings.Contains(rest, "*") || !strings.Contains(rest, ".") {
		return nil
	}
	return &wildcardOrigin{scheme: scheme + "://", suffix: suffix}
}

func (w *wildcardOrigin) matches(origin string) bool {
	host, ok := strings.CutPrefix(origin, w.scheme)
	if !ok {
		return false
	}
	label, ok := strings.CutSuffix(host, w.suffix)
	return ok && label != "" && !strings.ContainsAny(label, ".:/")
}

type originPolicy struct {
	allowAll  bool
	exact     []string
	wildcards []*wildcardOrigin
}

func newOriginPolicy(origins []string) originPolicy {
	var p originPolicy
	for _, o := range origins {
		o = strings.TrimSpace(o)
		switch {
		case o == "":
		case o == "*":
			p.allowAll = true
		default:
			if w := parseWildcardOrigin(o); w != nil {
				p.wildcards = append(p.wildcards, w)
			} else {
				p.exact = append(p.exact, o)
			}
		}
	}
	return p
}

func (p originPolicy) allows(origin string) bool {
	if slices.Contains(p.exact, origin) {
		return true
	}
	return slices.ContainsFunc(p.wildcards, func(w *wildcardOrigin) bool { return w.matches(origin) })
}

// CORS allows the configured origins. "*" allows any origin without credentials;
// disallowed preflights are rejected with 403.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	policy := newOriginPolicy(allowedOrigins)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		h := c.Writer.Header()

		switch {
		case policy.allowAll:
			h.Set("Access-Control-Allow-Origin", "*")
		case origin != "" && policy.allows(origin):
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")
		case c.Request.Method == http.MethodOptions:
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		h.Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		h.Set("Access-Control-Expose-Headers", "X-Request-ID, Retry-After")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
