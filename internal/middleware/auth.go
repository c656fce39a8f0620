package middleware

import (
	"strings"

	"linkden/internal/auth"

	"github.com/gin-gonic/gin"
)

const PrincipalKey = "principal"

// ResolvePrincipal extracts the bearer credential and resolves it into a
// Principal on the request context. It never aborts: anonymous requests pass
// through and the policy layer denies where authentication is required.
func ResolvePrincipal(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := ""
		header := c.GetHeader("Authorization")
		if token := strings.TrimPrefix(header, "Bearer "); token != header {
			credential = strings.TrimSpace(token)
		}
		c.Set(PrincipalKey, resolver.Resolve(credential))
		c.Next()
	}
}

// CurrentPrincipal returns the principal set by ResolvePrincipal, or the
// anonymous principal when the middleware did not run.
func CurrentPrincipal(c *gin.Context) auth.Principal {
	if value, exists := c.Get(PrincipalKey); exists {
		if principal, ok := value.(auth.Principal); ok {
			return principal
		}
	}
	return auth.Anonymous()
}
