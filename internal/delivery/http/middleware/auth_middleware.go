package middleware

import (
	"strings"

	"go-jobboard-backend/internal/auth"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// RequireAuth resolves the bearer credential in mandatory mode: requests
// without a valid credential are rejected before the handler runs.
func RequireAuth(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := resolver.Resolve(c.Request.Context(), bearerToken(c), auth.ModeRequired)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		c.Set(string(domain.KeyActor), actor)
		c.Next()
	}
}

// OptionalAuth resolves the bearer credential in optional mode: an absent
// or invalid credential yields the anonymous actor.
func OptionalAuth(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := resolver.Resolve(c.Request.Context(), bearerToken(c), auth.ModeOptional)
		if err != nil {
			// Storage failures propagate even in optional mode.
			c.Error(err)
			c.Abort()
			return
		}
		c.Set(string(domain.KeyActor), actor)
		c.Next()
	}
}

// ActorFrom returns the actor the auth middleware stored on the request,
// or the anonymous actor when none was resolved.
func ActorFrom(c *gin.Context) domain.Actor {
	value, ok := c.Get(string(domain.KeyActor))
	if !ok {
		return domain.Anonymous
	}
	actor, ok := value.(domain.Actor)
	if !ok {
		return domain.Anonymous
	}
	return actor
}
