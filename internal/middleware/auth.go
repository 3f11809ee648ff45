package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"campus-assistant/internal/model"
	"campus-assistant/pkg/response"
)

const scopeContextKey = "auth.scope"

// SetScope stores the authenticated scope on the gin context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeContextKey, sc)
}

// ScopeFromContext returns the scope placed by the Auth middleware.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeContextKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

// Auth validates the bearer token against the auth server and attaches the
// resulting scope to the request. Verified tokens are cached with a TTL.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if sc, ok := m.tokens.Get(token); ok {
			SetScope(c, sc)
			c.Next()
			return
		}

		user, err := m.verifier.GetUser(c.Request.Context(), token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: token rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := model.Scope{
			UserID:      user.ID,
			Email:       user.Email,
			AccessToken: token,
		}
		m.tokens.Add(token, sc)
		SetScope(c, sc)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
