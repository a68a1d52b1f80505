package auth

import (
	"errors"
	"net/http"

	"trip-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequireUser rejects requests without a valid, resolvable identity.
// This is the strict policy: an unreachable or rejecting user service fails
// the request, same as an invalid token.
//
// If an earlier middleware already resolved an identity into the request
// context, it is reused; the resolver is not called twice per request.
func RequireUser(a *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentityFrom(c.Request.Context()); ok {
			c.Next()
			return
		}

		rec, err := a.Authenticate(c.Request.Context(), c.GetHeader(authorizationHeader))
		if err != nil {
			switch {
			case errors.Is(err, ErrNoCredential):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			case errors.Is(err, ErrInvalidToken):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			default:
				logger.FromGin(c).Error("identity resolution failed", "err", err)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unable to verify user"})
			}
			return
		}

		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), rec))
		c.Next()
	}
}

// OptionalUser resolves an identity when a valid token is present and
// otherwise lets the request through as anonymous. Resolution failures are
// logged and never rejected here; that is the lenient policy used outside the
// strict authentication step.
func OptionalUser(a *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := a.Authenticate(c.Request.Context(), c.GetHeader(authorizationHeader))
		if err != nil {
			if !errors.Is(err, ErrNoCredential) {
				logger.FromGin(c).Debug("treating request as anonymous", "err", err)
			}
			c.Next()
			return
		}
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), rec))
		c.Next()
	}
}
