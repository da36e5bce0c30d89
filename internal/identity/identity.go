package identity

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skyfare/pkg/logger"
)

const userIDKey = "identity.user_id"

// Verifier turns a bearer credential into a stable user identifier.
type Verifier interface {
	Verify(token string) (string, error)
}

// Authenticator gates routes behind the identity collaborator. Without a
// configured Verifier it runs in demo mode and trusts the X-User-Id header.
type Authenticator struct {
	verifier Verifier
	logger   logger.Client
}

func NewAuthenticator(verifier Verifier, log logger.Client) *Authenticator {
	return &Authenticator{verifier: verifier, logger: log}
}

func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := a.resolve(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func (a *Authenticator) resolve(c *gin.Context) (string, bool) {
	if a.verifier == nil {
		userID := c.GetHeader("X-User-Id")
		return userID, userID != ""
	}

	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}

	userID, err := a.verifier.Verify(token)
	if err != nil {
		a.logger.Warn("token verification failed", logger.Field{Key: "err", Value: err})
		return "", false
	}
	return userID, true
}

// UserID returns the authenticated user id set by Middleware.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
