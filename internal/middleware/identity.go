package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/team-modeni/modeni-backend/internal/logger"
	"github.com/team-modeni/modeni-backend/internal/services"
	"github.com/team-modeni/modeni-backend/internal/types"
)

const userContextKey = "current_user"

// IdentityMiddleware resolves the caller from the X-User-ID header set
// by the upstream auth gateway. Authentication itself happens there;
// this layer only loads the profile the engine needs.
type IdentityMiddleware struct {
	log     *logger.Logger
	userSvc services.UserService
}

func NewIdentityMiddleware(log *logger.Logger, userSvc services.UserService) *IdentityMiddleware {
	middlewareLogger := log.With("middleware", "IdentityMiddleware")
	return &IdentityMiddleware{log: middlewareLogger, userSvc: userSvc}
}

func (im *IdentityMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing X-User-ID header"})
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid X-User-ID header"})
			return
		}
		user, err := im.userSvc.GetByID(c.Request.Context(), userID)
		if err != nil {
			im.log.Warn("Unknown user", "user_id", userID, "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by RequireUser.
func CurrentUser(c *gin.Context) (*types.User, bool) {
	val, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := val.(*types.User)
	return user, ok
}
