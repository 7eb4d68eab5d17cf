package middleware

import (
	"strings"

	"lye_backend/internal/auth"
	"lye_backend/internal/logger"
	"lye_backend/internal/models"
	"lye_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// UserResolver re-resolves a verified token identity against the
// credential store. Satisfied by repositories.UserRepository.
type UserResolver interface {
	FindByID(id string) (*models.User, error)
}

// AuthMiddleware verifies the bearer token and re-resolves the user. The
// three verification failures stay distinguishable: absent token, expired
// token, malformed token. A token for a vanished or deactivated user is
// treated as unauthenticated, never as forbidden.
func AuthMiddleware(tokens *auth.TokenIssuer, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, apperrors.ErrTokenMissing)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			if apperrors.Is(err, auth.ErrTokenExpired) {
				abortWithError(c, apperrors.ErrTokenExpired)
				return
			}
			abortWithError(c, apperrors.ErrTokenInvalid)
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			abortWithError(c, apperrors.NewUnauthorizedError("User no longer exists"))
			return
		}
		if !user.IsActive {
			abortWithError(c, apperrors.ErrAccountInactive)
			return
		}

		// The role comes from the store, not from the claim: a role
		// change takes effect without waiting out the token TTL.
		c.Set("userID", user.ID)
		c.Set("role", user.Role)

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles gates a route to the named roles. It runs after
// AuthMiddleware, so a missing role means a broken chain, not a client
// error.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			abortWithError(c, apperrors.NewUnauthorizedError("User not authenticated"))
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				abortWithError(c, apperrors.ErrInsufficientRole)
				return
			}
			role = models.UserRole(roleStr)
		}

		if !auth.Allow(role, roles...) {
			abortWithError(c, apperrors.ErrInsufficientRole)
			return
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated user ID from the gin context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

func abortWithError(c *gin.Context, err *apperrors.AppError) {
	c.Abort()
	apperrors.HandleError(c, err)
}
