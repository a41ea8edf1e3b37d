package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pulse/internal/models/db_models"
	"pulse/internal/repositories"
	"pulse/pkg/utils"
)

const currentUserKey = "current_user"

// AuthMiddleware guards routes with bearer-token authentication. On
// success the resolved user is attached to the request context.
type AuthMiddleware struct {
	tokens *utils.TokenIssuer
	users  repositories.UserRepository
}

func NewAuthMiddleware(tokens *utils.TokenIssuer, users repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// RequireAuth rejects with 403 when no bearer credential is presented and
// with 401 when the presented credential does not verify or references a
// user that no longer exists.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusForbidden, "Not authenticated")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.tokens.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, utils.ErrInvalidToken.Error())
			c.Abort()
			return
		}

		user, err := m.users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
			c.Abort()
			return
		}
		if user == nil {
			utils.RespondError(c, http.StatusUnauthorized, utils.ErrInvalidToken.Error())
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
	}
}

// RequireAdmin builds on RequireAuth and additionally rejects principals
// whose role is not admin. The role check must run before the handler, so
// authentication completes synchronously here instead of handing off to
// the rest of the chain.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	authenticate := m.RequireAuth()
	return func(c *gin.Context) {
		authenticate(c)
		if c.IsAborted() {
			return
		}

		user := CurrentUser(c)
		if user == nil || user.Role != db_models.RoleAdmin {
			utils.RespondError(c, http.StatusForbidden, utils.ErrForbidden.Error())
			c.Abort()
			return
		}
	}
}

// CurrentUser returns the user resolved by RequireAuth, or nil outside a
// guarded route.
func CurrentUser(c *gin.Context) *db_models.User {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := value.(*db_models.User)
	return user
}
