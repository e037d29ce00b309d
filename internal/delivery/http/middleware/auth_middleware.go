package middleware

import (
	"context"
	"net/http"
	"strings"

	"recruiterconnect-backend/internal/delivery/http/response"
	"recruiterconnect-backend/internal/domain"
	"recruiterconnect-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the session token and threads the identity
// into the request context. The user type is re-read from the database
// on every request: the token claim goes stale as soon as onboarding
// assigns a type.
func AuthMiddleware(tokens *auth.TokenManager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		userType := ""
		if user.UserType != nil {
			userType = string(*user.UserType)
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserType), userType)

		// Usecases read the identity from the request context, not from
		// gin's key store.
		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, user.Email)
		ctx = context.WithValue(ctx, domain.KeyUserType, userType)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
