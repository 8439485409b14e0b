package middleware

import (
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware authenticates the request from a session token carried in
// the Authorization header or the auth_token cookie. Identity claims are
// copied into the gin context for handlers.
func AuthMiddleware(tokens *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		// 1. Try to get token from Header
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// 2. Try to get token from Cookie
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

		claims, err := tokens.Verify(tokenString, token.PurposeSession)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.Subject)
		c.Set(string(domain.KeyUserEmail), claims.Email)
		c.Set(string(domain.KeyUserName), claims.Name)
		c.Set(string(domain.KeyUserRoles), claims.Roles)

		c.Next()
	}
}

// RequirePermissions allows the request only if the caller's roles grant at
// least one of the given permissions. Role resolution happens server-side;
// tokens carry role names only.
func RequirePermissions(perms ...domain.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		rolesVal, ok := c.Get(string(domain.KeyUserRoles))
		roles, _ := rolesVal.([]string)
		if !ok || len(roles) == 0 {
			denyForbidden(c)
			return
		}

		set := domain.PermissionsForRoles(roles)
		if !set.HasAny(perms...) {
			denyForbidden(c)
			return
		}

		c.Next()
	}
}

func denyForbidden(c *gin.Context) {
	reqID, _ := c.Get("RequestID")
	reqIDStr, _ := reqID.(string)
	userID, _ := c.Get(string(domain.KeyUserID))
	userIDStr, _ := userID.(string)

	security.DefaultLogger().Log(c.Request.Context(), security.SecurityEvent{
		Event:        security.EventUnauthorizedAccess,
		SubjectType:  "user_id",
		SubjectValue: userIDStr,
		IP:           c.ClientIP(),
		RequestID:    reqIDStr,
		Details:      map[string]interface{}{"endpoint": c.FullPath()},
	})

	response.Error(c, http.StatusForbidden, "You do not have permission to perform this action", nil)
	c.Abort()
}
