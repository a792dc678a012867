package middleware

import (
	"strings"

	"spabook/internal/adapters/persistence/repositories"
	"spabook/internal/config"
	"spabook/internal/core/domain"
	"spabook/internal/pkg/jwt"
	"spabook/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try to get token from cookie first
		accessToken = c.Cookies("access_token")

		// 2. If not in cookie, try Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 4. Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 5. Set user info in context. The role is NOT taken from the
		// token, it is resolved per request by RequireRole so a role
		// change takes effect immediately.
		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)

		return c.Next()
	}
}

// RequireRole creates authorization middleware that resolves the
// caller's profile from the store on every request and admits only the
// required role. Any failure along the way (missing auth context,
// lookup error, absent profile, role mismatch) denies access.
func RequireRole(profiles repositories.ProfileRepository, required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(uint)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		profile, err := profiles.GetByUserID(c.Context(), userID)
		if err != nil || profile == nil {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		if !profile.Role.Matches(required) {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		c.Locals("role", profile.Role)
		c.Locals("profileID", profile.ID)

		return c.Next()
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly(profiles repositories.ProfileRepository) fiber.Handler {
	return RequireRole(profiles, domain.RoleAdmin)
}

// MasseurOnly middleware allows only the masseur role
func MasseurOnly(profiles repositories.ProfileRepository) fiber.Handler {
	return RequireRole(profiles, domain.RoleMasseur)
}
