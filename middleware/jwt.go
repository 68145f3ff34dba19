package middleware

import (
	"fmt"
	"strings"
	"time"

	"enrollapp/config"
	"enrollapp/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// AuthGuard issues and verifies bearer tokens and gates requests by account
// state and role. It is constructed once at startup with the config value.
type AuthGuard struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthGuard(db *gorm.DB, cfg *config.Config) *AuthGuard {
	return &AuthGuard{db: db, cfg: cfg}
}

// GenerateJWT signs a token carrying the subject email and role.
func (g *AuthGuard) GenerateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.Email,
		"role": user.Role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Duration(g.cfg.TokenExpiresMin) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(g.cfg.JWTKey))
}

// Authenticate resolves the bearer token in the Authorization header to a
// user record and stores it in the request context.
func (g *AuthGuard) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header!", nil)
		}

		// The token should be prefixed with "Bearer "
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format!", nil)
		}

		tokenString := authHeader[len("Bearer "):]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(g.cfg.JWTKey), nil
		})
		if err != nil || !token.Valid {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token!", nil)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload!", nil)
		}

		email, ok := claims["sub"].(string)
		if !ok || email == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload!", nil)
		}

		// The subject must still exist in the identity store
		var user models.User
		if err := g.db.Where("email = ?", email).First(&user).Error; err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User does not exist!", nil)
		}

		c.Locals("currentUser", &user)
		return c.Next()
	}
}

// Require gates the request on account state and role. The active check
// always precedes the role check; an empty role admits any role.
func (g *AuthGuard) Require(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		if !user.IsActive {
			return JsonResponse(c, fiber.StatusForbidden, false, "Inactive user!", nil)
		}

		if role != "" && user.Role != role {
			return JsonResponse(c, fiber.StatusForbidden, false, "You're not authorized to access this route!", nil)
		}

		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by Authenticate.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("currentUser").(*models.User)
	return user, ok
}
