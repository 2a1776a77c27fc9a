package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chisan-market/internal/domain"
	"chisan-market/internal/middleware"
)

// newGatedApp wires a route behind the given gate with the user already
// authenticated, so only the role check is under test.
func newGatedApp(user *domain.User, gate fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		if user != nil {
			c.Locals(middleware.UserContextKey, user)
			c.Locals(middleware.UserIDContextKey, user.ID)
		}
		return c.Next()
	})
	app.Get("/guarded", gate, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func request(t *testing.T, app *fiber.App) int {
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestRequireRole(t *testing.T) {
	t.Run("Exact Match Passes", func(t *testing.T) {
		user := &domain.User{ID: uuid.New(), Role: domain.RoleMunicipality}
		app := newGatedApp(user, middleware.RequireRole(domain.RoleMunicipality))

		assert.Equal(t, fiber.StatusOK, request(t, app))
	})

	// Roles are peers: no role implies another.
	t.Run("Every Other Role Forbidden", func(t *testing.T) {
		for _, role := range []domain.UserRole{domain.RoleSales, domain.RoleProducer, domain.RoleRestaurant} {
			user := &domain.User{ID: uuid.New(), Role: role}
			app := newGatedApp(user, middleware.RequireRole(domain.RoleMunicipality))

			assert.Equal(t, fiber.StatusForbidden, request(t, app))
		}
	})

	t.Run("No User Unauthorized", func(t *testing.T) {
		app := newGatedApp(nil, middleware.RequireRole(domain.RoleMunicipality))

		assert.Equal(t, fiber.StatusUnauthorized, request(t, app))
	})
}

func TestRequireAnyRole(t *testing.T) {
	gate := middleware.RequireAnyRole(domain.RoleSales, domain.RoleRestaurant)

	t.Run("Listed Roles Pass", func(t *testing.T) {
		for _, role := range []domain.UserRole{domain.RoleSales, domain.RoleRestaurant} {
			user := &domain.User{ID: uuid.New(), Role: role}
			app := newGatedApp(user, gate)

			assert.Equal(t, fiber.StatusOK, request(t, app))
		}
	})

	t.Run("Unlisted Roles Forbidden", func(t *testing.T) {
		for _, role := range []domain.UserRole{domain.RoleMunicipality, domain.RoleProducer} {
			user := &domain.User{ID: uuid.New(), Role: role}
			app := newGatedApp(user, gate)

			assert.Equal(t, fiber.StatusForbidden, request(t, app))
		}
	})

	t.Run("No User Unauthorized", func(t *testing.T) {
		app := newGatedApp(nil, gate)

		assert.Equal(t, fiber.StatusUnauthorized, request(t, app))
	})
}
