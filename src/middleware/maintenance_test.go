package middleware

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(Maintenance)
	app.Get("/api/courses", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/api/system/status", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/uploads/resumes/x.pdf", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestMaintenanceHeaderAbsentByDefault(t *testing.T) {
	t.Setenv("MAINTENANCE_FILE", filepath.Join(t.TempDir(), "maintenance.flag"))
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses", nil))
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get(MaintenanceHeader))
}

func TestMaintenanceHeaderSetWhenSentinelExists(t *testing.T) {
	sentinel := filepath.Join(t.TempDir(), "maintenance.flag")
	t.Setenv("MAINTENANCE_FILE", sentinel)
	require.NoError(t, os.WriteFile(sentinel, nil, 0o644))

	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses", nil))
	require.NoError(t, err)
	assert.Equal(t, "true", resp.Header.Get(MaintenanceHeader))
}

func TestMaintenanceExemptRoutes(t *testing.T) {
	sentinel := filepath.Join(t.TempDir(), "maintenance.flag")
	t.Setenv("MAINTENANCE_FILE", sentinel)
	require.NoError(t, os.WriteFile(sentinel, nil, 0o644))

	app := newTestApp()

	for _, path := range []string{"/api/system/status", "/uploads/resumes/x.pdf"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Empty(t, resp.Header.Get(MaintenanceHeader), path)
	}
}

func TestMaintenanceToggleWithoutRestart(t *testing.T) {
	sentinel := filepath.Join(t.TempDir(), "maintenance.flag")
	t.Setenv("MAINTENANCE_FILE", sentinel)

	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses", nil))
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get(MaintenanceHeader))

	require.NoError(t, os.WriteFile(sentinel, nil, 0o644))
	resp, err = app.Test(httptest.NewRequest("GET", "/api/courses", nil))
	require.NoError(t, err)
	assert.Equal(t, "true", resp.Header.Get(MaintenanceHeader))

	require.NoError(t, os.Remove(sentinel))
	resp, err = app.Test(httptest.NewRequest("GET", "/api/courses", nil))
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get(MaintenanceHeader))
}
