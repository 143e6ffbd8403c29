package middleware

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const MaintenanceHeader = "x-maintenance-mode"

// SentinelPath returns the maintenance flag file location. Operations toggles
// maintenance by touching or removing this file - no restart, no state machine.
func SentinelPath() string {
	if path := os.Getenv("MAINTENANCE_FILE"); path != "" {
		return path
	}
	return "./maintenance.flag"
}

// Maintenance flags every response with x-maintenance-mode: true while the
// sentinel file exists. Static uploads and the system status route pass
// through unmarked so the status page and resume links keep working.
func Maintenance(c *fiber.Ctx) error {
	path := c.Path()
	if strings.HasPrefix(path, "/uploads") || path == "/api/system/status" {
		return c.Next()
	}

	if _, err := os.Stat(SentinelPath()); err == nil {
		c.Set(MaintenanceHeader, "true")
	}

	return c.Next()
}
