package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"rainfallapi/internal/service"
)

const apiVersion = "1.0.0"

// Root returns the API banner used by uptime checks.
// @Summary API status banner
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Rainfall PDF Parser API is running",
			"status":  "healthy",
			"version": apiVersion,
		})
	}
}

// HealthCheck verifies DB connectivity and that the parser is functional.
// @Summary Deep health check
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db *sql.DB, svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		if err := svc.SelfCheck(); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "parser unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"parser":    "available",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// LivenessProbe is a simple liveness probe with no dependency checks.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// TestParser exercises the extraction pipeline against canned rows.
// @Summary Parser self-test
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} errorPayload
// @Router /test-parser [get]
func TestParser(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.SelfCheck(); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "PARSER_CHECK_FAILED", "parser check failed")
		}
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Parser is working correctly",
		})
	}
}
