package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"rainfallapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; validation beyond request shape lives in the service.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.ReportService) {
	app.Get("/", Root())
	app.Get("/health", HealthCheck(db, svc))
	app.Get("/healthz", LivenessProbe())
	app.Get("/test-parser", TestParser(svc))

	app.Post("/process-pdf", ProcessPDF(svc))
	app.Post("/process-pdf-base64", ProcessPDFBase64(svc))

	app.Get("/reports", ListReports(svc))
	app.Get("/reports/:id", GetReport(svc))
	app.Get("/reports/:id/records", GetReportRecords(svc))
	app.Get("/reports/:id/download", DownloadReport(svc))
	app.Delete("/reports/:id", DeleteReport(svc))
}
