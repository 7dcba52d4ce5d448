package handler

import (
	"bytes"
	"encoding/base64"
	"errors"

	"github.com/gofiber/fiber/v2"

	"rainfallapi/internal/service"
)

// processBase64Request is the JSON body of the base64 process endpoint.
type processBase64Request struct {
	PDFData string `json:"pdf_data"`
	Date    string `json:"date"`
}

// processError maps service validation failures onto stable error codes.
func processError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotPDF):
		return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_TYPE", "file must be a PDF")
	case errors.Is(err, service.ErrFileTooLarge):
		return writeError(c, fiber.StatusBadRequest, "FILE_TOO_LARGE", "file exceeds the maximum allowed size")
	case errors.Is(err, service.ErrInvalidDate):
		return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "date must be in DD/MM/YYYY format")
	case errors.Is(err, service.ErrNoData):
		return writeError(c, fiber.StatusBadRequest, "NO_DATA_EXTRACTED", "no rainfall data could be extracted from the PDF")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ProcessPDF ingests a rainfall bulletin via multipart upload.
// @Summary Process a rainfall PDF (multipart)
// @Accept mpfd
// @Produce json
// @Param pdf_file formData file true "rainfall bulletin PDF"
// @Param date formData string true "report date, DD/MM/YYYY"
// @Success 200 {object} service.ProcessResult
// @Failure 400 {object} errorPayload
// @Router /process-pdf [post]
func ProcessPDF(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("pdf_file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "pdf_file is required")
		}
		date := c.FormValue("date")

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		res, err := svc.Process(c.UserContext(), f, fh.Filename, fh.Size, date)
		if err != nil {
			return processError(c, err)
		}
		return c.JSON(res)
	}
}

// ProcessPDFBase64 ingests a rainfall bulletin sent as base64 JSON.
// @Summary Process a rainfall PDF (base64)
// @Accept json
// @Produce json
// @Param body body processBase64Request true "base64 PDF and report date"
// @Success 200 {object} service.ProcessResult
// @Failure 400 {object} errorPayload
// @Router /process-pdf-base64 [post]
func ProcessPDFBase64(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req processBase64Request
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.PDFData == "" {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "pdf_data is required")
		}

		data, err := base64.StdEncoding.DecodeString(req.PDFData)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BASE64", "pdf_data is not valid base64")
		}

		// The base64 path has no client filename; a synthetic one keeps the
		// extension check and archive metadata uniform.
		res, err := svc.Process(c.UserContext(), bytes.NewReader(data), "upload.pdf", int64(len(data)), req.Date)
		if err != nil {
			return processError(c, err)
		}
		return c.JSON(res)
	}
}
