package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"rainfallapi/internal/model"
	"rainfallapi/internal/parser"
	"rainfallapi/internal/repository"
	"rainfallapi/internal/storage"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrNotFound     = errors.New("report not found")
	ErrReaderNil    = errors.New("reader is nil")
	ErrInvalidDate  = errors.New("date must be in DD/MM/YYYY format")
	ErrNotPDF       = errors.New("file must be a PDF")
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")

	// ErrNoData surfaces the parser's empty-extraction failure to handlers.
	ErrNoData = parser.ErrNoData
)

// reportDateLayout is the DD/MM/YYYY wire format used by the process endpoints.
const reportDateLayout = "02/01/2006"

// ProcessResult is the response body of both process endpoints.
type ProcessResult struct {
	Success          bool           `json:"success"`
	ReportID         string         `json:"report_id"`
	RecordsCount     int            `json:"records_count"`
	Message          string         `json:"message"`
	ProcessingTimeMS int64          `json:"processing_time_ms"`
	Summary          parser.Summary `json:"summary"`
}

// ReportListResult is the service-level DTO for paginated reports.
type ReportListResult struct {
	Items []model.Report `json:"data"`
	Total int            `json:"total"`
}

// ReportService defines the use cases for processing and serving rainfall reports.
type ReportService interface {
	// Process validates the upload, extracts rainfall records from the PDF,
	// archives the source file, and persists report plus records. The archived
	// object is rolled back if the DB save fails.
	Process(ctx context.Context, r io.Reader, originalFilename string, size int64, date string) (*ProcessResult, error)

	// List returns reports using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*ReportListResult, error)

	// Get returns a single report by its ID.
	Get(ctx context.Context, id string) (*model.Report, error)

	// Records returns the extracted records of a report.
	Records(ctx context.Context, id string) ([]model.Record, error)

	// Delete removes a report from both archive storage and the repository.
	Delete(ctx context.Context, id string) error

	// DownloadURL returns a presigned URL for the archived source PDF.
	DownloadURL(ctx context.Context, id string, expiry time.Duration) (string, error)

	// SelfCheck verifies the parser is functional without a real file.
	SelfCheck() error
}

// Extractor is the parsing dependency; *parser.Parser satisfies it.
type Extractor interface {
	Parse(ctx context.Context, data []byte) ([]parser.Record, error)
	SelfCheck() error
}

// reportService is a concrete implementation of ReportService.
type reportService struct {
	store    storage.Storage
	repo     repository.ReportRepository
	extract  Extractor
	maxBytes int64

	// recordsExtracted counts station records extracted across all reports.
	// Optional; nil disables the metric.
	recordsExtracted prometheus.Counter
}

// NewReportService constructs a new ReportService.
func NewReportService(store storage.Storage, repo repository.ReportRepository, extract Extractor, maxBytes int64, recordsExtracted prometheus.Counter) ReportService {
	return &reportService{
		store:            store,
		repo:             repo,
		extract:          extract,
		maxBytes:         maxBytes,
		recordsExtracted: recordsExtracted,
	}
}

func (s *reportService) Process(ctx context.Context, r io.Reader, originalFilename string, size int64, date string) (*ProcessResult, error) {
	start := time.Now()

	if r == nil {
		return nil, ErrReaderNil
	}
	if strings.ToLower(filepath.Ext(originalFilename)) != ".pdf" {
		return nil, ErrNotPDF
	}
	if size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	reportDate, err := time.Parse(reportDateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	// The declared size is client-supplied; cap the read regardless.
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	recs, err := s.extract.Parse(ctx, data)
	if err != nil {
		return nil, err
	}
	summary := parser.Summarize(recs)

	// Archive the source PDF under a generated key.
	reportID := uuid.New().String()
	key := filepath.ToSlash(filepath.Join("reports", reportID+".pdf"))
	objInfo, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: "application/pdf",
		Metadata: map[string]string{
			"original-filename": originalFilename,
			"report-date":       date,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("archive pdf: %w", err)
	}

	report := &model.Report{
		ID:             reportID,
		SourceFilename: originalFilename,
		StoragePath:    objInfo.Key,
		ReportDate:     reportDate,
		Size:           objInfo.Size,
		RecordsCount:   len(recs),
		ProcessingMS:   time.Since(start).Milliseconds(),
		CreatedAt:      time.Now().UTC(),
	}
	records := make([]model.Record, 0, len(recs))
	for _, rec := range recs {
		records = append(records, model.Record{
			ID:           uuid.New().String(),
			ReportID:     reportID,
			Station:      rec.Station,
			District:     rec.District,
			RainfallMM:   rec.RainfallMM,
			NormalMM:     rec.NormalMM,
			DeparturePct: rec.DeparturePct,
			Trace:        rec.Trace,
			RecordDate:   reportDate,
		})
	}

	stored, err := s.repo.CreateReport(ctx, report, records)
	if err != nil {
		// Rollback: delete the archived object.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	if s.recordsExtracted != nil {
		s.recordsExtracted.Add(float64(len(records)))
	}

	return &ProcessResult{
		Success:          true,
		ReportID:         stored.ID,
		RecordsCount:     len(records),
		Message:          fmt.Sprintf("PDF processed successfully. %d records extracted and stored.", len(records)),
		ProcessingTimeMS: time.Since(start).Milliseconds(),
		Summary:          summary,
	}, nil
}

// List returns paginated reports without exposing repository types.
func (s *reportService) List(ctx context.Context, limit, offset int) (*ReportListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ReportListResult{Items: res.Items, Total: res.Total}, nil
}

// Get returns a report by ID.
func (s *reportService) Get(ctx context.Context, id string) (*model.Report, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rep, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rep, nil
}

// Records returns the extracted records of a report, 404-mapping a missing report.
func (s *reportService) Records(ctx context.Context, id string) ([]model.Record, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.repo.ListRecords(ctx, id)
}

// Delete removes a report from the archive, then deletes its rows.
func (s *reportService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	// Find the report to get its storage path
	rep, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	// Delete from storage first; if this fails, keep DB rows to avoid orphaned archive references
	if err := s.store.Delete(ctx, rep.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	// Records go with the report via the FK cascade.
	return s.repo.Delete(ctx, id)
}

// DownloadURL presigns the archived source PDF.
func (s *reportService) DownloadURL(ctx context.Context, id string, expiry time.Duration) (string, error) {
	if id == "" {
		return "", ErrIDRequired
	}
	rep, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return s.store.PresignGet(ctx, rep.StoragePath, expiry)
}

// SelfCheck exercises the parser against canned rows.
func (s *reportService) SelfCheck() error {
	return s.extract.SelfCheck()
}
