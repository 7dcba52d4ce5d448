package model

import "time"

// Report represents one processed rainfall PDF report.
// This is a pure domain model with no database-specific dependencies or tags;
// it crosses layers (HTTP, service, storage) without coupling to persistence.
type Report struct {
	ID             string    `json:"id"`
	SourceFilename string    `json:"source_filename"`
	StoragePath    string    `json:"storage_path"`
	ReportDate     time.Time `json:"report_date"`
	Size           int64     `json:"size"`
	RecordsCount   int       `json:"records_count"`
	ProcessingMS   int64     `json:"processing_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

// Record is a single station-level rainfall measurement extracted from a report.
// Trace marks readings the bulletin prints as "TR": rain fell but below the
// measurable threshold, recorded as 0.0 mm.
type Record struct {
	ID           string    `json:"id"`
	ReportID     string    `json:"report_id"`
	Station      string    `json:"station"`
	District     string    `json:"district,omitempty"`
	RainfallMM   float64   `json:"rainfall_mm"`
	NormalMM     float64   `json:"normal_mm"`
	DeparturePct float64   `json:"departure_pct"`
	Trace        bool      `json:"trace"`
	RecordDate   time.Time `json:"record_date"`
}
