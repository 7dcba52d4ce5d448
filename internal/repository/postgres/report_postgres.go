package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"rainfallapi/internal/model"
	"rainfallapi/internal/repository"
)

// ReportPostgres is a PostgreSQL implementation of repository.ReportRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ReportPostgres struct {
	db *sql.DB
}

// NewReportPostgres creates a new ReportPostgres repository.
func NewReportPostgres(db *sql.DB) *ReportPostgres {
	return &ReportPostgres{db: db}
}

var _ repository.ReportRepository = (*ReportPostgres)(nil)

// CreateReport inserts the report and its records atomically.
func (r *ReportPostgres) CreateReport(ctx context.Context, report *model.Report, records []model.Record) (*model.Report, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	const qReport = `
		INSERT INTO rainfall_reports (id, source_filename, storage_path, report_date, size, records_count, processing_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, source_filename, storage_path, report_date, size, records_count, processing_ms, created_at
	`
	row := tx.QueryRowContext(ctx, qReport,
		report.ID,
		report.SourceFilename,
		report.StoragePath,
		report.ReportDate,
		report.Size,
		report.RecordsCount,
		report.ProcessingMS,
		report.CreatedAt,
	)
	var out model.Report
	if err := row.Scan(
		&out.ID,
		&out.SourceFilename,
		&out.StoragePath,
		&out.ReportDate,
		&out.Size,
		&out.RecordsCount,
		&out.ProcessingMS,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}

	const qRecord = `
		INSERT INTO rainfall_records (id, report_id, station, district, rainfall_mm, normal_mm, departure_pct, trace, record_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, rec := range records {
		if _, err := tx.ExecContext(ctx, qRecord,
			rec.ID,
			rec.ReportID,
			rec.Station,
			nullString(rec.District),
			rec.RainfallMM,
			rec.NormalMM,
			rec.DeparturePct,
			rec.Trace,
			rec.RecordDate,
		); err != nil {
			return nil, fmt.Errorf("insert record for station %q: %w", rec.Station, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return &out, nil
}

// FindByID fetches a single report by its ID.
func (r *ReportPostgres) FindByID(ctx context.Context, id string) (*model.Report, error) {
	const q = `
		SELECT id, source_filename, storage_path, report_date, size, records_count, processing_ms, created_at
		FROM rainfall_reports
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var rep model.Report
	if err := row.Scan(
		&rep.ID,
		&rep.SourceFilename,
		&rep.StoragePath,
		&rep.ReportDate,
		&rep.Size,
		&rep.RecordsCount,
		&rep.ProcessingMS,
		&rep.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rep, nil
}

// List returns reports using LIMIT/OFFSET pagination and a total count.
func (r *ReportPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Report], error) {
	const qCount = `SELECT COUNT(*) FROM rainfall_reports`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, source_filename, storage_path, report_date, size, records_count, processing_ms, created_at
		FROM rainfall_reports
		ORDER BY report_date DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Report, 0)
	for rows.Next() {
		var rep model.Report
		if err := rows.Scan(
			&rep.ID,
			&rep.SourceFilename,
			&rep.StoragePath,
			&rep.ReportDate,
			&rep.Size,
			&rep.RecordsCount,
			&rep.ProcessingMS,
			&rep.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Report]{
		Items: items,
		Total: total,
	}, nil
}

// ListRecords returns every record of a report, ordered by station name.
func (r *ReportPostgres) ListRecords(ctx context.Context, reportID string) ([]model.Record, error) {
	const q = `
		SELECT id, report_id, station, COALESCE(district, ''), rainfall_mm, normal_mm, departure_pct, trace, record_date
		FROM rainfall_records
		WHERE report_id = $1
		ORDER BY station
	`
	rows, err := r.db.QueryContext(ctx, q, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Record, 0)
	for rows.Next() {
		var rec model.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.ReportID,
			&rec.Station,
			&rec.District,
			&rec.RainfallMM,
			&rec.NormalMM,
			&rec.DeparturePct,
			&rec.Trace,
			&rec.RecordDate,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a report by ID. It does not return an error if the row does not exist.
func (r *ReportPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM rainfall_reports WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
