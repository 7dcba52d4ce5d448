package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"rainfallapi/internal/model"
	"rainfallapi/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var reportColumns = []string{"id", "source_filename", "storage_path", "report_date", "size", "records_count", "processing_ms", "created_at"}

func TestReportPostgres_CreateReport(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewReportPostgres(db)
	ctx := context.Background()

	date := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	report := &model.Report{
		ID:             "report-uuid",
		SourceFilename: "bulletin.pdf",
		StoragePath:    "reports/report-uuid.pdf",
		ReportDate:     date,
		Size:           2048,
		RecordsCount:   2,
		ProcessingMS:   120,
		CreatedAt:      now,
	}
	records := []model.Record{
		{ID: "rec-1", ReportID: "report-uuid", Station: "HILLTOP", District: "NORTH", RainfallMM: 42.5, RecordDate: date},
		{ID: "rec-2", ReportID: "report-uuid", Station: "RIVERSIDE", RainfallMM: 0, Trace: true, RecordDate: date},
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rainfall_reports").
			WithArgs(report.ID, report.SourceFilename, report.StoragePath, report.ReportDate, report.Size, report.RecordsCount, report.ProcessingMS, report.CreatedAt).
			WillReturnRows(sqlmock.NewRows(reportColumns).
				AddRow(report.ID, report.SourceFilename, report.StoragePath, report.ReportDate, report.Size, report.RecordsCount, report.ProcessingMS, report.CreatedAt))
		mock.ExpectExec("INSERT INTO rainfall_records").
			WithArgs("rec-1", "report-uuid", "HILLTOP", sql.NullString{String: "NORTH", Valid: true}, 42.5, 0.0, 0.0, false, date).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO rainfall_records").
			WithArgs("rec-2", "report-uuid", "RIVERSIDE", sql.NullString{}, 0.0, 0.0, 0.0, true, date).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		result, err := repo.CreateReport(ctx, report, records)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, report.ID, result.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("record insert failure rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rainfall_reports").
			WillReturnRows(sqlmock.NewRows(reportColumns).
				AddRow(report.ID, report.SourceFilename, report.StoragePath, report.ReportDate, report.Size, report.RecordsCount, report.ProcessingMS, report.CreatedAt))
		mock.ExpectExec("INSERT INTO rainfall_records").
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		result, err := repo.CreateReport(ctx, report, records)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "HILLTOP")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReportPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewReportPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(reportColumns).
			AddRow("test-id", "bulletin.pdf", "reports/test-id.pdf", time.Now(), 100, 5, 80, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rainfall_reports WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		rep, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.NotNil(t, rep)
		assert.Equal(t, "test-id", rep.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rainfall_reports WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		rep, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, rep)
	})
}

func TestReportPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewReportPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM rainfall_reports").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rows := sqlmock.NewRows(reportColumns).
		AddRow("test-id", "bulletin.pdf", "reports/test-id.pdf", time.Now(), 100, 5, 80, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM rainfall_reports ORDER BY").
		WithArgs(10, 0).
		WillReturnRows(rows)

	res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportPostgres_ListRecords(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewReportPostgres(db)
	ctx := context.Background()

	cols := []string{"id", "report_id", "station", "district", "rainfall_mm", "normal_mm", "departure_pct", "trace", "record_date"}
	rows := sqlmock.NewRows(cols).
		AddRow("rec-1", "report-id", "HILLTOP", "NORTH", 42.5, 31.0, 37.0, false, time.Now()).
		AddRow("rec-2", "report-id", "RIVERSIDE", "", 0.0, 12.0, -100.0, true, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM rainfall_records WHERE report_id = ?").
		WithArgs("report-id").
		WillReturnRows(rows)

	recs, err := repo.ListRecords(ctx, "report-id")

	assert.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, "HILLTOP", recs[0].Station)
	assert.True(t, recs[1].Trace)
}

func TestReportPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewReportPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM rainfall_reports WHERE id = ?").
		WithArgs("test-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "test-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
