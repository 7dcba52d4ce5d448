package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_rainfall_reports",
		SQL: `CREATE TABLE IF NOT EXISTS rainfall_reports (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  source_filename TEXT        NOT NULL,
  storage_path    TEXT        NOT NULL UNIQUE,
  report_date     DATE        NOT NULL,
  size            BIGINT      NOT NULL CHECK (size >= 0),
  records_count   INT         NOT NULL CHECK (records_count >= 0),
  processing_ms   BIGINT      NOT NULL,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_rainfall_records",
		SQL: `CREATE TABLE IF NOT EXISTS rainfall_records (
  id            UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  report_id     UUID             NOT NULL REFERENCES rainfall_reports(id) ON DELETE CASCADE,
  station       TEXT             NOT NULL,
  district      TEXT,
  rainfall_mm   DOUBLE PRECISION NOT NULL,
  normal_mm     DOUBLE PRECISION,
  departure_pct DOUBLE PRECISION,
  trace         BOOLEAN          NOT NULL DEFAULT false,
  record_date   DATE             NOT NULL
);`,
	},
	{
		Name: "create_index_rainfall_reports_report_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_rainfall_reports_report_date ON rainfall_reports (report_date);`,
	},
	{
		Name: "create_index_rainfall_reports_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_rainfall_reports_created_at ON rainfall_reports (created_at);`,
	},
	{
		Name: "create_index_rainfall_records_report_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_rainfall_records_report_id ON rainfall_records (report_id);`,
	},
	{
		Name: "create_index_rainfall_records_station",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_rainfall_records_station ON rainfall_records (station);`,
	},
}

// EnsureMigrated checks if the 'rainfall_reports' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.rainfall_reports') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
