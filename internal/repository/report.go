package repository

import (
	"context"

	"rainfallapi/internal/model"
)

// ReportRepository defines data access for rainfall reports using SQL queries only.
// No business logic here — strictly persistence operations.
type ReportRepository interface {
	// CreateReport inserts the report row and all of its records in one transaction.
	// Returns the stored report (may include values set by the DB).
	CreateReport(ctx context.Context, report *model.Report, records []model.Record) (*model.Report, error)

	// FindByID returns a report by its ID.
	FindByID(ctx context.Context, id string) (*model.Report, error)

	// List returns a paginated list of reports and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Report], error)

	// ListRecords returns all records belonging to a report, ordered by station.
	ListRecords(ctx context.Context, reportID string) ([]model.Record, error)

	// Delete removes a report by ID; records go with it via the FK cascade.
	// It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
