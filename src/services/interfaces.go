// backend/src/services/interfaces.go
package services

import (
	"errors"

	"github.com/username/celuventas/backend/src/models"
)

// Define common service errors
var (
	// ErrReportDataUnavailable marks a report computation that could not
	// even start because one of the input collections failed to load.
	// Partial computation is never attempted: the totals would be
	// meaningless without all four collections.
	ErrReportDataUnavailable = errors.New("report data unavailable")
)

// ReportService defines the interface for the profit reporting logic.
type ReportService interface {
	// GetProfitReport computes (or serves from cache) the profit report
	// for the given date filter.
	GetProfitReport(filter models.ReportFilter) (*models.ProfitReport, error)

	// InvalidateReportCache drops every cached report. Called after any
	// write to sales, purchases, payments, or expenses.
	InvalidateReportCache()
}
