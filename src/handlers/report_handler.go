// backend/src/handlers/report_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/username/celuventas/backend/src/logger"
	"github.com/username/celuventas/backend/src/models"
	"github.com/username/celuventas/backend/src/reports"
	"github.com/username/celuventas/backend/src/services"
	"github.com/username/celuventas/backend/src/utils"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// profitReportResponse wraps the report with display-formatted totals so
// the frontend never re-implements the currency formatting rules.
type profitReportResponse struct {
	Rows            []models.ReportRow  `json:"rows"`
	Totals          models.ReportTotals `json:"totals"`
	FormattedTotals map[string]string   `json:"formattedTotals"`
}

// HandleGetProfitReport serves GET /api/reports/profit.
// Query parameters: mode (all|range), start_date, end_date (YYYY-MM-DD).
func (h *ReportHandler) HandleGetProfitReport(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())

	filter := models.ReportFilter{
		Mode:      r.URL.Query().Get("mode"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if filter.Mode == "" {
		filter.Mode = models.FilterModeAll
	}
	if filter.Mode != models.FilterModeAll && filter.Mode != models.FilterModeRange {
		utils.SendJSONError(w, "mode must be 'all' or 'range'", http.StatusBadRequest)
		return
	}
	if filter.Mode == models.FilterModeAll {
		// An open window ignores any bounds the client sent along.
		filter.StartDate = ""
		filter.EndDate = ""
	}

	report, err := h.reportService.GetProfitReport(filter)
	if err != nil {
		if errors.Is(err, services.ErrReportDataUnavailable) {
			ctxLogger.Error("Profit report data unavailable", "error", err)
			utils.SendJSONError(w, "Report data unavailable", http.StatusServiceUnavailable)
			return
		}
		ctxLogger.Error("Failed to compute profit report", "error", err)
		utils.SendJSONError(w, "Failed to compute report", http.StatusInternalServerError)
		return
	}

	utils.SendJSON(w, profitReportResponse{
		Rows:            report.Rows,
		Totals:          report.Totals,
		FormattedTotals: reports.FormatTotals(report.Totals),
	}, http.StatusOK)
}
