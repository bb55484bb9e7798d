// backend/src/handlers/report_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/celuventas/backend/src/logger"
	"github.com/username/celuventas/backend/src/models"
	"github.com/username/celuventas/backend/src/services"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

type stubReportService struct {
	lastFilter  models.ReportFilter
	report      *models.ProfitReport
	err         error
	invalidated bool
}

func (s *stubReportService) GetProfitReport(filter models.ReportFilter) (*models.ProfitReport, error) {
	s.lastFilter = filter
	return s.report, s.err
}

func (s *stubReportService) InvalidateReportCache() {
	s.invalidated = true
}

func TestHandleGetProfitReportDefaultsToAllMode(t *testing.T) {
	stub := &stubReportService{report: &models.ProfitReport{
		Rows:   []models.ReportRow{},
		Totals: models.ReportTotals{Ventas: 1500},
	}}
	handler := NewReportHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/profit", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetProfitReport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.FilterModeAll, stub.lastFilter.Mode)

	var body struct {
		Rows            []models.ReportRow  `json:"rows"`
		Totals          models.ReportTotals `json:"totals"`
		FormattedTotals map[string]string   `json:"formattedTotals"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.Money(1500), body.Totals.Ventas)
	assert.Equal(t, "₡1.5 mil", body.FormattedTotals["ventas"])
}

func TestHandleGetProfitReportPassesRangeBounds(t *testing.T) {
	stub := &stubReportService{report: &models.ProfitReport{}}
	handler := NewReportHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/profit?mode=range&start_date=2024-01-01&end_date=2024-06-30", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetProfitReport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.FilterModeRange, stub.lastFilter.Mode)
	assert.Equal(t, "2024-01-01", stub.lastFilter.StartDate)
	assert.Equal(t, "2024-06-30", stub.lastFilter.EndDate)
}

func TestHandleGetProfitReportIgnoresBoundsInAllMode(t *testing.T) {
	stub := &stubReportService{report: &models.ProfitReport{}}
	handler := NewReportHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/profit?mode=all&start_date=2024-01-01", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetProfitReport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, stub.lastFilter.StartDate)
	assert.Empty(t, stub.lastFilter.EndDate)
}

func TestHandleGetProfitReportRejectsUnknownMode(t *testing.T) {
	stub := &stubReportService{report: &models.ProfitReport{}}
	handler := NewReportHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/profit?mode=weekly", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetProfitReport(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetProfitReportDataUnavailable(t *testing.T) {
	stub := &stubReportService{err: services.ErrReportDataUnavailable}
	handler := NewReportHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/profit", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetProfitReport(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
