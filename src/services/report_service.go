// backend/src/services/report_service.go
package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/celuventas/backend/src/logger"
	"github.com/username/celuventas/backend/src/model"
	"github.com/username/celuventas/backend/src/models"
	"github.com/username/celuventas/backend/src/reports"
)

const ckProfitReport = "report_profit_%s_%s_%s"

type reportServiceImpl struct {
	db          *sql.DB
	reportCache *cache.Cache
}

func NewReportService(db *sql.DB, reportCache *cache.Cache) ReportService {
	return &reportServiceImpl{
		db:          db,
		reportCache: reportCache,
	}
}

func (s *reportServiceImpl) GetProfitReport(filter models.ReportFilter) (*models.ProfitReport, error) {
	cacheKey := fmt.Sprintf(ckProfitReport, filter.Mode, filter.StartDate, filter.EndDate)
	if cached, found := s.reportCache.Get(cacheKey); found {
		return cached.(*models.ProfitReport), nil
	}

	startTime := time.Now()

	// All four collections or nothing: a report over a partial snapshot
	// would silently misstate every total.
	sales, err := model.ListSales(s.db)
	if err != nil {
		return nil, fmt.Errorf("%w: loading sales: %v", ErrReportDataUnavailable, err)
	}
	payments, err := model.ListPayments(s.db)
	if err != nil {
		return nil, fmt.Errorf("%w: loading payments: %v", ErrReportDataUnavailable, err)
	}
	purchases, err := model.ListPurchases(s.db)
	if err != nil {
		return nil, fmt.Errorf("%w: loading purchases: %v", ErrReportDataUnavailable, err)
	}
	expenses, err := model.ListExpenses(s.db)
	if err != nil {
		return nil, fmt.Errorf("%w: loading expenses: %v", ErrReportDataUnavailable, err)
	}

	report := reports.ComputeReport(purchases, sales, payments, expenses, filter)

	logger.L.Debug("Profit report computed",
		"purchases", len(purchases), "sales", len(sales),
		"rows", len(report.Rows), "duration", time.Since(startTime))

	s.reportCache.Set(cacheKey, &report, cache.DefaultExpiration)
	return &report, nil
}

func (s *reportServiceImpl) InvalidateReportCache() {
	s.reportCache.Flush()
}
