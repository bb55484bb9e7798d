// backend/src/handlers/stats_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/username/celuventas/backend/src/database"
	"github.com/username/celuventas/backend/src/logger"
	"github.com/username/celuventas/backend/src/model"
	"github.com/username/celuventas/backend/src/models"
	"github.com/username/celuventas/backend/src/utils"
)

const defaultTopProductsLimit = 5

type StatsHandler struct{}

func NewStatsHandler() *StatsHandler {
	return &StatsHandler{}
}

// HandleGetTopProducts serves GET /api/stats/top-products. Returns the
// best-selling active products ordered by sale count, with ties broken
// by most recent sale.
func (h *StatsHandler) HandleGetTopProducts(w http.ResponseWriter, r *http.Request) {
	limit := defaultTopProductsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 50 {
			utils.SendJSONError(w, "limit must be an integer between 1 and 50", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	topProducts, err := model.TopSellingProducts(database.DB, limit)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to compute top products", "error", err)
		utils.SendJSONError(w, "Failed to compute top products", http.StatusInternalServerError)
		return
	}
	if topProducts == nil {
		topProducts = []models.TopProduct{}
	}
	utils.SendJSON(w, topProducts, http.StatusOK)
}
