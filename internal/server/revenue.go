package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	revenuedomain "github.com/subtally/subtally/internal/revenue/domain"
	"github.com/subtally/subtally/internal/revenue/format"
)

type revenueMetricsResponse struct {
	revenuedomain.MetricsResult

	// Locale-formatted display figures, layered on top of the numeric result.
	MRRFormatted string `json:"mrr_formatted"`
	ARRFormatted string `json:"arr_formatted"`
}

func (s *Server) GetRevenueMetrics(c *gin.Context) {
	filters, err := parseRevenueFilters(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	result, err := s.revenueSvc.Overview(c.Request.Context(), filters)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	settings, err := s.settingsRepo.Get(c.Request.Context(), s.db)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	symbol := ""
	if entry, ok := settings.Currencies[result.DisplayCurrency]; ok {
		symbol = entry.Symbol
	}

	c.JSON(http.StatusOK, revenueMetricsResponse{
		MetricsResult: result,
		MRRFormatted:  format.Money(result.MRRDisplay, result.DisplayCurrency, symbol, settings.Locale),
		ARRFormatted:  format.Money(result.ARRDisplay, result.DisplayCurrency, symbol, settings.Locale),
	})
}

func parseRevenueFilters(c *gin.Context) (revenuedomain.Filters, error) {
	filters := revenuedomain.Filters{
		Query:    strings.TrimSpace(c.Query("q")),
		Status:   revenuedomain.StatusFilterAll,
		Currency: revenuedomain.CurrencyFilterAll,
	}

	statusValue := strings.ToLower(strings.TrimSpace(c.Query("status")))
	switch statusValue {
	case "", string(revenuedomain.StatusFilterAll):
	case string(revenuedomain.StatusFilterActive):
		filters.Status = revenuedomain.StatusFilterActive
	case string(revenuedomain.StatusFilterPaused):
		filters.Status = revenuedomain.StatusFilterPaused
	case string(revenuedomain.StatusFilterCancelled):
		filters.Status = revenuedomain.StatusFilterCancelled
	default:
		return revenuedomain.Filters{}, newValidationError("status", "invalid_status", "invalid status filter")
	}

	if currencyValue := strings.TrimSpace(c.Query("currency")); currencyValue != "" {
		filters.Currency = currencyValue
	}

	if windowValue := strings.TrimSpace(c.Query("window_days")); windowValue != "" {
		window, err := strconv.Atoi(windowValue)
		if err != nil || window < 1 {
			return revenuedomain.Filters{}, newValidationError("window_days", "invalid_window", "window_days must be a positive integer")
		}
		filters.WindowDays = window
	}

	return filters, nil
}
