package server

import (
	"net/http"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListSubscriptions(c *gin.Context) {
	rows, err := s.subscriptionRepo.List(c.Request.Context(), s.db)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscriptions": rows, "count": len(rows)})
}

func (s *Server) GetSubscription(c *gin.Context) {
	raw, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid subscription id"))
		return
	}

	row, err := s.subscriptionRepo.FindByID(c.Request.Context(), s.db, snowflake.ID(raw))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if row == nil {
		AbortWithError(c, ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, row)
}

func (s *Server) GetSettings(c *gin.Context) {
	settings, err := s.settingsRepo.Get(c.Request.Context(), s.db)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"base_currency":    settings.BaseCurrency,
		"display_currency": settings.DisplayOrBase(),
		"locale":           settings.Locale,
		"window_days":      settings.WindowDays,
		"currencies":       settings.Currencies,
	})
}
