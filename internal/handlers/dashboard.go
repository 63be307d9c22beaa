package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"aidat_app/internal/models"
	"aidat_app/internal/services"
)

type DashboardHandler struct {
	db    *gorm.DB
	cache *services.RedisCache
}

func NewDashboardHandler(db *gorm.DB, cache *services.RedisCache) *DashboardHandler {
	return &DashboardHandler{db: db, cache: cache}
}

// DashboardSummary aggregates the office-wide numbers for the landing screen.
type DashboardSummary struct {
	MemberCount      int64   `json:"member_count"`
	CoopCount        int64   `json:"coop_count"`
	MembershipCount  int64   `json:"membership_count"`
	OpenDueCount     int64   `json:"open_due_count"`
	TotalBilled      float64 `json:"total_billed"`
	TotalCollected   float64 `json:"total_collected"`
	TotalOutstanding float64 `json:"total_outstanding"`
}

// Summary serves the dashboard aggregates, cached for a minute when Redis
// is configured.
func (h *DashboardHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()
	summary, err := services.GetOrSet(h.cache, ctx, "dashboard:summary", time.Minute, h.computeSummary)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *DashboardHandler) computeSummary() (DashboardSummary, error) {
	var s DashboardSummary

	if err := h.db.Model(&models.Member{}).Count(&s.MemberCount).Error; err != nil {
		return s, err
	}
	if err := h.db.Model(&models.Cooperative{}).Count(&s.CoopCount).Error; err != nil {
		return s, err
	}
	if err := h.db.Model(&models.CoopMember{}).Count(&s.MembershipCount).Error; err != nil {
		return s, err
	}
	if err := h.db.Model(&models.Due{}).
		Where("status <> ?", models.DuePaid).
		Count(&s.OpenDueCount).Error; err != nil {
		return s, err
	}

	var totals struct {
		Billed    float64
		Collected float64
	}
	if err := h.db.Model(&models.Due{}).
		Select("COALESCE(SUM(amount), 0) AS billed, COALESCE(SUM(paid_amount), 0) AS collected").
		Scan(&totals).Error; err != nil {
		return s, err
	}
	s.TotalBilled = totals.Billed
	s.TotalCollected = totals.Collected
	s.TotalOutstanding = totals.Billed - totals.Collected
	return s, nil
}
