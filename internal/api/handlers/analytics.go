package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/stf-adrian/start-from-scratch/internal/api/middleware"
	"github.com/stf-adrian/start-from-scratch/internal/service"
)

const (
	analyticsWindowDays = 30
	historyLimit        = 10
)

type AnalyticsHandler struct {
	audit *service.AuditService
	log   *logrus.Logger
}

func NewAnalyticsHandler(audit *service.AuditService, log *logrus.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{audit: audit, log: log}
}

// LoginAnalytics returns one {date,count} entry per day for the trailing 30
// days, zero-filled, oldest first. The chart consumes the array directly.
func (h *AnalyticsHandler) LoginAnalytics(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	counts, err := h.audit.DailyCounts(r.Context(), userID, analyticsWindowDays)
	if err != nil {
		h.log.WithError(err).Error("login analytics query failed")
		respondError(w, http.StatusInternalServerError, "Failed to fetch login analytics")
		return
	}

	respondJSON(w, http.StatusOK, counts)
}

// LoginHistory returns the user's 10 most recent login attempts, newest
// first, including failures.
func (h *AnalyticsHandler) LoginHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	records, err := h.audit.Recent(r.Context(), userID, historyLimit)
	if err != nil {
		h.log.WithError(err).Error("login history query failed")
		respondError(w, http.StatusInternalServerError, "Failed to fetch login history")
		return
	}

	respondJSON(w, http.StatusOK, records)
}
