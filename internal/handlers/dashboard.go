package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-eco-challenge/internal/logger"
	"github.com/sbilibin2017/gw-eco-challenge/internal/models"
	"github.com/sbilibin2017/gw-eco-challenge/internal/services"
)

// DashboardGetter builds the caller's dashboard.
type DashboardGetter interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (*models.Dashboard, error)
}

// StatsGetter builds the caller's progress chart.
type StatsGetter interface {
	Stats(ctx context.Context, userID uuid.UUID) (*models.Stats, error)
}

// NewDashboardHandler returns an HTTP handler for the dashboard.
// @Summary Dashboard
// @Description Returns the caller's points and badges
// @Tags progress
// @Produce json
// @Success 200 {object} models.Dashboard "Dashboard"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc DashboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		dashboard, err := svc.Dashboard(r.Context(), claims.UserID)
		if errors.Is(err, services.ErrUserNotFound) {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}
		if err != nil {
			logger.FromContext(r.Context()).Errorw("failed to build dashboard", "user_id", claims.UserID, "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, dashboard)
	}
}

// NewStatsHandler returns an HTTP handler for the progress chart data.
// @Summary Progress stats
// @Description Points earned per day, oldest first
// @Tags progress
// @Produce json
// @Success 200 {object} models.Stats "Labels and values"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/stats [get]
// @Security BearerAuth
func NewStatsHandler(svc StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		stats, err := svc.Stats(r.Context(), claims.UserID)
		if err != nil {
			logger.FromContext(r.Context()).Errorw("failed to build stats", "user_id", claims.UserID, "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
