package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-eco-challenge/internal/logger"
	"github.com/sbilibin2017/gw-eco-challenge/internal/models"
	"github.com/sbilibin2017/gw-eco-challenge/internal/services"
)

// ChallengeCompleter records challenge completions.
type ChallengeCompleter interface {
	CompleteChallenge(ctx context.Context, userID uuid.UUID, challengeID int64, today time.Time) (*models.CompletionResult, error)
}

// Completion error messages
const (
	errAlreadyCompleted = "already completed today"
	errUnauthenticated  = "user not authenticated"
)

// CompleteRequest represents a completion
// swagger:model CompleteRequest
type CompleteRequest struct {
	// required: true
	// default: 1
	ChallengeID int64 `json:"challenge_id" validate:"required,gt=0"`
}

// CompleteResponse is the completion outcome. Error is set when Success is false.
// swagger:model CompleteResponse
type CompleteResponse struct {
	Success bool `json:"success"`
	// default: 50
	Points int64  `json:"points,omitempty"`
	Badge  string `json:"badge,omitempty"`
	Error  string `json:"error,omitempty"`
}

// NewCompleteChallengeHandler returns an HTTP handler that completes a challenge.
// now supplies the current time in the zone that defines a calendar day.
// @Summary Complete a challenge
// @Description Awards points once per challenge per calendar day and the badge at the threshold
// @Tags challenges
// @Accept json
// @Produce json
// @Param completeRequest body handlers.CompleteRequest true "Challenge to complete"
// @Success 200 {object} handlers.CompleteResponse "Completed, or already completed today"
// @Failure 400 {object} handlers.CompleteResponse "Invalid request"
// @Failure 401 {object} handlers.CompleteResponse "Unauthenticated"
// @Failure 404 {object} handlers.CompleteResponse "Challenge not found"
// @Failure 500 {object} handlers.CompleteResponse "Internal server error"
// @Router /challenges/complete [post]
// @Security BearerAuth
func NewCompleteChallengeHandler(svc ChallengeCompleter, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, CompleteResponse{Error: errUnauthenticated})
			return
		}

		var req CompleteRequest
		if err := decodeRequest(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, CompleteResponse{Error: "invalid request"})
			return
		}

		result, err := svc.CompleteChallenge(ctx, claims.UserID, req.ChallengeID, now())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrChallengeNotFound):
				writeJSON(w, http.StatusNotFound, CompleteResponse{Error: "challenge not found"})
			case errors.Is(err, services.ErrUserNotFound):
				writeJSON(w, http.StatusUnauthorized, CompleteResponse{Error: errUnauthenticated})
			default:
				logger.FromContext(ctx).Errorw("failed to complete challenge",
					"user_id", claims.UserID,
					"challenge_id", req.ChallengeID,
					"err", err,
				)
				writeJSON(w, http.StatusInternalServerError, CompleteResponse{Error: "internal server error"})
			}
			return
		}

		if result.AlreadyCompletedToday {
			writeJSON(w, http.StatusOK, CompleteResponse{Error: errAlreadyCompleted})
			return
		}

		writeJSON(w, http.StatusOK, CompleteResponse{
			Success: true,
			Points:  result.Points,
			Badge:   result.BadgeAwarded,
		})
	}
}
