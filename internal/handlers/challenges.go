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

// ChallengeLister returns the catalog.
type ChallengeLister interface {
	ListChallenges(ctx context.Context) ([]models.ChallengeDB, error)
}

// PointsGetter returns the caller's point total.
type PointsGetter interface {
	Points(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ChallengeSubmitter adds challenges to the catalog.
type ChallengeSubmitter interface {
	SubmitChallenge(ctx context.Context, username, description string, difficulty models.Difficulty) (*models.ChallengeDB, error)
}

// ChallengesResponse lists the catalog with the caller's points
// swagger:model ChallengesResponse
type ChallengesResponse struct {
	Challenges []models.ChallengeDB `json:"challenges"`
	// default: 40
	Points int64 `json:"points"`
}

// SubmitChallengeRequest represents a new challenge
// swagger:model SubmitChallengeRequest
type SubmitChallengeRequest struct {
	// required: true
	// default: Take the stairs instead of the elevator.
	Description string `json:"description" validate:"required,max=500"`

	// Low, Medium or High. Medium when omitted.
	// default: Medium
	Difficulty models.Difficulty `json:"difficulty" validate:"omitempty,oneof=Low Medium High"`
}

// NewListChallengesHandler returns an HTTP handler for the challenge catalog.
// @Summary List challenges
// @Description Returns all challenges newest first and the caller's points
// @Tags challenges
// @Produce json
// @Success 200 {object} handlers.ChallengesResponse "Challenge catalog"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /challenges [get]
// @Security BearerAuth
func NewListChallengesHandler(catalog ChallengeLister, points PointsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		claims, ok := claimsFromRequest(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		challenges, err := catalog.ListChallenges(ctx)
		if err != nil {
			log.Errorw("failed to list challenges", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		total, err := points.Points(ctx, claims.UserID)
		if errors.Is(err, services.ErrUserNotFound) {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}
		if err != nil {
			log.Errorw("failed to get points", "user_id", claims.UserID, "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, ChallengesResponse{Challenges: challenges, Points: total})
	}
}

// NewSubmitChallengeHandler returns an HTTP handler for submitting challenges.
// @Summary Submit a challenge
// @Description Adds a challenge authored by the caller
// @Tags challenges
// @Accept json
// @Produce json
// @Param submitChallengeRequest body handlers.SubmitChallengeRequest true "New challenge"
// @Success 201 {object} models.ChallengeDB "Created challenge"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /challenges [post]
// @Security BearerAuth
func NewSubmitChallengeHandler(svc ChallengeSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req SubmitChallengeRequest
		if err := decodeRequest(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
			return
		}

		challenge, err := svc.SubmitChallenge(r.Context(), claims.Username, req.Description, req.Difficulty)
		if err != nil {
			if errors.Is(err, services.ErrInvalidChallenge) {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
				return
			}
			logger.FromContext(r.Context()).Errorw("failed to submit challenge", "username", claims.Username, "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusCreated, challenge)
	}
}
