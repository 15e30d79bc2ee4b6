package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-eco-challenge/internal/models"
)

// FootprintEstimator estimates an ecological footprint.
type FootprintEstimator interface {
	Estimate(km, energy, meat float64) (*models.Footprint, error)
}

// FootprintRequest holds weekly habits
// swagger:model FootprintRequest
type FootprintRequest struct {
	// Kilometres travelled by car
	// default: 100
	Km *float64 `json:"km" validate:"required,gte=0"`

	// Energy use in kWh
	// default: 50
	Energy *float64 `json:"energy" validate:"required,gte=0"`

	// Meat eaten in kg
	// default: 2
	Meat *float64 `json:"meat" validate:"required,gte=0"`
}

// NewEcoCalculatorHandler returns an HTTP handler for the footprint calculator.
// @Summary Eco calculator
// @Description Estimates a footprint score with a recommendation
// @Tags tools
// @Accept json
// @Produce json
// @Param footprintRequest body handlers.FootprintRequest true "Weekly habits"
// @Success 200 {object} models.Footprint "Estimate"
// @Failure 400 {object} handlers.ErrorResponse "Please enter valid non-negative numbers"
// @Router /eco-calculator [post]
func NewEcoCalculatorHandler(calc FootprintEstimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FootprintRequest
		if err := decodeRequest(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Please enter valid non-negative numbers"})
			return
		}

		footprint, err := calc.Estimate(*req.Km, *req.Energy, *req.Meat)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Please enter valid non-negative numbers"})
			return
		}

		writeJSON(w, http.StatusOK, footprint)
	}
}
