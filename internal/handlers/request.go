package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-eco-challenge/internal/jwt"
)

var validate = validator.New()

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// decodeRequest reads a JSON body into dst and validates its tags.
func decodeRequest(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// claimsFromRequest returns the claims stored by the auth middleware.
func claimsFromRequest(r *http.Request) (*jwt.Claims, bool) {
	return jwt.ClaimsFromContext(r.Context())
}
