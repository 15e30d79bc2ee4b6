package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/sbilibin2017/gw-eco-challenge/internal/jwt"
)

func testClaims() *jwt.Claims {
	return &jwt.Claims{
		UserID:   uuid.MustParse("7b4f7c8e-2f3a-4a1e-9d55-0c3b7a2e1f10"),
		Username: "ana",
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        "token-id",
			ExpiresAt: gojwt.NewNumericDate(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
		},
	}
}

func withClaims(r *http.Request, claims *jwt.Claims) *http.Request {
	return r.WithContext(jwt.ContextWithClaims(r.Context(), claims))
}
