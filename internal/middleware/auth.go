package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pathfinder/backend/internal/auth"
	"github.com/pathfinder/backend/internal/models"
)

type contextKey string

const (
	AccountIDKey contextKey = "accountID"
	ClaimsKey    contextKey = "claims"
)

// BearerAuth validates the bearer token and requires it to be issued for kind
// (auth.KindMentor or auth.KindUser).
func BearerAuth(jwtSecret, kind string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Not authorized to access this route"))
				return
			}

			claims, err := auth.ParseToken(parts[1], jwtSecret)
			if err != nil || claims.Kind != kind {
				writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Not authorized to access this route"))
				return
			}

			ctx := context.WithValue(r.Context(), AccountIDKey, claims.AccountID)
			ctx = context.WithValue(ctx, ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MentorAuth is BearerAuth for mentor-issued tokens.
func MentorAuth(jwtSecret string) func(http.Handler) http.Handler {
	return BearerAuth(jwtSecret, auth.KindMentor)
}

// GetAccountID extracts the authenticated account ID from context
func GetAccountID(ctx context.Context) string {
	id, ok := ctx.Value(AccountIDKey).(string)
	if !ok {
		return ""
	}
	return id
}

func GetClaims(ctx context.Context) *auth.Claims {
	c, _ := ctx.Value(ClaimsKey).(*auth.Claims)
	return c
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
