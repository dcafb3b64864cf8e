package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pathfinder/backend/internal/auth"
)

func okHandler(t *testing.T, wantID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := GetAccountID(r.Context()); got != wantID {
			t.Errorf("account id = %q, want %q", got, wantID)
		}
		if c := GetClaims(r.Context()); c == nil || c.Kind != auth.KindMentor {
			t.Errorf("claims missing: %+v", c)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestMentorAuth(t *testing.T) {
	const secret = "test-secret"
	mentorTok, _ := auth.MakeToken("m-1", "alex@example.com", auth.KindMentor, secret, time.Hour)
	userTok, _ := auth.MakeToken("u-1", "jane@example.com", auth.KindUser, secret, time.Hour)

	h := MentorAuth(secret)(okHandler(t, "m-1"))

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"valid mentor token", "Bearer " + mentorTok, http.StatusNoContent},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + mentorTok, http.StatusUnauthorized},
		{"user token", "Bearer " + userTok, http.StatusUnauthorized},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/mentors/me/profile", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimiter(ctx, 0.001, 2)
	h := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := do("10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, code)
		}
	}
	if code := do("10.0.0.1:9999"); code != http.StatusTooManyRequests {
		t.Fatalf("third request from same IP: status %d", code)
	}
	if code := do("10.0.0.2:1234"); code != http.StatusOK {
		t.Fatalf("other IP should have its own budget, got %d", code)
	}

	rl.evict(0)
	if code := do("10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("evicted client should start fresh, got %d", code)
	}
}
