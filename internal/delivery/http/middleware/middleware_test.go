package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/6DaddyCoders9/Salon-App/config"
	"github.com/6DaddyCoders9/Salon-App/internal/service"
	"github.com/6DaddyCoders9/Salon-App/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *jwt.JWTService, *service.SessionService) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})

	log := logrus.New()
	log.SetOutput(io.Discard)

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "middleware-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
	sessionService := service.NewSessionService(rdb, log)
	return NewAuthMiddleware(jwtService, sessionService), jwtService, sessionService
}

func TestAuthenticate(t *testing.T) {
	m, jwtService, sessions := newTestAuthMiddleware(t)

	access, accessID, err := jwtService.GenerateAccessToken("acc-1", "jane@example.com", "sess-1")
	if err != nil {
		t.Fatalf("generate access: %v", err)
	}
	if err := sessions.Store(context.Background(), jwt.AccessToken, "acc-1", accessID, "platform-secret", time.Minute); err != nil {
		t.Fatalf("store: %v", err)
	}
	refresh, _, err := jwtService.GenerateRefreshToken("acc-1", "jane@example.com", "sess-1")
	if err != nil {
		t.Fatalf("generate refresh: %v", err)
	}
	revoked, _, err := jwtService.GenerateAccessToken("acc-1", "jane@example.com", "sess-1")
	if err != nil {
		t.Fatalf("generate access: %v", err)
	}

	var gotSecret, gotAccount, gotTokenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSecret, _ = GetSessionSecretFromContext(r.Context())
		gotAccount, _ = GetAccountIDFromContext(r.Context())
		gotTokenID, _ = GetTokenIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := m.Authenticate(next)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + access, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"refresh token", "Bearer " + refresh, http.StatusUnauthorized},
		{"revoked token", "Bearer " + revoked, http.StatusUnauthorized},
		{"valid", "Bearer " + access, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}

	if gotSecret != "platform-secret" || gotAccount != "acc-1" || gotTokenID != accessID {
		t.Fatalf("context = %q %q %q", gotSecret, gotAccount, gotTokenID)
	}
}

func TestSessionSecretFromContext(t *testing.T) {
	if _, ok := GetSessionSecretFromContext(context.Background()); ok {
		t.Fatal("empty context must not carry a secret")
	}
	if _, ok := GetSessionSecretFromContext(WithSession(context.Background(), "acc", "sess", "")); ok {
		t.Fatal("blank secret must be reported as missing")
	}
	secret, ok := GetSessionSecretFromContext(WithSession(context.Background(), "acc", "sess", "s3"))
	if !ok || secret != "s3" {
		t.Fatalf("secret = %q, %v", secret, ok)
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Unix(1700000000, 0)
	rl.now = func() time.Time { return now }

	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	hit := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 2; i++ {
		if rec := hit("10.0.0.1:5000"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}
	rec := hit("10.0.0.1:5001")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("burst exhausted: status = %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "1" {
		t.Fatalf("Retry-After = %q", rec.Header().Get("Retry-After"))
	}
	if rec := hit("10.0.0.2:5000"); rec.Code != http.StatusOK {
		t.Fatalf("other client: status = %d", rec.Code)
	}

	now = now.Add(time.Hour)
	rl.Cleanup(time.Minute)
	if len(rl.clients) != 0 {
		t.Fatalf("idle clients kept: %d", len(rl.clients))
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("listed origin", func(t *testing.T) {
		h := NewCORSMiddleware([]string{"https://salon.example/"}).Handle(next)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		req.Header.Set("Origin", "https://salon.example")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://salon.example" {
			t.Fatalf("allow origin = %q", got)
		}
	})

	t.Run("unlisted origin", func(t *testing.T) {
		h := NewCORSMiddleware([]string{"https://salon.example"}).Handle(next)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Fatalf("allow origin = %q", got)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		h := NewCORSMiddleware([]string{"*"}).Handle(next)
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/appointments/abc", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent || rec.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Fatalf("preflight = %d %q", rec.Code, rec.Header().Get("Access-Control-Allow-Origin"))
		}
	})
}
