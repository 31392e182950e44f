package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/6DaddyCoders9/Salon-App/internal/service"
	"github.com/6DaddyCoders9/Salon-App/pkg/jwt"
	"github.com/6DaddyCoders9/Salon-App/pkg/response"
)

type contextKey string

const (
	AccountIDKey     contextKey = "account_id"
	SessionIDKey     contextKey = "session_id"
	SessionSecretKey contextKey = "session_secret"
	TokenIDKey       contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService     *jwt.JWTService
	sessionService *service.SessionService
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessionService *service.SessionService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:     jwtService,
		sessionService: sessionService,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		// The platform session secret lives in Redis until logout or expiry
		secret, err := m.sessionService.Lookup(r.Context(), jwt.AccessToken, claims.AccountID, claims.TokenID)
		if err != nil {
			if errors.Is(err, service.ErrSessionNotFound) {
				response.Unauthorized(w, "Token has been revoked")
				return
			}
			response.InternalServerError(w, "Failed to validate token")
			return
		}

		ctx := WithSession(r.Context(), claims.AccountID, claims.SessionID, secret)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithSession stores the platform session the request acts for.
func WithSession(ctx context.Context, accountID, sessionID, secret string) context.Context {
	ctx = context.WithValue(ctx, AccountIDKey, accountID)
	ctx = context.WithValue(ctx, SessionIDKey, sessionID)
	return context.WithValue(ctx, SessionSecretKey, secret)
}

// GetAccountIDFromContext extracts account ID from context
func GetAccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(AccountIDKey).(string)
	return accountID, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(string)
	return sessionID, ok
}

func GetSessionSecretFromContext(ctx context.Context) (string, bool) {
	secret, ok := ctx.Value(SessionSecretKey).(string)
	return secret, ok && secret != ""
}
