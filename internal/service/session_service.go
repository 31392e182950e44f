package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/6DaddyCoders9/Salon-App/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSessionNotFound is returned when a token has no live platform session behind it.
var ErrSessionNotFound = errors.New("session not found or revoked")

// SessionService maps issued tokens to the platform session secret they act for.
//
// Keys: access_token:<accountID>:<tokenID> and refresh_token:<accountID>:<tokenID>,
// each holding the session secret and expiring with its token.
type SessionService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewSessionService(redisClient *redis.Client, log *logrus.Logger) *SessionService {
	return &SessionService{
		redisClient: redisClient,
		log:         log,
	}
}

func tokenKey(tokenType jwt.TokenType, accountID, tokenID string) string {
	return fmt.Sprintf("%s_token:%s:%s", tokenType, accountID, tokenID)
}

func (s *SessionService) Store(ctx context.Context, tokenType jwt.TokenType, accountID, tokenID, secret string, ttl time.Duration) error {
	if err := s.redisClient.Set(ctx, tokenKey(tokenType, accountID, tokenID), secret, ttl).Err(); err != nil {
		s.log.Warnf("Failed to store %s token in Redis: %+v", tokenType, err)
		return err
	}
	return nil
}

func (s *SessionService) Lookup(ctx context.Context, tokenType jwt.TokenType, accountID, tokenID string) (string, error) {
	secret, err := s.redisClient.Get(ctx, tokenKey(tokenType, accountID, tokenID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSessionNotFound
		}
		return "", err
	}
	return secret, nil
}

func (s *SessionService) Revoke(ctx context.Context, tokenType jwt.TokenType, accountID, tokenID string) error {
	if err := s.redisClient.Del(ctx, tokenKey(tokenType, accountID, tokenID)).Err(); err != nil {
		s.log.Warnf("Failed to delete %s token: %+v", tokenType, err)
		return err
	}
	return nil
}

// RevokeAll removes every token issued to the account.
func (s *SessionService) RevokeAll(ctx context.Context, accountID string) error {
	for _, tokenType := range []jwt.TokenType{jwt.AccessToken, jwt.RefreshToken} {
		iter := s.redisClient.Scan(ctx, 0, tokenKey(tokenType, accountID, "*"), 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			s.log.Warnf("Failed to scan %s tokens: %+v", tokenType, err)
			return err
		}
		if len(keys) == 0 {
			continue
		}
		if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
			s.log.Warnf("Failed to delete %s tokens: %+v", tokenType, err)
			return err
		}
	}
	return nil
}
