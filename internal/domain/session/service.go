package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slog"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrRevoked      = errors.New("session revoked")
)

type Servicer interface {
	// Create выдаёт подписанный JWT для пользователя и регистрирует его хэш.
	Create(ctx context.Context, userID int) (string, error)
	// Validate проверяет подпись, срок действия и отсутствие отзыва.
	Validate(ctx context.Context, token string) (int, error)
	// Revoke отзывает конкретный токен (logout).
	Revoke(ctx context.Context, token string) error
	// RevokeAllForUser отзывает все токены пользователя.
	RevokeAllForUser(ctx context.Context, userID int) error
}

type Service struct {
	repo   Repository
	log    *slog.Logger
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(repo Repository, log *slog.Logger, secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		repo:   repo,
		log:    log.With(slog.String("component", "session_service")),
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Service) Create(ctx context.Context, userID int) (string, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	if err := s.repo.Create(ctx, userID, hashToken(token), expiresAt); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

func (s *Service) Validate(ctx context.Context, token string) (int, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, ErrInvalidToken
	}

	active, err := s.repo.IsActive(ctx, hashToken(token))
	if err != nil {
		return 0, fmt.Errorf("check session: %w", err)
	}
	if !active {
		return 0, ErrRevoked
	}

	return userID, nil
}

func (s *Service) Revoke(ctx context.Context, token string) error {
	if err := s.repo.Revoke(ctx, hashToken(token)); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *Service) RevokeAllForUser(ctx context.Context, userID int) error {
	if err := s.repo.RevokeAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	s.log.Info("all sessions revoked", slog.Int("user_id", userID))
	return nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
