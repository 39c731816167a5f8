package settings

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

var ErrInvalidValue = errors.New("invalid settings value")

// Допустимые значения перечислимых полей.
var (
	languages   = map[string]bool{"en": true, "sw": true, "fr": true, "ar": true}
	currencies  = map[string]bool{"USD": true, "TZS": true, "KES": true, "UGX": true, "EUR": true, "GBP": true}
	themes      = map[string]bool{"light": true, "dark": true, "system": true}
	dateFormats = map[string]bool{"DD/MM/YYYY": true, "MM/DD/YYYY": true, "YYYY-MM-DD": true}
	frequencies = map[string]bool{"daily": true, "weekly": true, "monthly": true}
)

// Servicer описывает операции над настройками пользователя.
type Servicer interface {
	Get(ctx context.Context, userID int) (*Settings, error)
	Update(ctx context.Context, userID int, req UpdateRequest) (*Settings, error)
	Reset(ctx context.Context, userID int) (*Settings, error)
}

// Service реализует Servicer поверх Repository.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "settings_service")),
	}
}

// Get возвращает настройки пользователя, создавая документ
// со значениями по умолчанию при первом обращении.
func (s *Service) Get(ctx context.Context, userID int) (*Settings, error) {
	current, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("settings: get: %w", err)
	}
	if current != nil {
		return current, nil
	}

	current = Defaults(userID)
	if err := s.repo.Save(ctx, current); err != nil {
		return nil, fmt.Errorf("settings: create defaults: %w", err)
	}
	s.log.Info("default settings created", slog.Int("user_id", userID))
	return current, nil
}

// Update частично обновляет настройки: nil-поля запроса не трогаются.
func (s *Service) Update(ctx context.Context, userID int, req UpdateRequest) (*Settings, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Language != nil {
		current.Language = *req.Language
	}
	if req.Currency != nil {
		current.Currency = *req.Currency
	}
	if req.Theme != nil {
		current.Theme = *req.Theme
	}
	if req.DateFormat != nil {
		current.DateFormat = *req.DateFormat
	}
	if req.Notifications != nil {
		current.Notifications = *req.Notifications
	}
	if req.Financial != nil {
		current.Financial = *req.Financial
	}
	if req.Backup != nil {
		current.Backup = *req.Backup
	}

	if err := s.repo.Save(ctx, current); err != nil {
		return nil, fmt.Errorf("settings: update: %w", err)
	}
	return current, nil
}

// Reset возвращает настройки к значениям по умолчанию.
func (s *Service) Reset(ctx context.Context, userID int) (*Settings, error) {
	fresh := Defaults(userID)
	if err := s.repo.Save(ctx, fresh); err != nil {
		return nil, fmt.Errorf("settings: reset: %w", err)
	}
	s.log.Info("settings reset", slog.Int("user_id", userID))
	return fresh, nil
}

func validate(req UpdateRequest) error {
	if req.Language != nil && !languages[*req.Language] {
		return fmt.Errorf("%w: language %q", ErrInvalidValue, *req.Language)
	}
	if req.Currency != nil && !currencies[*req.Currency] {
		return fmt.Errorf("%w: currency %q", ErrInvalidValue, *req.Currency)
	}
	if req.Theme != nil && !themes[*req.Theme] {
		return fmt.Errorf("%w: theme %q", ErrInvalidValue, *req.Theme)
	}
	if req.DateFormat != nil && !dateFormats[*req.DateFormat] {
		return fmt.Errorf("%w: date format %q", ErrInvalidValue, *req.DateFormat)
	}
	if req.Financial != nil {
		if t := req.Financial.BudgetWarningThreshold; t < 0 || t > 100 {
			return fmt.Errorf("%w: budget warning threshold %d", ErrInvalidValue, t)
		}
	}
	if req.Backup != nil && !frequencies[req.Backup.Frequency] {
		return fmt.Errorf("%w: backup frequency %q", ErrInvalidValue, req.Backup.Frequency)
	}
	return nil
}
