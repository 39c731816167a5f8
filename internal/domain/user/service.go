package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// RegistrationHook вызывается после успешной регистрации (создание настроек
// по умолчанию, подключение сервисов каталога). Ошибка хука логируется, но не
// отменяет регистрацию.
type RegistrationHook func(ctx context.Context, u *User) error

type Servicer interface {
	Register(ctx context.Context, req RegisterRequest) (int, error)
	Authenticate(ctx context.Context, email, phone, password string) (*User, error)
	Get(ctx context.Context, id int) (*Profile, error)
	UpdateProfile(ctx context.Context, id int, req UpdateProfileRequest) (*Profile, error)
	ChangePassword(ctx context.Context, id int, current, next string) error
	UpgradeToPremium(ctx context.Context, id int, months int) (*Profile, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
	hooks     []RegistrationHook
	now       func() time.Time
}

func NewService(repo Repository, validator Validator, log *slog.Logger, hooks ...RegistrationHook) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With(slog.String("component", "user_service")),
		hooks:     hooks,
		now:       time.Now,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (int, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	req.Name = strings.TrimSpace(req.Name)

	if err := s.validator.ValidateRegister(req.Email, req.PhoneNumber, req.Name, req.Password); err != nil {
		s.log.Debug("registration validation failed", "email", req.Email, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	u := &User{
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		Name:             req.Name,
		PasswordHash:     string(hash),
		AuthType:         AuthTypeLocal,
		Role:             RoleOwner,
		SubscriptionType: TierFree,
		TrialStartedAt:   now,
		TrialEndsAt:      now.AddDate(0, 0, TrialDays),
	}

	id, err := s.repo.Create(ctx, u)
	if err != nil {
		return 0, err
	}
	u.ID = id

	for _, hook := range s.hooks {
		if err := hook(ctx, u); err != nil {
			s.log.Warn("registration hook failed", "user_id", id, "error", err)
		}
	}

	s.log.Info("user registered", slog.Int("user_id", id))
	return id, nil
}

func (s *Service) Authenticate(ctx context.Context, email, phone, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.validator.ValidateLogin(email, phone); err != nil {
		return nil, ErrInvalidAuth
	}

	u, err := s.repo.FindByContact(ctx, email, phone)
	if err != nil {
		return nil, ErrInvalidAuth
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidAuth
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id int) (*Profile, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.profile(u), nil
}

func (s *Service) UpdateProfile(ctx context.Context, id int, req UpdateProfileRequest) (*Profile, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	name := u.Name
	if strings.TrimSpace(req.Name) != "" {
		name = strings.TrimSpace(req.Name)
		if err := validateName(name); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	email := u.Email
	if strings.TrimSpace(req.Email) != "" {
		email = strings.ToLower(strings.TrimSpace(req.Email))
		if err := validateContact(email, ""); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	picture := u.ProfilePicture
	if req.ProfilePicture != "" {
		picture = req.ProfilePicture
	}

	if err := s.repo.UpdateProfile(ctx, id, name, email, picture); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	u.Name = name
	u.Email = email
	u.ProfilePicture = picture
	return s.profile(u), nil
}

func (s *Service) ChangePassword(ctx context.Context, id int, current, next string) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)); err != nil {
		return ErrInvalidAuth
	}

	if err := validatePassword(next); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, id, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info("password changed", slog.Int("user_id", id))
	return nil
}

// UpgradeToPremium переводит пользователя на premium на months месяцев вперёд
// от текущего момента.
func (s *Service) UpgradeToPremium(ctx context.Context, id int, months int) (*Profile, error) {
	if months <= 0 {
		months = 1
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	expiresAt := s.now().AddDate(0, months, 0)
	if err := s.repo.UpdateSubscription(ctx, id, TierPremium, true, &expiresAt); err != nil {
		return nil, fmt.Errorf("update subscription: %w", err)
	}

	u.SubscriptionType = TierPremium
	u.HasActivePremium = true
	u.PremiumExpiresAt = &expiresAt

	s.log.Info("user upgraded to premium",
		slog.Int("user_id", id),
		slog.Int("months", months),
	)
	return s.profile(u), nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.log.Info("account deleted", slog.Int("user_id", id))
	return nil
}

func (s *Service) profile(u *User) *Profile {
	now := s.now()
	return &Profile{
		User:               *u,
		HasActiveAccess:    u.HasActiveAccess(now),
		IsTrialExpired:     u.IsTrialExpired(now),
		RemainingTrialDays: u.RemainingTrialDays(now),
	}
}
