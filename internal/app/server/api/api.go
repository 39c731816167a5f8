//регистрация и аутентификация пользователей;
//облачный бэкап и синхронизация офлайн-данных;
//каталог сервисов с лимитами тарифов;
//настройки пользователя.

//POST /api/user/register        # Регистрация (публичный)
//POST /api/user/login           # Логин (публичный)
//GET  /api/user/me              # Профиль (auth)
//PUT  /api/user/profile         # Обновить профиль (auth)
//PUT  /api/user/password        # Сменить пароль (auth)
//POST /api/user/logout          # Отозвать токен (auth)
//POST /api/user/upgrade         # Переход на premium (auth)
//DELETE /api/user/account       # Удалить аккаунт (auth)
//POST /api/sync/backup          # Полный бэкап (auth)
//GET  /api/sync/restore         # Восстановление (auth)
//POST /api/sync/smart-sync      # Умная синхронизация (auth)
//POST /api/sync/selective       # Выборочная синхронизация (auth)
//GET  /api/sync/status          # Статус копии (auth)
//DELETE /api/sync/backup        # Удалить копию (auth)
//GET  /api/services             # Каталог (auth)
//GET  /api/services/mine        # Сервисы пользователя (auth)
//PUT  /api/services/{slug}/toggle # Вкл/выкл сервис (auth)
//POST /api/services/{slug}/usage  # Учёт использования (auth)
//GET  /api/settings             # Настройки (auth)
//PUT  /api/settings             # Обновить настройки (auth)
//POST /api/settings/reset       # Сброс настроек (auth)

package api

import (
	"context"
	"time"

	healthAPI "finbox/internal/app/server/api/http/health"
	"finbox/internal/app/server/api/http/middleware"
	"finbox/internal/app/server/api/http/middleware/auth"
	"finbox/internal/app/server/api/http/middleware/logger"
	"finbox/internal/app/server/api/http/middleware/ratelimit"
	servicesAPI "finbox/internal/app/server/api/http/services"
	settingsAPI "finbox/internal/app/server/api/http/settings"
	syncAPI "finbox/internal/app/server/api/http/sync"
	userAPI "finbox/internal/app/server/api/http/user"
	"finbox/internal/config"
	"finbox/internal/domain/backup"
	"finbox/internal/domain/catalog"
	"finbox/internal/domain/session"
	"finbox/internal/domain/settings"
	"finbox/internal/domain/user"
	"finbox/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health   *healthAPI.Handler
	User     *userAPI.Handler
	Sync     *syncAPI.Handler
	Services *servicesAPI.Handler
	Settings *settingsAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("FinBox API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, cfg, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Sync.SetupRoutes(API)
	h.Services.SetupRoutes(API)
	h.Settings.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *Handlers {
	sessionRepo := postgres.NewSessionRepository(storage, log)
	ttl := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	sessionService := session.NewService(sessionRepo, log, cfg.Auth.Secret, ttl)

	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	limitMW := ratelimit.New(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst, log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	settingsRepo := postgres.NewSettingsRepository(storage, log)
	settingsService := settings.NewService(settingsRepo, log)

	catalogRepo := postgres.NewCatalogRepository(storage, log)
	catalogService := catalog.NewCatalog(catalogRepo, log)

	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	userService := user.NewService(userRepo, user.NewValidator(), log,
		func(ctx context.Context, u *user.User) error {
			_, err := settingsService.Get(ctx, u.ID)
			return err
		},
		func(ctx context.Context, u *user.User) error {
			return catalogService.EnableDefaults(ctx, u.ID, u.SubscriptionType)
		},
	)

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(limitMW.Middleware())
	publicMW := middlewares.GetAllAndClear()

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, publicMW, middlewares.GetAllAndClear())

	backupRepo := postgres.NewBackupRepository(storage, log)
	backupService := backup.NewService(backupRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(limitMW.Middleware())
	syncHandler := syncAPI.NewHandler(backupService, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	servicesHandler := servicesAPI.NewHandler(catalogService, userService, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(limitMW.Middleware())
	settingsHandler := settingsAPI.NewHandler(settingsService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		User:     userHandler,
		Sync:     syncHandler,
		Services: servicesHandler,
		Settings: settingsHandler,
	}
}
