package logger

import (
	"os"

	"golang.org/x/exp/slog"

	"finbox/internal/config"
)

// New возвращает логгер, настроенный под окружение:
// local — цветной текстовый вывод с уровнем DEBUG,
// dev — JSON с уровнем DEBUG, prod — JSON с уровнем INFO.
func New(env string) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return setupPrettySlog()
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
}

func setupPrettySlog() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
