package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"finbox/internal/domain/backup"
	"finbox/internal/infrastructure/storage/postgres"
)

var cleanupDays int

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Удалить старые бэкапы и протухшие сессии",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cleanupDays <= 0 {
			return fmt.Errorf("--days должен быть положительным")
		}

		storage, err := postgres.New(cfg)
		if err != nil {
			return fmt.Errorf("подключение к базе: %w", err)
		}
		defer storage.Close()

		backups := backup.NewService(postgres.NewBackupRepository(storage, log), log)
		removed, err := backups.Purge(cmd.Context(), cleanupDays)
		if err != nil {
			return fmt.Errorf("очистка бэкапов: %w", err)
		}

		sessions := postgres.NewSessionRepository(storage, log)
		expired, err := sessions.DeleteExpired(cmd.Context())
		if err != nil {
			return fmt.Errorf("очистка сессий: %w", err)
		}

		color.Green("✅ Удалено бэкапов: %d, сессий: %d", removed, expired)
		return nil
	},
}

func init() {
	cleanupCmd.Flags().IntVar(&cleanupDays, "days", 90, "удалять бэкапы старше указанного числа дней")
}
