package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"finbox/internal/config"
	"finbox/internal/utils/logger"
)

var (
	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "finboxctl",
	Short: "FinBox — администрирование сервера",
	Long: `finboxctl — служебная утилита сервера FinBox.

Миграции схемы, посев каталога сервисов, очистка устаревших данных
и создание пользователей без участия HTTP API.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		cfg = config.MustLoad()
		log = logger.New(cfg.Env)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(userCmd)
}
