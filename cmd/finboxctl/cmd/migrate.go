package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"finbox/internal/infrastructure/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применить миграции схемы базы данных",
	RunE: func(_ *cobra.Command, _ []string) error {
		m := migration.NewMigration(cfg, migration.DefaultEngine)
		if err := m.Up(); err != nil {
			return fmt.Errorf("миграция не применена: %w", err)
		}

		color.Green("✅ Схема базы данных актуальна")
		return nil
	},
}
