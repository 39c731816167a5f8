package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"finbox/internal/domain/catalog"
	"finbox/internal/infrastructure/storage/postgres"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Заполнить каталог сервисов",
	Long:  "Идемпотентно создаёт или обновляет стандартный набор сервисов каталога.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		storage, err := postgres.New(cfg)
		if err != nil {
			return fmt.Errorf("подключение к базе: %w", err)
		}
		defer storage.Close()

		c := catalog.NewCatalog(postgres.NewCatalogRepository(storage, log), log)
		if err := c.Seed(cmd.Context()); err != nil {
			return fmt.Errorf("посев каталога: %w", err)
		}

		color.Green("✅ Каталог сервисов заполнен")
		return nil
	},
}
