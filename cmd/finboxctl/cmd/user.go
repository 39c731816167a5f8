package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"finbox/internal/domain/user"
	"finbox/internal/infrastructure/storage/postgres"
)

var (
	userEmail string
	userPhone string
	userName  string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Управление пользователями",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать пользователя",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if userEmail == "" && userPhone == "" {
			return fmt.Errorf("нужен --email или --phone")
		}

		fmt.Print("Пароль: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		fmt.Print("Повторите пароль: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("пароли не совпадают")
		}

		storage, err := postgres.New(cfg)
		if err != nil {
			return fmt.Errorf("подключение к базе: %w", err)
		}
		defer storage.Close()

		service := user.NewService(postgres.NewUserRepository(storage.Pool(), log), user.NewValidator(), log)
		userID, err := service.Register(cmd.Context(), user.RegisterRequest{
			Email:       userEmail,
			PhoneNumber: userPhone,
			Name:        userName,
			Password:    string(password),
		})
		if err != nil {
			return fmt.Errorf("регистрация: %w", err)
		}

		color.Green("✅ Пользователь создан, ID: %d", userID)
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "email пользователя")
	userCreateCmd.Flags().StringVar(&userPhone, "phone", "", "номер телефона")
	userCreateCmd.Flags().StringVar(&userName, "name", "", "отображаемое имя")

	userCmd.AddCommand(userCreateCmd)
}
