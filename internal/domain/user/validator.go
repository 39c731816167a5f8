package user

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

const (
	minNameLen     = 2
	maxNameLen     = 50
	minPasswordLen = 8
)

type Validator interface {
	ValidateRegister(email, phone, name, password string) error
	ValidateLogin(email, phone string) error
}

type validator struct{}

func NewValidator() Validator {
	return &validator{}
}

func (v *validator) ValidateRegister(email, phone, name, password string) error {
	if err := validateContact(email, phone); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}
	return validatePassword(password)
}

func (v *validator) ValidateLogin(email, phone string) error {
	return validateContact(email, phone)
}

func validateContact(email, phone string) error {
	if email == "" && phone == "" {
		return fmt.Errorf("either email or phone number must be provided")
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return fmt.Errorf("invalid email address")
		}
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	return nil
}

func validatePhone(phone string) error {
	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		default:
			return fmt.Errorf("invalid phone number")
		}
	}
	if digits < 7 || digits > 15 {
		return fmt.Errorf("invalid phone number")
	}
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < minNameLen || len(name) > maxNameLen {
		return fmt.Errorf("name must be between %d and %d characters", minNameLen, maxNameLen)
	}
	return nil
}

// validatePassword: минимум 8 символов, хотя бы одна строчная, одна заглавная
// буква и одна цифра.
func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}

	hasLower := false
	hasUpper := false
	hasDigit := false

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	return nil
}
