package user

import "finbox/internal/domain/user"

type registerInput struct {
	Body RegisterRequest
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterRequest struct {
	Email       string `json:"email,omitempty" format:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Name        string `json:"name" minLength:"2" maxLength:"50"`
	Password    string `json:"password" minLength:"8"`
}

type RegisterResponse struct {
	ID     int    `json:"user_id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type loginInput struct {
	Body LoginRequest
}

type loginOutput struct {
	Body LoginResponse
}

type LoginRequest struct {
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Password    string `json:"password"`
}

type LoginResponse struct {
	Token  string `json:"token,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type meInput struct{}

type meOutput struct {
	Body ProfileResponse
}

type ProfileResponse struct {
	Status  string        `json:"status"`
	Error   string        `json:"error,omitempty"`
	Profile *user.Profile `json:"profile,omitempty"`
}

type updateProfileInput struct {
	Body UpdateProfileRequest
}

type updateProfileOutput struct {
	Body ProfileResponse
}

type UpdateProfileRequest struct {
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

type changePasswordInput struct {
	Body ChangePasswordRequest
}

type changePasswordOutput struct {
	Body StatusResponse
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" minLength:"8"`
}

type logoutInput struct {
	Authorization string `header:"Authorization"`
}

type logoutOutput struct {
	Body StatusResponse
}

type upgradeInput struct {
	Body UpgradeRequest
}

type upgradeOutput struct {
	Body ProfileResponse
}

type UpgradeRequest struct {
	Months int `json:"months" minimum:"1" default:"1"`
}

type deleteAccountInput struct{}

type deleteAccountOutput struct {
	Body StatusResponse
}

type StatusResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
