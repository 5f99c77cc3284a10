package dto

import "github.com/hugh/gatekeeper/internal/database/models"

type RegisterRequest struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Role                 string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	}
	if r.Password == "" {
		errors["password"] = "Password is required"
	}

	return errors
}

// UserDTO is the public projection of a user record. The password hash
// and the active/staff flags never leave the service.
type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  string(user.Role),
	}
}
