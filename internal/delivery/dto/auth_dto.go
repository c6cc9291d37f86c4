package dto

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

// AuthUserResponse is the compact principal summary returned on login.
type AuthUserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// LoginResponse carries the session token plus the principal. Doctor logins
// populate User, patient logins populate Patient.
type LoginResponse struct {
	Token   string            `json:"token"`
	User    *AuthUserResponse `json:"user,omitempty"`
	Patient *AuthUserResponse `json:"patient,omitempty"`
}
