package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// LoginRequest is the sign-in form. Credentials are accepted as-is; the
// role is checked by the session login so a tampered value takes the
// "Login failed" path.
type LoginRequest struct {
	Role     string `form:"role" validate:"required,max=32"`
	Email    string `form:"email" validate:"max=254"`
	Password string `form:"password" validate:"max=128"`
}

// RegisterRequest is the register form.
type RegisterRequest struct {
	Role     string `form:"role" validate:"required,max=32"`
	OrgName  string `form:"org_name" validate:"max=120"`
	Email    string `form:"email" validate:"max=254"`
	Password string `form:"password" validate:"max=128"`
}

// ThemeToggleRequest carries the page to return to.
type ThemeToggleRequest struct {
	Return string `form:"return" validate:"max=2048"`
}
