package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SignupForm is the account registration form.
type SignupForm struct {
	Email           string `form:"email" json:"email"`
	FullName        string `form:"full_name" json:"full_name"`
	Password        string `form:"password" json:"password"`
	PasswordConfirm string `form:"password_confirm" json:"password_confirm"`
}

func (f SignupForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Email, validation.Required, is.EmailFormat, validation.RuneLength(1, 254)),
		validation.Field(&f.FullName, validation.RuneLength(0, 150)),
		validation.Field(&f.Password, validation.Required, validation.RuneLength(8, 128)),
		validation.Field(&f.PasswordConfirm, validation.Required,
			validation.In(f.Password).Error("the two password fields didn't match")),
	)
}

// Normalize lowercases the email and trims the name. Passwords are kept as typed.
func (f SignupForm) Normalize() SignupForm {
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.FullName = strings.TrimSpace(f.FullName)
	return f
}

// LoginForm is the sign-in form. Next is where to go after a successful login.
type LoginForm struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	Next     string `form:"next" json:"-"`
}

func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Email, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
}
