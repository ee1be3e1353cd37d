package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
)

// RegistrationInput carries the raw sign-up form values. Name is trimmed
// before the length rule is applied.
type RegistrationInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Name     string `validate:"required,min=2"`
}

// LoginInput carries the raw sign-in form values. Only presence is
// checked here; credential correctness belongs to the session service.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// CredentialsValidator validates registration and login inputs using
// go-playground/validator struct tags, mapping tag failures to the
// package's sentinel errors.
type CredentialsValidator struct {
	validate *validator.Validate
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{validate: validator.New()}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case RegistrationInput:
		return v.validateRegistration(ctx, value, fields...)
	case *RegistrationInput:
		return v.validateRegistration(ctx, *value, fields...)

	case LoginInput:
		return v.validateLogin(ctx, value, fields...)
	case *LoginInput:
		return v.validateLogin(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateRegistration(_ context.Context, in RegistrationInput, fields ...string) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if len(fields) == 0 {
		return mapFieldErrors(v.validate.Struct(in))
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := v.validate.Var(in.Email, "required,email"); err != nil {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if err := v.validate.Var(in.Password, "required,min=6"); err != nil {
				return ErrPasswordTooShort
			}
		case FieldName:
			if err := v.validate.Var(in.Name, "required,min=2"); err != nil {
				return ErrNameTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateLogin(_ context.Context, in LoginInput, _ ...string) error {
	in.Email = strings.TrimSpace(in.Email)

	if err := v.validate.Var(in.Email, "required,email"); err != nil {
		return ErrInvalidEmail
	}
	if err := v.validate.Var(in.Password, "required"); err != nil {
		return ErrEmptyPassword
	}

	return nil
}

// mapFieldErrors converts validator.ValidationErrors into the package's
// sentinel errors, field by field, so callers can match with errors.Is.
func mapFieldErrors(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	for _, fe := range verrs {
		switch fe.Field() {
		case "Email":
			return ErrInvalidEmail
		case "Password":
			if fe.Tag() == "required" {
				return ErrEmptyPassword
			}
			return ErrPasswordTooShort
		case "Name":
			return ErrNameTooShort
		}
	}

	return err
}
