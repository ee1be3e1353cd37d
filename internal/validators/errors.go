package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
	ErrNameTooShort     = errors.New("name must be at least 2 characters long")
	ErrEmptyPassword    = errors.New("password is required")
)
