package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle   = errors.New("title must be non-empty")
	ErrEmptyContent = errors.New("content must be non-empty")

	ErrUsernameTooShort = errors.New("username is too short")
	ErrUsernameTooLong  = errors.New("username is too long")
	ErrPasswordTooShort = errors.New("password is too short")
)
