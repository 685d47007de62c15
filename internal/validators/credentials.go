package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Field name constants for credential validation scoping.
const (
	// FieldUsername targets the account username.
	FieldUsername = "username"

	// FieldPassword targets the plain-text password supplied at signup.
	FieldPassword = "password"
)

// credentialsValidator enforces the configured length boundaries on signup
// input. The username is expected to be normalized before validation so the
// length check applies to the stored form.
type credentialsValidator struct {
	usernameMinLength int
	usernameMaxLength int
	passwordMinLength int
}

// NewCredentialsValidator returns a Validator for [models.User] signup input
// with the given length boundaries.
func NewCredentialsValidator(usernameMinLength, usernameMaxLength, passwordMinLength int) Validator {
	return &credentialsValidator{
		usernameMinLength: usernameMinLength,
		usernameMaxLength: usernameMaxLength,
		passwordMinLength: passwordMinLength,
	}
}

// Validate checks the given value, which must be a models.User or
// *models.User. Without field names both username and password are
// validated; with field names only the listed fields are checked.
func (v *credentialsValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var user models.User

	switch typed := value.(type) {
	case models.User:
		user = typed
	case *models.User:
		user = *typed
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			// Length limits are in characters, not bytes, so a multibyte
			// username is measured the same as an ASCII one.
			usernameLength := utf8.RuneCountInString(user.Username)
			if usernameLength < v.usernameMinLength {
				return ErrUsernameTooShort
			}
			if usernameLength > v.usernameMaxLength {
				return ErrUsernameTooLong
			}
		case FieldPassword:
			if len(user.Password) < v.passwordMinLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
