package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials covers both an unknown username and a wrong
	// password, so login responses cannot be used to probe which usernames
	// exist.
	ErrWrongCredentials = errors.New("wrong username or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
