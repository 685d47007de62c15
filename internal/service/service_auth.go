package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and Argon2id for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// credentialsValidator enforces the configured username and password
	// length boundaries on registration input.
	credentialsValidator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// decoyPasswordHash is verified against when a login names an unknown
	// username, so the lookup-miss path costs the same as a real password
	// check.
	decoyPasswordHash string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, limits config.Limits, logger *logger.Logger) AuthService {
	decoyPasswordHash, err := utils.HashPassword("decoy-password-never-matched")
	if err != nil {
		logger.Err(err).Msg("decoy password hash generation failed")
	}

	return &authService{
		userRepository:       userRepository,
		credentialsValidator: validators.NewCredentialsValidator(limits.UsernameMinLength, limits.UsernameMaxLength, limits.PasswordMinLength),
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		decoyPasswordHash:    decoyPasswordHash,
		logger:               logger,
	}
}

// RegisterUser creates a new user account.
//
// The username is normalized (trimmed and lowercased) before validation and
// storage, so accounts are unique case-insensitively. The password is hashed
// with Argon2id; the plain text never reaches the repository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided wrapping the validator error if the username or
//     password is outside the configured length boundaries.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Username = utils.NormalizeUsername(user.Username)
	if err := a.credentialsValidator.Validate(ctx, user); err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = passwordHash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// The username is normalized the same way as at registration before the
// lookup. An unknown username and a wrong password both come back as
// ErrWrongCredentials, and the unknown-username path still runs an Argon2id
// verification against a decoy hash so the two cases cost the same.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if the username or password is empty.
//   - ErrWrongCredentials if the account does not exist or the password does
//     not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Username = utils.NormalizeUsername(user.Username)
	if user.Username == "" || user.Password == "" {
		log.Error().Str("username", user.Username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, user.Username)
	if err != nil {
		utils.VerifyPassword(a.decoyPasswordHash, user.Password)
		log.Err(err).Str("username", user.Username).Msg("user search by username failed")
		return models.User{}, ErrWrongCredentials
	}

	matches, err := utils.VerifyPassword(foundUser.PasswordHash, user.Password)
	if err != nil || !matches {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the username as the "sub" claim, and
// expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate resolves a raw bearer token to a username. The token is parsed
// and verified, then the subject is checked against the user repository, so a
// token for a deleted account stops working. All failures are reported as
// ErrTokenIsExpiredOrInvalid.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (string, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return "", err
	}

	username, err := token.GetUsername()
	if err != nil || username == "" {
		return "", ErrTokenIsExpiredOrInvalid
	}

	if _, err = a.userRepository.FindUserByUsername(ctx, username); err != nil {
		return "", ErrTokenIsExpiredOrInvalid
	}

	return username, nil
}
