package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// userRepository is the in-memory implementation of UserRepository.
//
// The store is intentionally volatile: accounts live exactly as long as the
// process. All access goes through a single RWMutex so that concurrent
// registrations for the same username cannot both succeed.
type userRepository struct {
	logger *logger.Logger

	mu     sync.RWMutex
	users  map[string]models.User
	nextID int64
}

// NewUserRepository creates an empty in-memory credential store.
func NewUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		logger: logger,
		users:  make(map[string]models.User),
		nextID: 1,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		r.logger.Debug().Str("username", user.Username).Msg("registration rejected: username taken")
		return models.User{}, ErrUsernameAlreadyExists
	}

	user.UserID = r.nextID
	r.nextID++
	user.Password = ""
	user.CreatedAt = time.Now()

	r.users[user.Username] = user

	return user, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	foundUser, exists := r.users[username]
	if !exists {
		return models.User{}, ErrNoUserWasFound
	}

	return foundUser, nil
}
