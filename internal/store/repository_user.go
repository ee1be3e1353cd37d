package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/notesapp/pocketnotes/internal/logger"
	"github.com/notesapp/pocketnotes/models"
)

// userRepository is the key-value-backed implementation of
// [UserRepository]. It owns the registered-account table (one JSON array
// under a single key) and the current-session slot.
//
// The current-session slot only ever receives a credential-free
// [models.User]; the credential records never leave the registered table.
type userRepository struct {
	kv     KeyValue
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// key-value store and logger.
func NewUserRepository(kv KeyValue, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		kv:     kv,
		logger: logger,
	}
}

func (r *userRepository) RegisteredUsers(ctx context.Context) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	raw, err := r.kv.Get(ctx, keyRegisteredUsers)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []models.Credential{}, nil
		}
		log.Err(err).Str("func", "userRepository.RegisteredUsers").Msg("failed to read registered users")
		return nil, fmt.Errorf("read registered users: %w", err)
	}

	var users []models.Credential
	if err = json.Unmarshal([]byte(raw), &users); err != nil {
		log.Err(err).Str("func", "userRepository.RegisteredUsers").Msg("failed to decode registered users")
		return nil, fmt.Errorf("%w: %v", ErrDecodingValue, err)
	}

	return users, nil
}

func (r *userRepository) SaveRegisteredUsers(ctx context.Context, users []models.Credential) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(users)
	if err != nil {
		log.Err(err).Str("func", "userRepository.SaveRegisteredUsers").Msg("failed to encode registered users")
		return fmt.Errorf("%w: %v", ErrEncodingValue, err)
	}

	if err = r.kv.Set(ctx, keyRegisteredUsers, string(payload)); err != nil {
		log.Err(err).Str("func", "userRepository.SaveRegisteredUsers").Msg("failed to write registered users")
		return fmt.Errorf("write registered users: %w", err)
	}

	return nil
}

func (r *userRepository) CurrentUser(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	raw, err := r.kv.Get(ctx, keyCurrentUser)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return models.User{}, ErrNoCurrentUser
		}
		log.Err(err).Str("func", "userRepository.CurrentUser").Msg("failed to read current user")
		return models.User{}, fmt.Errorf("read current user: %w", err)
	}

	var user models.User
	if err = json.Unmarshal([]byte(raw), &user); err != nil {
		log.Err(err).Str("func", "userRepository.CurrentUser").Msg("failed to decode current user")
		return models.User{}, fmt.Errorf("%w: %v", ErrDecodingValue, err)
	}

	return user, nil
}

func (r *userRepository) SetCurrentUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	// models.User carries no credential field, so nothing sensitive can
	// reach the current-session slot through this path.
	payload, err := json.Marshal(user)
	if err != nil {
		log.Err(err).Str("func", "userRepository.SetCurrentUser").Msg("failed to encode current user")
		return fmt.Errorf("%w: %v", ErrEncodingValue, err)
	}

	if err = r.kv.Set(ctx, keyCurrentUser, string(payload)); err != nil {
		log.Err(err).Str("func", "userRepository.SetCurrentUser").Str("user_id", user.ID).Msg("failed to write current user")
		return fmt.Errorf("write current user: %w", err)
	}

	return nil
}

func (r *userRepository) ClearCurrentUser(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := r.kv.Delete(ctx, keyCurrentUser); err != nil {
		log.Err(err).Str("func", "userRepository.ClearCurrentUser").Msg("failed to clear current user")
		return fmt.Errorf("clear current user: %w", err)
	}

	return nil
}
