package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/notesapp/pocketnotes/internal/logger"
	"github.com/notesapp/pocketnotes/internal/store"
	"github.com/notesapp/pocketnotes/internal/utils"
	"github.com/notesapp/pocketnotes/internal/validators"
	"github.com/notesapp/pocketnotes/models"
)

// sessionService is the concrete implementation of SessionService.
// It keeps the signed-in identity in memory for synchronous reads and
// mirrors every session change to the UserRepository so the session
// survives restarts. Passwords are stored as bcrypt hashes only.
type sessionService struct {
	users     store.UserRepository
	validator validators.Validator
	ids       *utils.UUIDGenerator
	logger    *logger.Logger

	// mu guards current. Writes to storage happen before the in-memory
	// state flips, so a failed write never leaves a phantom session.
	mu      sync.RWMutex
	current *models.User
}

// NewSessionService constructs a SessionService wired to the given
// UserRepository and restores any persisted session from the
// current-session slot. A corrupted or unreadable slot is treated as
// signed out rather than failing construction.
func NewSessionService(ctx context.Context, users store.UserRepository, validator validators.Validator, ids *utils.UUIDGenerator, logger *logger.Logger) SessionService {
	s := &sessionService{
		users:     users,
		validator: validator,
		ids:       ids,
		logger:    logger,
	}
	s.restoreSession(ctx)

	return s
}

// restoreSession loads the persisted identity, if any, into memory.
func (s *sessionService) restoreSession(ctx context.Context) {
	identity, err := s.users.CurrentUser(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoCurrentUser) {
			s.logger.Warn().Err(err).Str("func", "sessionService.restoreSession").Msg("could not restore persisted session, starting signed out")
		}
		return
	}

	s.mu.Lock()
	s.current = &identity
	s.mu.Unlock()
}

func (s *sessionService) Register(ctx context.Context, email, password, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	input := validators.RegistrationInput{Email: email, Password: password, Name: name}
	if err := s.validator.Validate(ctx, input); err != nil {
		log.Error().Err(err).Str("func", "sessionService.Register").Msg("registration input rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	email = normalizeEmail(email)
	name = strings.TrimSpace(name)

	registered, err := s.users.RegisteredUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "sessionService.Register").Msg("failed to load registered accounts")
		return models.User{}, fmt.Errorf("load registered accounts: %w", err)
	}

	for _, cred := range registered {
		if strings.EqualFold(cred.Email, email) {
			log.Error().Str("func", "sessionService.Register").Str("email", email).Msg("email already registered")
			return models.User{}, ErrDuplicateAccount
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("func", "sessionService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	cred := models.Credential{
		User: models.User{
			ID:        s.ids.Generate(),
			Email:     email,
			Name:      name,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		},
		PasswordHash: string(hash),
	}

	if err := s.users.SaveRegisteredUsers(ctx, append(registered, cred)); err != nil {
		log.Err(err).Str("func", "sessionService.Register").Msg("failed to persist registered accounts")
		return models.User{}, fmt.Errorf("persist registered accounts: %w", err)
	}

	identity := cred.Identity()
	if err := s.beginSession(ctx, identity); err != nil {
		return models.User{}, err
	}

	return identity, nil
}

func (s *sessionService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	input := validators.LoginInput{Email: email, Password: password}
	if err := s.validator.Validate(ctx, input); err != nil {
		log.Error().Err(err).Str("func", "sessionService.Authenticate").Msg("login input rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	email = normalizeEmail(email)

	registered, err := s.users.RegisteredUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "sessionService.Authenticate").Msg("failed to load registered accounts")
		return models.User{}, fmt.Errorf("load registered accounts: %w", err)
	}

	found, ok := findByEmail(registered, email)
	if !ok {
		log.Error().Str("func", "sessionService.Authenticate").Str("email", email).Msg("no account for email")
		return models.User{}, ErrAccountNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		log.Error().Str("func", "sessionService.Authenticate").Str("email", email).Msg("wrong password")
		return models.User{}, ErrInvalidCredential
	}

	identity := found.Identity()
	if err := s.beginSession(ctx, identity); err != nil {
		return models.User{}, err
	}

	return identity, nil
}

func (s *sessionService) CurrentIdentity() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}

	identity := *s.current
	return &identity
}

func (s *sessionService) EndSession(ctx context.Context) error {
	if err := s.users.ClearCurrentUser(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionService.EndSession").Msg("failed to clear persisted session")
		return fmt.Errorf("clear persisted session: %w", err)
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	return nil
}

// beginSession persists identity to the current-session slot, then flips
// the in-memory state.
func (s *sessionService) beginSession(ctx context.Context, identity models.User) error {
	if err := s.users.SetCurrentUser(ctx, identity); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionService.beginSession").Str("identity_id", identity.ID).Msg("failed to persist session")
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.current = &identity
	s.mu.Unlock()

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func findByEmail(registered []models.Credential, email string) (models.Credential, bool) {
	for _, cred := range registered {
		if strings.EqualFold(cred.Email, email) {
			return cred, true
		}
	}

	return models.Credential{}, false
}
