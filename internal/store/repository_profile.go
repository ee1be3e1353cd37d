package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/notesapp/pocketnotes/internal/logger"
)

// profileRepository stores the per-identity profile image under its own
// key. The payload is an opaque JSON-encoded string (typically a base64
// image or a file URI) supplied by the caller.
type profileRepository struct {
	kv     KeyValue
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided key-value store and logger.
func NewProfileRepository(kv KeyValue, logger *logger.Logger) ProfileRepository {
	return &profileRepository{
		kv:     kv,
		logger: logger,
	}
}

func (r *profileRepository) ProfileImage(ctx context.Context, identityID string) (string, error) {
	raw, err := r.kv.Get(ctx, ProfileImageKey(identityID))
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return "", ErrKeyNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "profileRepository.ProfileImage").Str("identity_id", identityID).Msg("failed to read profile image")
		return "", fmt.Errorf("read profile image: %w", err)
	}

	return raw, nil
}

func (r *profileRepository) SaveProfileImage(ctx context.Context, identityID string, image string) error {
	if err := r.kv.Set(ctx, ProfileImageKey(identityID), image); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "profileRepository.SaveProfileImage").Str("identity_id", identityID).Msg("failed to write profile image")
		return fmt.Errorf("write profile image: %w", err)
	}

	return nil
}

func (r *profileRepository) DeleteProfileImage(ctx context.Context, identityID string) error {
	if err := r.kv.Delete(ctx, ProfileImageKey(identityID)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "profileRepository.DeleteProfileImage").Str("identity_id", identityID).Msg("failed to delete profile image")
		return fmt.Errorf("delete profile image: %w", err)
	}

	return nil
}
