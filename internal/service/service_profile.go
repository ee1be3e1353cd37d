package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/notesapp/pocketnotes/internal/logger"
	"github.com/notesapp/pocketnotes/internal/store"
)

// profileService exposes the per-identity profile image slot. The payload
// is opaque to the service; callers typically store a base64 image or a
// file URI.
type profileService struct {
	profiles store.ProfileRepository
	logger   *logger.Logger
}

func NewProfileService(profiles store.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profiles: profiles,
		logger:   logger,
	}
}

func (p *profileService) Image(ctx context.Context, identityID string) (string, error) {
	image, err := p.profiles.ProfileImage(ctx, identityID)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return "", nil
		}
		logger.FromContext(ctx).Err(err).Str("func", "profileService.Image").Str("identity_id", identityID).Msg("failed to load profile image")
		return "", fmt.Errorf("load profile image: %w", err)
	}

	return image, nil
}

func (p *profileService) SaveImage(ctx context.Context, identityID, image string) error {
	if err := p.profiles.SaveProfileImage(ctx, identityID, image); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "profileService.SaveImage").Str("identity_id", identityID).Msg("failed to save profile image")
		return fmt.Errorf("save profile image: %w", err)
	}

	return nil
}

func (p *profileService) RemoveImage(ctx context.Context, identityID string) error {
	if err := p.profiles.DeleteProfileImage(ctx, identityID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "profileService.RemoveImage").Str("identity_id", identityID).Msg("failed to delete profile image")
		return fmt.Errorf("delete profile image: %w", err)
	}

	return nil
}
