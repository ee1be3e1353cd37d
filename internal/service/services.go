package service

import (
	"context"

	"github.com/notesapp/pocketnotes/internal/logger"
	"github.com/notesapp/pocketnotes/internal/store"
	"github.com/notesapp/pocketnotes/internal/utils"
	"github.com/notesapp/pocketnotes/internal/validators"
)

type Services struct {
	Session  SessionService
	Notes    NotesService
	Profiles ProfileService
}

func NewServices(ctx context.Context, storages store.Storages, logger *logger.Logger) *Services {
	ids := utils.NewUUIDGenerator()

	return &Services{
		Session:  NewSessionService(ctx, storages.Users, validators.NewCredentialsValidator(), ids, logger),
		Notes:    NewNotesService(storages.Notes, ids, logger),
		Profiles: NewProfileService(storages.Profiles, logger),
	}
}
