package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/notesapp/pocketnotes/internal/logger"
	"github.com/notesapp/pocketnotes/models"
)

// notesRepository stores one note collection per identity as a single JSON
// blob. Every mutation re-serialises the whole collection and overwrites
// the one key, so a collection is never partially visible.
type notesRepository struct {
	kv     KeyValue
	logger *logger.Logger
}

// NewNotesRepository constructs a [NotesRepository] backed by the provided
// key-value store and logger.
func NewNotesRepository(kv KeyValue, logger *logger.Logger) NotesRepository {
	logger.Debug().Msg("creating notes repository")
	return &notesRepository{
		kv:     kv,
		logger: logger,
	}
}

func (r *notesRepository) Notes(ctx context.Context, identityID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	raw, err := r.kv.Get(ctx, NotesKey(identityID))
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []models.Note{}, nil
		}
		log.Err(err).Str("func", "notesRepository.Notes").Str("identity_id", identityID).Msg("failed to read notes collection")
		return nil, fmt.Errorf("read notes collection: %w", err)
	}

	var notes []models.Note
	if err = json.Unmarshal([]byte(raw), &notes); err != nil {
		log.Err(err).Str("func", "notesRepository.Notes").Str("identity_id", identityID).Msg("failed to decode notes collection")
		return nil, fmt.Errorf("%w: %v", ErrDecodingValue, err)
	}

	return notes, nil
}

func (r *notesRepository) SaveNotes(ctx context.Context, identityID string, notes []models.Note) error {
	log := logger.FromContext(ctx)

	if notes == nil {
		notes = []models.Note{}
	}

	payload, err := json.Marshal(notes)
	if err != nil {
		log.Err(err).Str("func", "notesRepository.SaveNotes").Str("identity_id", identityID).Msg("failed to encode notes collection")
		return fmt.Errorf("%w: %v", ErrEncodingValue, err)
	}

	if err = r.kv.Set(ctx, NotesKey(identityID), string(payload)); err != nil {
		log.Err(err).Str("func", "notesRepository.SaveNotes").Str("identity_id", identityID).Msg("failed to write notes collection")
		return fmt.Errorf("write notes collection: %w", err)
	}

	return nil
}
