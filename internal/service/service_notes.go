package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/notesapp/pocketnotes/internal/logger"
	"github.com/notesapp/pocketnotes/internal/store"
	"github.com/notesapp/pocketnotes/internal/utils"
	"github.com/notesapp/pocketnotes/models"
)

// defaultNoteTitle replaces an empty or whitespace-only title on creation.
const defaultNoteTitle = "Untitled"

// notesService is the concrete implementation of NotesService.
//
// Every mutation is a read-modify-write of the identity's whole collection
// against a single storage key, so concurrent mutations for the same
// identity would race and drop writes. A per-identity lock serializes them;
// different identities mutate in parallel.
type notesService struct {
	notes  store.NotesRepository
	ids    *utils.UUIDGenerator
	logger *logger.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewNotesService(notes store.NotesRepository, ids *utils.UUIDGenerator, logger *logger.Logger) NotesService {
	return &notesService{
		notes:  notes,
		ids:    ids,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing mutations for identityID,
// creating it on first use.
func (n *notesService) lockFor(identityID string) *sync.Mutex {
	n.mu.Lock()
	defer n.mu.Unlock()

	lock, ok := n.locks[identityID]
	if !ok {
		lock = &sync.Mutex{}
		n.locks[identityID] = lock
	}

	return lock
}

func (n *notesService) List(ctx context.Context, identityID string) ([]models.Note, error) {
	notes, err := n.notes.Notes(ctx, identityID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "notesService.List").Str("identity_id", identityID).Msg("failed to load notes")
		return nil, fmt.Errorf("load notes: %w", err)
	}

	return notes, nil
}

func (n *notesService) Add(ctx context.Context, identityID, title, content string) (models.Note, error) {
	lock := n.lockFor(identityID)
	lock.Lock()
	defer lock.Unlock()

	log := logger.FromContext(ctx)

	notes, err := n.notes.Notes(ctx, identityID)
	if err != nil {
		log.Err(err).Str("func", "notesService.Add").Str("identity_id", identityID).Msg("failed to load notes")
		return models.Note{}, fmt.Errorf("load notes: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	note := models.Note{
		ID:        n.ids.Generate(),
		Title:     titleOrDefault(title),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := n.notes.SaveNotes(ctx, identityID, append(notes, note)); err != nil {
		log.Err(err).Str("func", "notesService.Add").Str("identity_id", identityID).Msg("failed to persist notes")
		return models.Note{}, fmt.Errorf("persist notes: %w", err)
	}

	return note, nil
}

func (n *notesService) Update(ctx context.Context, identityID, noteID, title, content string) (models.Note, error) {
	lock := n.lockFor(identityID)
	lock.Lock()
	defer lock.Unlock()

	log := logger.FromContext(ctx)

	notes, err := n.notes.Notes(ctx, identityID)
	if err != nil {
		log.Err(err).Str("func", "notesService.Update").Str("identity_id", identityID).Msg("failed to load notes")
		return models.Note{}, fmt.Errorf("load notes: %w", err)
	}

	idx := indexOf(notes, noteID)
	if idx < 0 {
		// unknown note id, nothing to write
		return models.Note{}, nil
	}

	notes[idx].Title = titleOrDefault(title)
	notes[idx].Content = content
	notes[idx].UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := n.notes.SaveNotes(ctx, identityID, notes); err != nil {
		log.Err(err).Str("func", "notesService.Update").Str("identity_id", identityID).Str("note_id", noteID).Msg("failed to persist notes")
		return models.Note{}, fmt.Errorf("persist notes: %w", err)
	}

	return notes[idx], nil
}

func (n *notesService) Delete(ctx context.Context, identityID, noteID string) error {
	lock := n.lockFor(identityID)
	lock.Lock()
	defer lock.Unlock()

	log := logger.FromContext(ctx)

	notes, err := n.notes.Notes(ctx, identityID)
	if err != nil {
		log.Err(err).Str("func", "notesService.Delete").Str("identity_id", identityID).Msg("failed to load notes")
		return fmt.Errorf("load notes: %w", err)
	}

	idx := indexOf(notes, noteID)
	if idx < 0 {
		// unknown note id, nothing to write
		return nil
	}

	remaining := append(notes[:idx:idx], notes[idx+1:]...)
	if err := n.notes.SaveNotes(ctx, identityID, remaining); err != nil {
		log.Err(err).Str("func", "notesService.Delete").Str("identity_id", identityID).Str("note_id", noteID).Msg("failed to persist notes")
		return fmt.Errorf("persist notes: %w", err)
	}

	return nil
}

func titleOrDefault(title string) string {
	if strings.TrimSpace(title) == "" {
		return defaultNoteTitle
	}

	return title
}

func indexOf(notes []models.Note, noteID string) int {
	for i, note := range notes {
		if note.ID == noteID {
			return i
		}
	}

	return -1
}
