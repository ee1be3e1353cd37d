// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notesapp/pocketnotes/internal/logger"
	"github.com/notesapp/pocketnotes/internal/store"
	"github.com/notesapp/pocketnotes/internal/utils"
	"github.com/notesapp/pocketnotes/models"
)

// ─────────────────────────────────────────────
// Mock: store.NotesRepository
// ─────────────────────────────────────────────

type mockNotesRepository struct {
	notesFn func(ctx context.Context, identityID string) ([]models.Note, error)
	saveFn  func(ctx context.Context, identityID string, notes []models.Note) error
}

func (m *mockNotesRepository) Notes(ctx context.Context, identityID string) ([]models.Note, error) {
	if m.notesFn != nil {
		return m.notesFn(ctx, identityID)
	}
	return nil, nil
}

func (m *mockNotesRepository) SaveNotes(ctx context.Context, identityID string, notes []models.Note) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, identityID, notes)
	}
	return nil
}

func newTestNotesService(repo store.NotesRepository) NotesService {
	return NewNotesService(repo, utils.NewUUIDGenerator(), logger.Nop())
}

func newMemoryNotesService() NotesService {
	kv := store.NewMemoryKeyValue()
	return newTestNotesService(store.NewNotesRepository(kv, logger.Nop()))
}

// ─────────────────────────────────────────────
// Add
// ─────────────────────────────────────────────

func TestNotesService_Add(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryNotesService()

	note, err := svc.Add(ctx, "u-1", "Groceries", "milk, eggs")
	require.NoError(t, err)

	assert.NotEmpty(t, note.ID)
	assert.Equal(t, "Groceries", note.Title)
	assert.Equal(t, "milk, eggs", note.Content)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt, "a fresh note has identical timestamps")

	notes, err := svc.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, note, notes[0])
}

func TestNotesService_Add_EmptyTitleDefaultsToUntitled(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryNotesService()

	tests := []string{"", "   ", "\t\n"}
	for _, title := range tests {
		note, err := svc.Add(ctx, "u-1", title, "body")
		require.NoError(t, err)
		assert.Equal(t, "Untitled", note.Title)
	}
}

func TestNotesService_Add_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryNotesService()

	for i := 0; i < 5; i++ {
		_, err := svc.Add(ctx, "u-1", fmt.Sprintf("note %d", i), "")
		require.NoError(t, err)
	}

	notes, err := svc.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, notes, 5)
	for i, note := range notes {
		assert.Equal(t, fmt.Sprintf("note %d", i), note.Title)
	}
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func TestNotesService_Update(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryNotesService()

	created, err := svc.Add(ctx, "u-1", "Groceries", "milk")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "u-1", created.ID, "Groceries", "milk, eggs, bread")
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "milk, eggs, bread", updated.Content)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	notes, err := svc.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, updated, notes[0])
}

func TestNotesService_Update_UnknownIDIsSilentNoOp(t *testing.T) {
	ctx := context.Background()

	stored := []models.Note{{ID: "n-1", Title: "keep", Content: "me"}}
	saveCalls := 0
	repo := &mockNotesRepository{
		notesFn: func(_ context.Context, _ string) ([]models.Note, error) {
			return stored, nil
		},
		saveFn: func(_ context.Context, _ string, _ []models.Note) error {
			saveCalls++
			return nil
		},
	}

	svc := newTestNotesService(repo)

	note, err := svc.Update(ctx, "u-1", "no-such-id", "title", "content")
	require.NoError(t, err)
	assert.Zero(t, note)
	assert.Zero(t, saveCalls, "a miss must not rewrite the collection")
}

func TestNotesService_Update_MissLeavesStoredBytesUnchanged(t *testing.T) {
	ctx := context.Background()

	kv := store.NewMemoryKeyValue()
	svc := newTestNotesService(store.NewNotesRepository(kv, logger.Nop()))

	_, err := svc.Add(ctx, "u-1", "Groceries", "milk")
	require.NoError(t, err)

	before, err := kv.Get(ctx, store.NotesKey("u-1"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, "u-1", "no-such-id", "changed", "changed")
	require.NoError(t, err)

	after, err := kv.Get(ctx, store.NotesKey("u-1"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

// ─────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────

func TestNotesService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryNotesService()

	first, err := svc.Add(ctx, "u-1", "first", "")
	require.NoError(t, err)
	second, err := svc.Add(ctx, "u-1", "second", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "u-1", first.ID))

	notes, err := svc.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, second.ID, notes[0].ID)

	// deleting the same id again is harmless
	require.NoError(t, svc.Delete(ctx, "u-1", first.ID))
}

func TestNotesService_Delete_UnknownIDIsSilentNoOp(t *testing.T) {
	ctx := context.Background()

	saveCalls := 0
	repo := &mockNotesRepository{
		saveFn: func(_ context.Context, _ string, _ []models.Note) error {
			saveCalls++
			return nil
		},
	}

	svc := newTestNotesService(repo)

	require.NoError(t, svc.Delete(ctx, "u-1", "no-such-id"))
	assert.Zero(t, saveCalls)
}

// ─────────────────────────────────────────────
// Isolation and concurrency
// ─────────────────────────────────────────────

func TestNotesService_CollectionsAreIsolatedPerIdentity(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryNotesService()

	_, err := svc.Add(ctx, "u-1", "mine", "")
	require.NoError(t, err)

	notes, err := svc.List(ctx, "u-2")
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNotesService_ConcurrentAddsLoseNoWrites(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryNotesService()

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := svc.Add(ctx, "u-1", fmt.Sprintf("note %d", i), "")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	notes, err := svc.List(ctx, "u-1")
	require.NoError(t, err)
	assert.Len(t, notes, writers)
}

func TestNotesService_LoadErrorIsWrapped(t *testing.T) {
	ctx := context.Background()

	storageErr := errors.New("storage unavailable")
	repo := &mockNotesRepository{
		notesFn: func(_ context.Context, _ string) ([]models.Note, error) {
			return nil, storageErr
		},
	}

	svc := newTestNotesService(repo)

	_, err := svc.List(ctx, "u-1")
	assert.ErrorIs(t, err, storageErr)

	_, err = svc.Add(ctx, "u-1", "t", "c")
	assert.ErrorIs(t, err, storageErr)
}
