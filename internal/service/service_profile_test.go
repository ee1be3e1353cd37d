// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notesapp/pocketnotes/internal/logger"
	"github.com/notesapp/pocketnotes/internal/store"
)

func newMemoryProfileService() ProfileService {
	kv := store.NewMemoryKeyValue()
	return NewProfileService(store.NewProfileRepository(kv, logger.Nop()), logger.Nop())
}

func TestProfileService_ImageRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryProfileService()

	image, err := svc.Image(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, image, "no stored image reads as empty, not as an error")

	require.NoError(t, svc.SaveImage(ctx, "u-1", "data:image/png;base64,AAAA"))

	image, err = svc.Image(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", image)

	require.NoError(t, svc.RemoveImage(ctx, "u-1"))

	image, err = svc.Image(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, image)
}

func TestProfileService_ImagesAreIsolatedPerIdentity(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryProfileService()

	require.NoError(t, svc.SaveImage(ctx, "u-1", "mine"))

	image, err := svc.Image(ctx, "u-2")
	require.NoError(t, err)
	assert.Empty(t, image)
}
