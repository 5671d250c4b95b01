package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainingcentre/internal/domain"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	user := &domain.User{
		Name:            "Asha",
		Email:           "asha@example.com",
		Progress:        25,
		EnrolledCourses: []string{"pbi-sql", "agentic-ai"},
	}

	require.NoError(t, store.Save(ctx, "s1", user))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, user, loaded)
}

func TestSessionStoreMissingSlotIsAbsent(t *testing.T) {
	store := NewMemorySessionStore()

	loaded, err := store.Load(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionStoreSaveNilDeletes(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	require.NoError(t, store.Save(ctx, "s1", &domain.User{Email: "a@b.c"}))
	require.NoError(t, store.Save(ctx, "s1", nil))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	require.NoError(t, store.Save(ctx, "s1", &domain.User{Email: "a@b.c"}))
	require.NoError(t, store.Delete(ctx, "s1"))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionStoreMalformedPayloadIsAbsent(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	require.NoError(t, store.Save(ctx, "s1", &domain.User{Email: "a@b.c"}))
	store.Corrupt("s1")

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, loaded, "a slot that does not parse reads as no session")
}

func TestSessionStoreLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	require.NoError(t, store.Save(ctx, "s1", &domain.User{Email: "a@b.c", Progress: 10}))
	require.NoError(t, store.Save(ctx, "s1", &domain.User{Email: "a@b.c", Progress: 40}))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 40, loaded.Progress)
}
