package models

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseSlotRepo(t *testing.T, repo SlotRepo) {
	t.Helper()
	ctx := context.Background()

	_, err := repo.GetSlot(ctx, BookingDataKey)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	require.NoError(t, repo.SetSlot(ctx, BookingDataKey, []byte(`{"bookings":[]}`)))
	require.NoError(t, repo.SetSlot(ctx, UserAuthKey, []byte(`not json`)))
	require.NoError(t, repo.SetSlot(ctx, BookingDataKey, []byte(`{"bookings":[1]}`)))

	got, err := repo.GetSlot(ctx, BookingDataKey)
	require.NoError(t, err)
	assert.Equal(t, `{"bookings":[1]}`, string(got))

	got, err = repo.GetSlot(ctx, UserAuthKey)
	require.NoError(t, err)
	assert.Equal(t, `not json`, string(got))

	require.NoError(t, repo.DeleteSlot(ctx, UserAuthKey))
	require.NoError(t, repo.DeleteSlot(ctx, UserAuthKey))
	_, err = repo.GetSlot(ctx, UserAuthKey)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	_, err = repo.GetSlot(ctx, BookingDataKey)
	assert.NoError(t, err)
}

func TestMemoryRepo(t *testing.T) {
	exerciseSlotRepo(t, MemoryNewRepo())
}

func TestMemoryRepo_CopiesValues(t *testing.T) {
	repo := MemoryNewRepo()
	value := []byte("abc")
	require.NoError(t, repo.SetSlot(context.Background(), "k", value))
	value[0] = 'z'

	got, err := repo.GetSlot(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestFileRepo(t *testing.T) {
	dir := t.TempDir()
	repo, err := FileNewRepo(dir)
	require.NoError(t, err)
	exerciseSlotRepo(t, repo)

	_, err = os.Stat(filepath.Join(dir, BookingDataKey+".json"))
	assert.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestFileRepo_RejectsBadKeys(t *testing.T) {
	repo, err := FileNewRepo(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", "a/b", `a\b`} {
		assert.Error(t, repo.SetSlot(context.Background(), key, []byte("x")), key)
	}

	_, err = FileNewRepo("  ")
	assert.Error(t, err)
}

func TestMongodbRepo_NoClient(t *testing.T) {
	repo := MongodbNewRepo(nil, "")
	assert.Equal(t, DefaultDbName, repo.dbName)

	_, err := repo.GetSlot(context.Background(), BookingDataKey)
	assert.Error(t, err)
	assert.Error(t, repo.SetSlot(context.Background(), BookingDataKey, []byte("{}")))
}

func TestSupabaseRepo_NoClient(t *testing.T) {
	_, err := SupabaseNewRepo(nil).AuthenticateUser(context.Background(), "a@b.c", "pw")
	assert.Error(t, err)
}
