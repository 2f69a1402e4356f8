package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(name string) Entry {
	return Entry{
		Path:             "/disks/" + name + ".$B",
		Name:             name,
		Filetype:         'B',
		Start:            100,
		Length:           256,
		FirstSector:      3,
		OccupiedSectors:  1,
		StoredCheckSum:   3700,
		ComputedCheckSum: 3700,
		PayloadBytes:     256,
		ScannedAt:        time.Now().UTC().Truncate(time.Second),
	}
}

func TestCatalog_PutGet(t *testing.T) {
	cat, err := Open(t.TempDir())
	require.NoError(t, err)
	defer cat.Close()

	id, err := cat.Put(testEntry("TESTFILE"))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := cat.Get(id)
	require.NoError(t, err)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, "TESTFILE", got.Name)
	assert.Equal(t, uint16(256), got.Length)
	assert.True(t, got.ChecksumOK())
}

func TestCatalog_Get_NotFound(t *testing.T) {
	cat, err := Open(t.TempDir())
	require.NoError(t, err)
	defer cat.Close()

	entry, err := cat.Get("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, entry)
}

func TestCatalog_Put_KeepsExplicitID(t *testing.T) {
	cat, err := Open(t.TempDir())
	require.NoError(t, err)
	defer cat.Close()

	entry := testEntry("GAME")
	entry.ID = "fixed-id"

	id, err := cat.Put(entry)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id)

	got, err := cat.Get("fixed-id")
	require.NoError(t, err)
	assert.Equal(t, "GAME", got.Name)
}

func TestCatalog_List(t *testing.T) {
	cat, err := Open(t.TempDir())
	require.NoError(t, err)
	defer cat.Close()

	names := []string{"ALPHA", "BETA", "GAMMA"}
	for _, name := range names {
		_, err := cat.Put(testEntry(name))
		require.NoError(t, err)
	}

	entries, err := cat.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	seen := map[string]bool{}
	for _, entry := range entries {
		seen[entry.Name] = true
	}
	for _, name := range names {
		assert.True(t, seen[name], "missing entry %s", name)
	}
}

func TestCatalog_Delete(t *testing.T) {
	cat, err := Open(t.TempDir())
	require.NoError(t, err)
	defer cat.Close()

	id, err := cat.Put(testEntry("TESTFILE"))
	require.NoError(t, err)

	require.NoError(t, cat.Delete(id))

	_, err = cat.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is fine.
	assert.NoError(t, cat.Delete(id))
}

func TestEntry_ChecksumOK(t *testing.T) {
	entry := testEntry("TESTFILE")
	assert.True(t, entry.ChecksumOK())

	entry.ComputedCheckSum = 1234
	assert.False(t, entry.ChecksumOK())
}
