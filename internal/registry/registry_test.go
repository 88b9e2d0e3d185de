package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/habit"
)

func TestRegistry_AddGetDelete(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "habits.json"))

	pushups := habit.NewCount("Pushups", 20)
	meditate := habit.NewBit("Meditate")
	r.Add(pushups)
	r.Add(meditate)

	require.Equal(t, 2, r.Len())

	got, ok := r.Get("Pushups")
	require.True(t, ok)
	assert.Same(t, habit.Tracker(pushups), got)

	_, ok = r.Get("Nope")
	assert.False(t, ok)

	assert.True(t, r.DeleteByName("Pushups"))
	assert.False(t, r.DeleteByName("Pushups"))
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, "Meditate", r.All()[0].Name())
}

func TestRegistry_DuplicateNamesPermitted(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "habits.json"))
	r.Add(habit.NewBit("Water"))
	r.Add(habit.NewCount("Water", 8))
	assert.Equal(t, 2, r.Len())

	// Delete removes only the first match.
	require.True(t, r.DeleteByName("Water"))
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, habit.KindCount, r.All()[0].Kind())
}

func TestRegistry_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.json")
	r := New(path)

	pushups := habit.NewCount("Pushups", 20)
	pushups.InsertEntry(habit.NewDate(2024, time.January, 1), 16)
	pushups.SetViewMode(habit.Year) // must not survive the round trip
	meditate := habit.NewBit("Meditate")
	meditate.InsertEntry(habit.NewDate(2024, time.February, 1), true)
	r.Add(pushups)
	r.Add(meditate)

	require.NoError(t, r.Save())

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())

	count := loaded.All()[0].(*habit.Count)
	v, ok := count.GetByDate(habit.NewDate(2024, time.January, 1))
	require.True(t, ok)
	assert.Equal(t, uint32(16), v)
	assert.Equal(t, habit.Day, count.Mode())

	bit := loaded.All()[1].(*habit.Bit)
	bv, ok := bit.GetByDate(habit.NewDate(2024, time.February, 1))
	require.True(t, ok)
	assert.True(t, bool(bv))

	names := []string{loaded.All()[0].Name(), loaded.All()[1].Name()}
	if diff := cmp.Diff([]string{"Pushups", "Meditate"}, names); diff != "" {
		t.Errorf("habit order changed (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFileYieldsEmpty(t *testing.T) {
	r, err := Load(filepath.Join(t.TempDir(), "habits.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())
}

func TestLoad_UnknownKindFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.json")
	data := `[{"type":"streak","name":"X","stats":{},"goal":3}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, habit.ErrUnknownKind)
}

func TestRegistry_SaveIsAtomicReplacement(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.json")
	r := New(path)
	r.Add(habit.NewBit("Meditate"))
	require.NoError(t, r.Save())

	// A second save must replace, not append.
	require.NoError(t, r.Save())
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRegistry_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.json")
	r := New(path)
	r.Add(habit.NewBit("Meditate"))
	require.NoError(t, r.Save())

	// Another process adds a habit.
	other, err := Load(path)
	require.NoError(t, err)
	other.Add(habit.NewCount("Pushups", 20))
	require.NoError(t, other.Save())

	require.NoError(t, r.Reload())
	assert.Equal(t, 2, r.Len())
}
