package habit

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_MixedRoundTrip(t *testing.T) {
	pushups := NewCount("Pushups", 20)
	pushups.InsertEntry(NewDate(2024, time.January, 1), 15)
	pushups.InsertEntry(NewDate(2024, time.January, 2), 20)
	pushups.SetViewMode(Year)
	pushups.SetViewMonthOffset(5)

	meditate := NewBit("Meditate")
	meditate.InsertEntry(NewDate(2024, time.February, 1), true)
	meditate.InsertEntry(NewDate(2024, time.February, 2), false)
	meditate.SetViewMode(Month)

	data, err := EncodeTrackers([]Tracker{pushups, meditate})
	require.NoError(t, err)

	decoded, err := DecodeTrackers(data)
	require.NoError(t, err)
	require.Len(t, decoded, 2)

	count, ok := decoded[0].(*Count)
	require.True(t, ok, "first record should decode as *Count")
	assert.Equal(t, "Pushups", count.Name())
	assert.Equal(t, uint32(20), count.Goal())
	v, ok := count.GetByDate(NewDate(2024, time.January, 1))
	require.True(t, ok)
	assert.Equal(t, uint32(15), v)
	v, ok = count.GetByDate(NewDate(2024, time.January, 2))
	require.True(t, ok)
	assert.Equal(t, uint32(20), v)

	bit, ok := decoded[1].(*Bit)
	require.True(t, ok, "second record should decode as *Bit")
	assert.Equal(t, "Meditate", bit.Name())
	assert.Equal(t, uint32(1), bit.Goal())
	bv, ok := bit.GetByDate(NewDate(2024, time.February, 1))
	require.True(t, ok)
	assert.True(t, bool(bv))
	bv, ok = bit.GetByDate(NewDate(2024, time.February, 2))
	require.True(t, ok)
	assert.False(t, bool(bv))

	// View state never survives a round trip.
	for _, tracker := range decoded {
		assert.Equal(t, Day, tracker.Mode())
		assert.Equal(t, uint32(0), tracker.ViewMonthOffset())
	}
}

func TestCodec_DiscriminantPresent(t *testing.T) {
	data, err := json.Marshal(NewCount("Pushups", 20))
	require.NoError(t, err)

	var rec map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.JSONEq(t, `"count"`, string(rec["type"]))
	assert.Contains(t, rec, "name")
	assert.Contains(t, rec, "stats")
	assert.Contains(t, rec, "goal")
	assert.NotContains(t, rec, "view_mode")
	assert.NotContains(t, rec, "view_month_offset")
}

func TestCodec_UnknownKind(t *testing.T) {
	_, err := UnmarshalTracker([]byte(`{"type":"streak","name":"X","stats":{},"goal":3}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKind), "error should wrap ErrUnknownKind")
	assert.Contains(t, err.Error(), "streak")
}

func TestCodec_UnknownKindFailsWholeCollection(t *testing.T) {
	data := []byte(`[
		{"type":"count","name":"Pushups","stats":{},"goal":20},
		{"type":"mystery","name":"X","stats":{},"goal":1}
	]`)
	decoded, err := DecodeTrackers(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKind))
	assert.Nil(t, decoded, "a bad record must not yield a partial collection")
}

func TestCodec_EmptyStatsDecodeUsable(t *testing.T) {
	decoded, err := UnmarshalTracker([]byte(`{"type":"bit","name":"Floss","stats":{},"goal":true}`))
	require.NoError(t, err)

	// The decoded habit must be immediately mutable.
	decoded.Modify(NewDate(2024, time.March, 3), Increment)
	assert.True(t, decoded.ReachedGoal(NewDate(2024, time.March, 3)))
}
