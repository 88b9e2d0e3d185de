package habit

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a persisted record carries a type
// discriminant that matches no known habit kind. Callers must treat the
// whole load as failed; no partially-built habit is ever produced.
var ErrUnknownKind = errors.New("unknown habit kind")

// Tracker is the type-erased face of a habit. One ordered collection holds
// mixed concrete kinds behind it; the tracking operations forward to the
// concrete implementation and the Draw/OnKey/RequiredSize/TakeFocus hooks
// serve the terminal renderer. The set of implementations is closed: adding
// a kind means a new concrete type plus a dispatch arm in UnmarshalTracker.
type Tracker interface {
	json.Marshaler

	// Kind returns the serialized discriminant for the concrete type.
	Kind() string

	Name() string
	SetName(name string)
	Goal() uint32
	Remaining(date Date) uint32
	ReachedGoal(date Date) bool
	HasEntry(date Date) bool
	Modify(date Date, event TrackEvent)

	SetViewMonthOffset(offset uint32)
	ViewMonthOffset() uint32
	SetViewMode(mode ViewMode)
	Mode() ViewMode

	// Renderer hooks, consumed by the UI collaborator.
	Draw(rc RenderContext) string
	OnKey(key string) bool
	RequiredSize() (width, height int)
	TakeFocus() bool
}

// UnmarshalTracker reconstructs the exact concrete habit kind from one
// persisted record by dispatching on its "type" discriminant.
func UnmarshalTracker(data []byte) (Tracker, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("habit record: %w", err)
	}
	switch probe.Type {
	case KindCount:
		c := &Count{}
		if err := json.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("count record: %w", err)
		}
		return c, nil
	case KindBit:
		b := &Bit{}
		if err := json.Unmarshal(data, b); err != nil {
			return nil, fmt.Errorf("bit record: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, probe.Type)
	}
}

// EncodeTrackers serializes an ordered habit collection as a JSON array of
// tagged records.
func EncodeTrackers(trackers []Tracker) ([]byte, error) {
	return json.MarshalIndent(trackers, "", "  ")
}

// DecodeTrackers reverses EncodeTrackers. The order of the stored records
// is preserved; any unknown discriminant fails the whole decode.
func DecodeTrackers(data []byte) ([]Tracker, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("habit collection: %w", err)
	}
	trackers := make([]Tracker, 0, len(raw))
	for i, rec := range raw {
		t, err := UnmarshalTracker(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		trackers = append(trackers, t)
	}
	return trackers, nil
}
