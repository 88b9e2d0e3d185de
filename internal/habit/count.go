package habit

import "encoding/json"

// KindCount is the serialized discriminant for Count records.
const KindCount = "count"

// Count is a habit with a numeric daily goal, e.g. "20 pushups".
type Count struct {
	name  string
	stats map[Date]uint32
	goal  uint32

	viewState
}

var _ Habit[uint32] = (*Count)(nil)
var _ Tracker = (*Count)(nil)

// NewCount creates a counter habit with the given name and daily goal.
func NewCount(name string, goal uint32) *Count {
	return &Count{
		name:  name,
		stats: make(map[Date]uint32),
		goal:  goal,
	}
}

func (c *Count) Name() string        { return c.name }
func (c *Count) SetName(name string) { c.name = name }
func (c *Count) SetGoal(goal uint32) { c.goal = goal }
func (c *Count) Goal() uint32        { return c.goal }
func (c *Count) Kind() string        { return KindCount }

func (c *Count) GetByDate(date Date) (uint32, bool) {
	v, ok := c.stats[date]
	return v, ok
}

func (c *Count) InsertEntry(date Date, value uint32) {
	c.stats[date] = value
}

func (c *Count) ReachedGoal(date Date) bool {
	v, ok := c.stats[date]
	return ok && v >= c.goal
}

func (c *Count) Remaining(date Date) uint32 {
	if c.ReachedGoal(date) {
		return 0
	}
	if v, ok := c.stats[date]; ok {
		return c.goal - v
	}
	return c.goal
}

func (c *Count) Modify(date Date, event TrackEvent) {
	v, ok := c.stats[date]
	if !ok {
		// First touch stores 1 for either event kind, so a stray
		// decrement never creates a zero-value day.
		c.InsertEntry(date, 1)
		return
	}
	switch event {
	case Increment:
		c.stats[date] = v + 1
	case Decrement:
		if v > 0 {
			c.stats[date] = v - 1
		}
	}
}

// countRecord is the persisted shape of a Count. View state is deliberately
// absent from it.
type countRecord struct {
	Type  string          `json:"type"`
	Name  string          `json:"name"`
	Stats map[Date]uint32 `json:"stats"`
	Goal  uint32          `json:"goal"`
}

// MarshalJSON encodes the habit with its type discriminant.
func (c *Count) MarshalJSON() ([]byte, error) {
	return json.Marshal(countRecord{
		Type:  KindCount,
		Name:  c.name,
		Stats: c.stats,
		Goal:  c.goal,
	})
}

// UnmarshalJSON restores name, stats and goal; view state resets to Day/0.
func (c *Count) UnmarshalJSON(data []byte) error {
	var rec countRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	c.name = rec.Name
	c.stats = rec.Stats
	c.goal = rec.Goal
	if c.stats == nil {
		c.stats = make(map[Date]uint32)
	}
	c.viewState = viewState{}
	return nil
}
