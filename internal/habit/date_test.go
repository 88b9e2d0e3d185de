package habit

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_TextRoundTrip(t *testing.T) {
	d := NewDate(2024, time.January, 5)
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "2024-01-05" {
		t.Errorf("MarshalText = %q, want 2024-01-05", text)
	}

	var back Date
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if back != d {
		t.Errorf("round trip: %v != %v", back, d)
	}
}

func TestDate_AsJSONMapKey(t *testing.T) {
	stats := map[Date]uint32{
		NewDate(2024, time.January, 1):   15,
		NewDate(2024, time.December, 31): 3,
	}
	data, err := json.Marshal(stats)
	if err != nil {
		t.Fatalf("marshal map: %v", err)
	}

	var back map[Date]uint32
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal map: %v", err)
	}
	if len(back) != 2 || back[NewDate(2024, time.January, 1)] != 15 {
		t.Errorf("map round trip mismatch: %v", back)
	}
}

func TestDate_ParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2024-13-01", "2024-02-30", "not-a-date", "2024/01/01"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) accepted invalid input", s)
		}
	}
}

func TestDate_Ordering(t *testing.T) {
	a := NewDate(2024, time.January, 31)
	b := NewDate(2024, time.February, 1)
	if !a.Before(b) || b.Before(a) {
		t.Error("Before ordering wrong across month boundary")
	}
	if !b.After(a) {
		t.Error("After disagrees with Before")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a date should not order against itself")
	}
}

func TestDate_AddMonths(t *testing.T) {
	tests := []struct {
		start Date
		n     int
		want  Date
	}{
		{NewDate(2024, time.March, 15), -1, NewDate(2024, time.February, 15)},
		{NewDate(2024, time.March, 31), -1, NewDate(2024, time.February, 29)}, // leap-year clamp
		{NewDate(2024, time.January, 10), -2, NewDate(2023, time.November, 10)},
		{NewDate(2023, time.December, 31), 2, NewDate(2024, time.February, 29)},
		{NewDate(2024, time.June, 1), 0, NewDate(2024, time.June, 1)},
	}
	for _, tt := range tests {
		if got := tt.start.AddMonths(tt.n); got != tt.want {
			t.Errorf("%v.AddMonths(%d) = %v, want %v", tt.start, tt.n, got, tt.want)
		}
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(2024, time.February); got != 29 {
		t.Errorf("DaysIn(2024, Feb) = %d, want 29", got)
	}
	if got := DaysIn(2023, time.February); got != 28 {
		t.Errorf("DaysIn(2023, Feb) = %d, want 28", got)
	}
	if got := DaysIn(2024, time.April); got != 30 {
		t.Errorf("DaysIn(2024, Apr) = %d, want 30", got)
	}
}
