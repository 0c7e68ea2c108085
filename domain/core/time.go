package core

import (
	"encoding/json"
	"time"
)

// Instant is a timezone-aware point in time that may be absent. Statement
// timestamps come from free-text extracts, so "no parseable timestamp" is a
// normal state, not an error; a null Instant is excluded from every
// time-ordered aggregation.
type Instant struct {
	Time  time.Time
	Valid bool
}

// NewInstant creates a valid Instant normalized to UTC
func NewInstant(t time.Time) Instant {
	return Instant{Time: t.UTC(), Valid: true}
}

// NullInstant returns the absent Instant
func NullInstant() Instant {
	return Instant{}
}

// Before reports whether i is a valid instant strictly before u
func (i Instant) Before(u Instant) bool {
	return i.Valid && u.Valid && i.Time.Before(u.Time)
}

// After reports whether i is a valid instant strictly after u
func (i Instant) After(u Instant) bool {
	return i.Valid && u.Valid && i.Time.After(u.Time)
}

// Sub returns the duration i−u. Both instants must be valid.
func (i Instant) Sub(u Instant) time.Duration {
	return i.Time.Sub(u.Time)
}

// MarshalJSON renders null for absent instants and RFC3339 otherwise
func (i Instant) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(i.Time.Format(time.RFC3339Nano))
}

// UnmarshalJSON accepts null or an RFC3339 string
func (i *Instant) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*i = Instant{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	*i = NewInstant(t)
	return nil
}
