package model

import (
	"fmt"
	"time"
)

// Timestamp serializes as ISO-8601 UTC with second precision and a trailing
// Z, matching the stored createdAt/updatedAt format.
type Timestamp time.Time

// Now returns the current UTC time truncated to the second.
func Now() Timestamp {
	return Timestamp(time.Now().UTC().Truncate(time.Second))
}

// Time converts back to a time.Time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Time(t).UTC().Format("2006-01-02T15:04:05Z"))), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var parsed time.Time
	if err := parsed.UnmarshalJSON(data); err != nil {
		return err
	}
	*t = Timestamp(parsed.UTC().Truncate(time.Second))
	return nil
}

func (t Timestamp) String() string {
	return time.Time(t).UTC().Format("2006-01-02T15:04:05Z")
}
