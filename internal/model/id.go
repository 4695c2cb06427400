package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID generates an entity identifier: unix milliseconds joined with the
// first 8 hex characters of a UUID. Millis keep ids roughly insertion-
// ordered, which the keyset pagination relies on.
func NewID() string {
	u := uuid.New()
	return fmt.Sprintf("%d-%x", time.Now().UnixMilli(), u[:4])
}
