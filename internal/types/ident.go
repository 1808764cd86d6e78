// internal/types/ident.go
//
// Base records for identified, timestamped entities.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Timestamped carries creation and last-update times as Unix seconds.
type Timestamped struct {
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// Touch bumps the update time.
func (t *Timestamped) Touch() { t.UpdatedAt = time.Now().Unix() }

// Record is the base for any persisted entity: a UUID plus timestamps.
type Record struct {
	Timestamped
	ID string `json:"id"`
}

// NewRecord mints a Record with a fresh UUID and both timestamps set to
// now.
func NewRecord() Record {
	now := time.Now().Unix()
	return Record{
		Timestamped: Timestamped{CreatedAt: now, UpdatedAt: now},
		ID:          uuid.NewString(),
	}
}
