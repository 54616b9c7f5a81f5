package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContentBlob is the deduplicated, hash-identified storage unit for a
// document's raw bytes. The hash is the identity; rows are immutable.
type ContentBlob struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	Hash        []byte    `json:"hash"` // sha-256 over full content
	ByteSize    int64     `json:"byte_size"`
	StorageRef  string    `json:"storage_ref"`
	FirstSeenAt time.Time `json:"first_seen_at"`
}
