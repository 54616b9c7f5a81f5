package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/billfold/invoice-ingest/constants"
)

// JobCounters aggregates per-job progress. Counters never decrease
// within a phase.
type JobCounters struct {
	Scanned    uint32 `json:"scanned"`
	Matched    uint32 `json:"matched"`
	Extracted  uint32 `json:"extracted"`
	Duplicates uint32 `json:"duplicates"`
	Failed     uint32 `json:"failed"`
}

// ItemError is one absorbed per-item failure, surfaced only in the
// job's error log, never as a raw stack trace.
type ItemError struct {
	Item   string `json:"item"`
	Reason string `json:"reason"`
}

// IngestJob tracks one scan-to-extraction run across multiple time-boxed
// invocations.
type IngestJob struct {
	ID         uuid.UUID          `json:"id"`
	ProfileID  uuid.UUID          `json:"profile_id"`
	Phase      constants.JobPhase `json:"phase"`
	Folder     string             `json:"folder"`
	Criteria   string             `json:"criteria,omitempty"`
	Cursor     uint32             `json:"cursor"` // last processed message uid
	Counters   JobCounters        `json:"counters"`
	ErrorLog   []ItemError        `json:"error_log,omitempty"`
	Cancelled  bool               `json:"cancelled"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt *time.Time         `json:"finished_at,omitempty"`
}

// JobBatch is one extraction work unit enqueued at SCAN_COMPLETE.
type JobBatch struct {
	ID       uuid.UUID             `json:"id"`
	JobID    uuid.UUID             `json:"job_id"`
	Seq      int                   `json:"seq"`
	UIDs     []uint32              `json:"uids"`
	Status   constants.BatchStatus `json:"status"`
	Counters JobCounters           `json:"counters"`
}
