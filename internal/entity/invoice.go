package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/billfold/invoice-ingest/constants"
)

// Invoice is the normalized, type-tagged business record produced after
// recognition and adaptation. Exactly one exists per (profile, content hash).
type Invoice struct {
	ID               uuid.UUID                `json:"id"`
	ProfileID        uuid.UUID                `json:"profile_id"`
	ContentHash      []byte                   `json:"content_hash"`
	InvoiceType      constants.InvoiceType    `json:"invoice_type"`
	CanonicalFields  json.RawMessage          `json:"canonical_fields"`
	RawEngineOutput  json.RawMessage          `json:"raw_engine_output,omitempty"`
	ConfidenceScores json.RawMessage          `json:"confidence_scores,omitempty"`
	Validation       json.RawMessage          `json:"validation,omitempty"`
	Source           constants.InvoiceSource  `json:"source"`
	LifecycleState   constants.LifecycleState `json:"lifecycle_state"`
	DeletedAt        *time.Time               `json:"deleted_at,omitempty"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}
