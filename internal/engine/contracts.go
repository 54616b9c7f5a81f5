package engine

import (
	"context"
	"encoding/json"
)

// Output is the recognition engine's loosely typed result. The type tag
// location and field names vary by document kind and provider version,
// so nothing here is trusted beyond JSON well-formedness.
type Output struct {
	TypeTag         string             `json:"type"`
	Fields          map[string]any     `json:"fields"`
	FieldConfidence map[string]float32 `json:"field_confidence,omitempty"`
	Confidence      float32            `json:"confidence,omitempty"`
	// Raw preserves the untouched engine response for storage and for
	// detectors that read provider-specific nested locations.
	Raw json.RawMessage `json:"-"`
}

// Recognizer is the interface the pipeline depends on.
type Recognizer interface {
	Recognize(ctx context.Context, content []byte, filename string) (Output, error)
}
