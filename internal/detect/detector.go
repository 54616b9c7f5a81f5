package detect

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/internal/engine"
)

// DefaultConfidence is the conservative score used when the engine does
// not report one.
const DefaultConfidence = float32(0.5)

// Detector maps provider type tags onto the canonical invoice types.
// The table is loaded at startup, never hardcoded: new provider tags are
// a config change, not a code change.
type Detector struct {
	mapping Mapping
	logger  *slog.Logger
}

func NewDetector(mapping Mapping, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{mapping: mapping, logger: logger}
}

// Detect classifies engine output. Unmapped tags fall through to Generic
// rather than failing; a missing confidence becomes DefaultConfidence.
func (d *Detector) Detect(out engine.Output) (constants.InvoiceType, float32) {
	tag := d.typeTag(out)
	conf := out.Confidence
	if conf <= 0 {
		conf = DefaultConfidence
	}
	if tag == "" {
		d.logger.Warn("detect.no_type_tag")
		return constants.Generic, conf
	}
	if t, ok := d.mapping.Lookup(tag); ok {
		return t, conf
	}
	d.logger.Warn("detect.unmapped_tag", "tag", tag)
	return constants.Generic, conf
}

// typeTag reads the provider tag from the first populated location among
// the configured paths, falling back to the flat field.
func (d *Detector) typeTag(out engine.Output) string {
	if len(d.mapping.TagPaths) > 0 && len(out.Raw) > 0 {
		var doc map[string]any
		if err := json.Unmarshal(out.Raw, &doc); err == nil {
			for _, path := range d.mapping.TagPaths {
				if v := lookupPath(doc, path); v != "" {
					return v
				}
			}
		}
	}
	return strings.TrimSpace(out.TypeTag)
}

func lookupPath(doc map[string]any, path string) string {
	cur := any(doc)
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur, ok = m[key]
		if !ok {
			return ""
		}
	}
	if s, ok := cur.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
