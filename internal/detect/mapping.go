package detect

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/billfold/invoice-ingest/constants"
)

// Mapping is the declarative provider-tag table. Keys are matched
// case-insensitively.
type Mapping struct {
	// TagPaths are dotted JSON paths tried in order against the raw
	// engine response to locate the provider's type tag.
	TagPaths []string `yaml:"tag_paths"`
	// Tags maps provider tag -> canonical invoice type.
	Tags map[string]string `yaml:"tags"`

	normalized map[string]constants.InvoiceType
}

// LoadMapping reads the YAML mapping file and validates its targets.
func LoadMapping(path string) (Mapping, error) {
	var m Mapping
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read type mapping: %w", err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse type mapping: %w", err)
	}
	if err := m.normalize(); err != nil {
		return m, err
	}
	return m, nil
}

// NewMapping builds a mapping from literal values, for tests and defaults.
func NewMapping(tagPaths []string, tags map[string]string) (Mapping, error) {
	m := Mapping{TagPaths: tagPaths, Tags: tags}
	if err := m.normalize(); err != nil {
		return m, err
	}
	return m, nil
}

func (m *Mapping) normalize() error {
	m.normalized = make(map[string]constants.InvoiceType, len(m.Tags))
	valid := make(map[string]struct{})
	for _, s := range constants.InvoiceTypesAsStrings() {
		valid[s] = struct{}{}
	}
	for tag, target := range m.Tags {
		t := strings.ToUpper(strings.TrimSpace(target))
		if _, ok := valid[t]; !ok {
			return fmt.Errorf("type mapping %q: unknown canonical type %q", tag, target)
		}
		m.normalized[strings.ToLower(strings.TrimSpace(tag))] = constants.InvoiceType(t)
	}
	return nil
}

// Lookup resolves a provider tag; ok is false for unmapped tags.
func (m Mapping) Lookup(tag string) (constants.InvoiceType, bool) {
	t, ok := m.normalized[strings.ToLower(strings.TrimSpace(tag))]
	return t, ok
}
