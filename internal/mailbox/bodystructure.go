package mailbox

import (
	"fmt"
	"strconv"
	"strings"
)

// Part is one node of a parsed body-structure tree.
type Part struct {
	Type              string
	Subtype           string
	Params            map[string]string
	Encoding          string
	Size              int64
	Disposition       string
	DispositionParams map[string]string
	Children          []*Part
}

// ParseError carries the original offending text so the recovery path can
// pattern-match over it.
type ParseError struct {
	Raw    string
	Pos    int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("body structure parse at %d: %s", e.Pos, e.Reason)
}

// nilMarker represents an unescaped NIL token.
type nilMarker struct{}

// token stream items are string (atom/quoted), nilMarker, or []any (group).

// ParseBodyStructure parses the parenthesis-nested body-structure grammar.
// Different servers emit dialectal variants of it, so this parser is
// best-effort: it fails loudly, with the raw text attached, rather than
// guessing.
func ParseBodyStructure(raw string) (*Part, error) {
	items, _, err := lexGroupItems(raw, 0)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &ParseError{Raw: raw, Pos: 0, Reason: "empty structure"}
	}

	// A single wrapped group is the common case. Adjacent top-level groups
	// followed by a subtype atom are an unwrapped multipart; adjacent
	// groups without one are ambiguous.
	if len(items) == 1 {
		if g, ok := items[0].([]any); ok {
			return interpretPart(raw, g)
		}
		return nil, &ParseError{Raw: raw, Pos: 0, Reason: "top level is not a part"}
	}
	// An unwrapped multipart has at least two sibling parts before the
	// subtype atom. One complete part followed by anything else is
	// trailing data, not a dialect.
	if _, ok := items[0].([]any); ok {
		if _, ok := items[1].([]any); !ok {
			return nil, &ParseError{Raw: raw, Pos: 0, Reason: "trailing data after structure"}
		}
	}
	return interpretPart(raw, items)
}

// lexGroupItems reads items until end of input or an unmatched ')'.
// Called recursively for each '('.
func lexGroupItems(raw string, start int) ([]any, int, error) {
	items := make([]any, 0, 8)
	i := start
	for i < len(raw) {
		switch c := raw[i]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '(':
			sub, next, err := lexGroupItems(raw, i+1)
			if err != nil {
				return nil, 0, err
			}
			if next >= len(raw) || raw[next] != ')' {
				return nil, 0, &ParseError{Raw: raw, Pos: i, Reason: "unmatched parenthesis"}
			}
			items = append(items, sub)
			i = next + 1
		case c == ')':
			if start == 0 {
				return nil, 0, &ParseError{Raw: raw, Pos: i, Reason: "unmatched parenthesis"}
			}
			return items, i, nil
		case c == '"':
			s, next, err := lexQuoted(raw, i)
			if err != nil {
				return nil, 0, err
			}
			items = append(items, s)
			i = next
		default:
			s, next := lexAtom(raw, i)
			if strings.EqualFold(s, "NIL") {
				items = append(items, nilMarker{})
			} else {
				items = append(items, s)
			}
			i = next
		}
	}
	if start != 0 {
		return nil, 0, &ParseError{Raw: raw, Pos: start - 1, Reason: "unmatched parenthesis"}
	}
	return items, i, nil
}

func lexQuoted(raw string, start int) (string, int, error) {
	var b strings.Builder
	i := start + 1
	for i < len(raw) {
		switch raw[i] {
		case '\\':
			if i+1 >= len(raw) {
				return "", 0, &ParseError{Raw: raw, Pos: i, Reason: "dangling escape"}
			}
			b.WriteByte(raw[i+1])
			i += 2
		case '"':
			return b.String(), i + 1, nil
		default:
			b.WriteByte(raw[i])
			i++
		}
	}
	return "", 0, &ParseError{Raw: raw, Pos: start, Reason: "unterminated quoted string"}
}

func lexAtom(raw string, start int) (string, int) {
	i := start
	for i < len(raw) {
		c := raw[i]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '(' || c == ')' || c == '"' {
			break
		}
		i++
	}
	return raw[start:i], i
}

// leafMinFields is type, subtype, params, id, description, encoding, size.
const leafMinFields = 7

func interpretPart(raw string, items []any) (*Part, error) {
	if len(items) == 0 {
		return nil, &ParseError{Raw: raw, Pos: 0, Reason: "empty part"}
	}
	if _, ok := items[0].([]any); ok {
		return interpretMultipart(raw, items)
	}
	return interpretLeaf(raw, items)
}

func interpretMultipart(raw string, items []any) (*Part, error) {
	p := &Part{Type: "multipart"}
	i := 0
	for i < len(items) {
		g, ok := items[i].([]any)
		if !ok {
			break
		}
		child, err := interpretPart(raw, g)
		if err != nil {
			return nil, err
		}
		p.Children = append(p.Children, child)
		i++
	}
	if i >= len(items) {
		return nil, &ParseError{Raw: raw, Pos: 0, Reason: "ambiguous top-level type: multipart without subtype"}
	}
	sub, ok := items[i].(string)
	if !ok {
		return nil, &ParseError{Raw: raw, Pos: 0, Reason: "ambiguous top-level type: multipart subtype is not a string"}
	}
	p.Subtype = strings.ToLower(sub)
	i++

	// multipart extension data: parameter list, then disposition
	if i < len(items) {
		if g, ok := items[i].([]any); ok {
			p.Params = pairsToMap(g)
			i++
		}
	}
	p.Disposition, p.DispositionParams = scanDisposition(items[i:])
	return p, nil
}

func interpretLeaf(raw string, items []any) (*Part, error) {
	if len(items) < leafMinFields {
		return nil, &ParseError{
			Raw:    raw,
			Pos:    0,
			Reason: fmt.Sprintf("leaf has %d fields, need %d", len(items), leafMinFields),
		}
	}
	p := &Part{
		Type:    strings.ToLower(itemString(items[0])),
		Subtype: strings.ToLower(itemString(items[1])),
	}
	if p.Type == "" {
		return nil, &ParseError{Raw: raw, Pos: 0, Reason: "ambiguous top-level type: empty leaf type"}
	}
	if g, ok := items[2].([]any); ok {
		p.Params = pairsToMap(g)
	}
	// items[3] body id and items[4] description are not used downstream
	p.Encoding = strings.ToLower(itemString(items[5]))
	if n, err := strconv.ParseInt(itemString(items[6]), 10, 64); err == nil {
		p.Size = n
	}
	p.Disposition, p.DispositionParams = scanDisposition(items[leafMinFields:])
	return p, nil
}

// scanDisposition finds the first extension group shaped like
// ("attachment" ("filename" "a.pdf")) among trailing items. Servers differ
// on how many extension fields precede it.
func scanDisposition(items []any) (string, map[string]string) {
	for _, it := range items {
		g, ok := it.([]any)
		if !ok || len(g) == 0 {
			continue
		}
		dispType, ok := g[0].(string)
		if !ok {
			continue
		}
		var params map[string]string
		if len(g) > 1 {
			if pg, ok := g[1].([]any); ok {
				params = pairsToMap(pg)
			}
		}
		return strings.ToLower(dispType), params
	}
	return "", nil
}

func pairsToMap(items []any) map[string]string {
	if len(items) == 0 {
		return nil
	}
	m := make(map[string]string, len(items)/2)
	for i := 0; i+1 < len(items); i += 2 {
		k, ok := items[i].(string)
		if !ok {
			continue
		}
		m[strings.ToLower(k)] = itemString(items[i+1])
	}
	return m
}

func itemString(it any) string {
	if s, ok := it.(string); ok {
		return s
	}
	return "" // nilMarker and groups read as empty
}
