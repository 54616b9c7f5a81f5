package mailbox

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/billfold/invoice-ingest/constants"
)

const (
	confidenceStructured = 0.9
	confidenceRecovered  = 0.4
)

// Diagnostic records why a message yielded no candidates. It lands in the
// job's error log, never in an error return.
type Diagnostic struct {
	UID    uint32
	Reason string
}

// Extractor turns raw fetch records into attachment candidates. It never
// returns an error: the structured parser is best-effort, the recovery
// patterns are best-effort, and an empty result with a diagnostic is the
// final fallback.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// ExtractAttachments applies the fallback chain: structured parse, then
// pattern recovery over the parser's failure text, then empty + diagnostic.
// It has no side effects and is safe to retry.
func (e *Extractor) ExtractAttachments(rec FetchRecord) ([]AttachmentCandidate, *Diagnostic) {
	part, err := ParseBodyStructure(rec.BodyStructure)
	if err == nil {
		cands := collectCandidates(rec.UID, part, "")
		if len(cands) == 0 {
			return nil, nil // parsed fine, message simply has no documents
		}
		return cands, nil
	}

	var pe *ParseError
	raw := rec.BodyStructure
	if errors.As(err, &pe) {
		raw = pe.Raw
	}
	e.logger.Warn("mailbox.extract.parse_failed",
		"uid", rec.UID, "error", err, "raw_bytes", len(raw))

	if cands := recoverCandidates(rec.UID, raw); len(cands) > 0 {
		e.logger.Info("mailbox.extract.recovered",
			"uid", rec.UID, "candidates", len(cands))
		return cands, nil
	}

	return nil, &Diagnostic{
		UID:    rec.UID,
		Reason: fmt.Sprintf("unparseable body structure: %v", err),
	}
}

// collectCandidates walks a parsed tree. A node is a candidate if its
// media type is a known binary document kind, its disposition says
// attachment, or a name/filename parameter carries a document extension.
func collectCandidates(uid uint32, p *Part, path string) []AttachmentCandidate {
	var out []AttachmentCandidate
	if len(p.Children) > 0 {
		for i, c := range p.Children {
			childPath := strconv.Itoa(i + 1)
			if path != "" {
				childPath = path + "." + childPath
			}
			out = append(out, collectCandidates(uid, c, childPath)...)
		}
		return out
	}

	filename := partFilename(p)
	match := constants.IsBinaryDocumentMedia(p.Type, p.Subtype) ||
		p.Disposition == "attachment" ||
		(filename != "" && constants.IsDocumentExt(filename))
	if !match {
		return nil
	}
	section := path
	if section == "" {
		section = "1"
	}
	return []AttachmentCandidate{{
		SourceUID:    uid,
		MimeType:     p.Type,
		Subtype:      p.Subtype,
		Filename:     filename,
		DeclaredSize: p.Size,
		Encoding:     p.Encoding,
		Section:      section,
		Confidence:   confidenceStructured,
	}}
}

func partFilename(p *Part) string {
	for _, m := range []map[string]string{p.DispositionParams, p.Params} {
		for _, key := range []string{"filename", "name"} {
			if v, ok := m[key]; ok && v != "" {
				return DecodeHeaderValue(v)
			}
		}
	}
	return ""
}

// recoveryPattern maps a shape seen in broken descriptor text to the
// capture group holding the filename. Ordered: first match wins per
// occurrence, duplicates collapse by filename.
type recoveryPattern struct {
	re       *regexp.Regexp
	grp      int
	confBump float32
	// requireExt gates weaker patterns on a known document extension;
	// an explicit attachment disposition is trusted as-is.
	requireExt bool
}

var recoveryPatterns = []recoveryPattern{
	// ("attachment" ("filename" "invoice.pdf"))
	{re: regexp.MustCompile(`(?i)"attachment"\s*\(\s*"filename"\s+"((?:[^"\\]|\\.)+)"`), grp: 1},
	// ("ATTACHMENT" ("FILENAME" =?utf-8?B?...?=)) with unquoted encoded word
	{re: regexp.MustCompile(`(?i)"filename"\s+(=\?[^?\s]+\?[bq]\?[^?\s]+\?=)`), grp: 1},
	// "name" "xx.pdf" inside a parameter list
	{re: regexp.MustCompile(`(?i)"name"\s+"((?:[^"\\]|\\.)+)"`), grp: 1, confBump: -0.1, requireExt: true},
	// name==?charset?B?payload?= with no quoting at all
	{re: regexp.MustCompile(`(?i)\bname\s*=\s*(=\?[^?\s]+\?[bq]\?[^?\s]+\?=)`), grp: 1, confBump: -0.1, requireExt: true},
}

// recoverCandidates runs the ordered pattern table over the offending raw
// text and synthesizes low-confidence, sectionless candidates.
func recoverCandidates(uid uint32, raw string) []AttachmentCandidate {
	seen := make(map[string]struct{})
	var out []AttachmentCandidate
	for _, rp := range recoveryPatterns {
		for _, m := range rp.re.FindAllStringSubmatch(raw, -1) {
			name := DecodeHeaderValue(unescapeQuoted(m[rp.grp]))
			if name == "" {
				continue
			}
			if rp.requireExt && !constants.IsDocumentExt(name) {
				continue
			}
			key := strings.ToLower(name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, AttachmentCandidate{
				SourceUID:     uid,
				RawDescriptor: raw,
				Filename:      name,
				Confidence:    confidenceRecovered + rp.confBump,
			})
		}
	}
	return out
}

func unescapeQuoted(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
