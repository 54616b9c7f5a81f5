package mailbox

import (
	"encoding/base64"
	"io"
	"mime"
	"mime/quotedprintable"
	"strings"
)

// DecodeHeaderValue decodes RFC 2047 encoded-words
// (=?charset?encoding?payload?=) in header-carried values such as
// filenames. Anything that fails to decode is returned as-is: a garbled
// filename is still a usable filename, a dropped attachment is not.
func DecodeHeaderValue(s string) string {
	if !strings.Contains(s, "=?") {
		return s
	}
	dec := mime.WordDecoder{}
	if out, err := dec.DecodeHeader(s); err == nil {
		return out
	}
	// Manual fallback for malformed producers (missing trailing ?=,
	// lowercase markers, unknown charsets).
	if out, ok := decodeSingleWord(s); ok {
		return out
	}
	return s
}

func decodeSingleWord(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "=?")
	trimmed = strings.TrimSuffix(trimmed, "?=")
	fields := strings.SplitN(trimmed, "?", 3)
	if len(fields) != 3 {
		return "", false
	}
	enc, payload := strings.ToUpper(fields[1]), fields[2]
	switch enc {
	case "B":
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			raw, err = base64.RawStdEncoding.DecodeString(payload)
		}
		if err != nil {
			return "", false
		}
		return string(raw), true
	case "Q":
		r := quotedprintable.NewReader(strings.NewReader(strings.ReplaceAll(payload, "_", " ")))
		raw, err := io.ReadAll(r)
		if err != nil {
			return "", false
		}
		return string(raw), true
	}
	return "", false
}
