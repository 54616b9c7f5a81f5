package mailbox

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	"github.com/billfold/invoice-ingest/internal/common"
)

// decodeTransfer reverses a part's content-transfer-encoding. Unknown
// encodings pass through untouched.
func decodeTransfer(encoding string, data []byte) ([]byte, error) {
	switch strings.ToLower(encoding) {
	case "base64":
		cleaned := bytes.Map(func(r rune) rune {
			if r == '\r' || r == '\n' || r == ' ' || r == '\t' {
				return -1
			}
			return r
		}, data)
		out := make([]byte, base64.StdEncoding.DecodedLen(len(cleaned)))
		n, err := base64.StdEncoding.Decode(out, cleaned)
		if err != nil {
			return nil, common.Permanent("decode base64 part", err)
		}
		return out[:n], nil
	case "quoted-printable":
		out, err := io.ReadAll(quotedprintable.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, common.Permanent("decode quoted-printable part", err)
		}
		return out, nil
	default:
		return data, nil
	}
}

// partBytesByFilename walks a raw message's MIME parts looking for one
// whose filename matches. Used for candidates recovered from descriptors
// that never parsed, where no section path exists.
func partBytesByFilename(raw []byte, filename string) ([]byte, error) {
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("read message: %w", err)
	}
	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return nil, fmt.Errorf("message is not multipart")
	}
	mr := multipart.NewReader(msg.Body, params["boundary"])
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("walk parts: %w", err)
		}
		name := p.FileName()
		if name == "" {
			if _, ps, err := mime.ParseMediaType(p.Header.Get("Content-Type")); err == nil {
				name = ps["name"]
			}
		}
		if !strings.EqualFold(DecodeHeaderValue(name), filename) {
			continue
		}
		data, err := io.ReadAll(p)
		if err != nil {
			return nil, fmt.Errorf("read part: %w", err)
		}
		return decodeTransfer(p.Header.Get("Content-Transfer-Encoding"), data)
	}
	return nil, fmt.Errorf("no part named %q", filename)
}
