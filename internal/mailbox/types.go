package mailbox

import (
	"context"
	"time"
)

// FetchRecord is one message's metadata as returned by the server.
// BodyStructure is untrusted, possibly malformed text; nothing downstream
// may assume it parses.
type FetchRecord struct {
	UID           uint32
	Subject       string
	From          string
	Date          time.Time
	BodyStructure string
}

// AttachmentCandidate is a provisionally identified binary part of a
// message, not yet confirmed or persisted.
type AttachmentCandidate struct {
	SourceUID     uint32
	RawDescriptor string
	MimeType      string
	Subtype       string
	Filename      string
	DeclaredSize  int64
	Encoding      string
	// Section is the part path ("2", "1.2"); empty for candidates
	// recovered from unparseable descriptors.
	Section    string
	Confidence float32
}

// SearchCriteria narrows a mailbox scan.
type SearchCriteria struct {
	Folder  string
	Since   time.Time
	Before  time.Time
	Subject string
	// AfterUID restricts results to uids strictly greater than it;
	// this is how a resumed scan skips already processed messages.
	AfterUID uint32
}

// Config holds connection parameters for one mailbox.
type Config struct {
	Addr        string // host:port, implicit TLS
	Username    string
	Password    string
	DialTimeout time.Duration
}

// Mailbox is the transport the scanner depends on. Implementations are
// deliberately not full protocol clients; all structured
// interpretation of server output happens above this interface.
type Mailbox interface {
	Connect(ctx context.Context, cfg Config) error
	Search(ctx context.Context, criteria SearchCriteria) ([]uint32, error)
	Fetch(ctx context.Context, uids []uint32) ([]FetchRecord, error)
	FetchAttachment(ctx context.Context, cand AttachmentCandidate) ([]byte, error)
	Close() error
}
