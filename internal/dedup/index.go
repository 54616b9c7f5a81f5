package dedup

import (
	"bytes"
	"context"
	"crypto/sha256"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/internal/entity"
)

// Policy decides what happens when new content matches a soft-deleted
// record. The default is Skip; nothing ever silently overwrites.
type Policy string

const (
	PolicySkip    Policy = "SKIP"
	PolicyMerge   Policy = "MERGE"
	PolicyReplace Policy = "REPLACE"
)

// BlobRepository is the storage-layer slice the index needs. UpsertByHash
// must rely on the (profile_id, hash) uniqueness constraint: a losing
// racer gets the existing row back with existed=true, not an error.
type BlobRepository interface {
	UpsertByHash(ctx context.Context, profileID uuid.UUID, hash []byte, size int64, storageRef string) (*entity.ContentBlob, bool, error)
}

// InvoiceFinder looks up the canonical record for a content hash.
// Soft-deleted records are included; a nil invoice means no match.
type InvoiceFinder interface {
	FindByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*entity.Invoice, error)
}

// BlobSaver persists raw bytes and yields a storage ref.
type BlobSaver interface {
	Save(hash []byte, content []byte) (string, error)
}

// ComputeIdentity hashes full byte content. Identity is the bytes alone:
// filename and source never participate, so byte-identical documents
// collapse regardless of where they came from.
func ComputeIdentity(r io.Reader) ([]byte, int64, error) {
	h := sha256.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return nil, 0, err
	}
	return h.Sum(nil), n, nil
}

// Outcome reports what Register found or created.
type Outcome struct {
	Blob *entity.ContentBlob
	// Existing is the invoice already holding this content for this
	// owner, nil if none. Deduplicated is true when it is active;
	// SoftDeleted is true when it exists but was soft-deleted, leaving
	// the policy decision to the caller.
	Existing     *entity.Invoice
	Deduplicated bool
	SoftDeleted  bool
}

// Index enforces at-most-one record per (owner, content). Scope is
// per-owner: the same bytes from two owners yield two records.
type Index struct {
	blobs    BlobRepository
	invoices InvoiceFinder
	store    BlobSaver
	logger   *slog.Logger
}

func NewIndex(blobs BlobRepository, invoices InvoiceFinder, store BlobSaver, logger *slog.Logger) *Index {
	if logger == nil {
		logger = slog.Default()
	}
	return &Index{blobs: blobs, invoices: invoices, store: store, logger: logger}
}

// Register looks the content up before anything else so already-seen
// bytes never reach the rate-limited recognition engine. New content is
// persisted to the blob store and the dedup index.
func (ix *Index) Register(ctx context.Context, profileID uuid.UUID, content []byte) (Outcome, error) {
	hash, size, err := ComputeIdentity(bytes.NewReader(content))
	if err != nil {
		return Outcome{}, err
	}

	existing, err := ix.invoices.FindByProfileAndHash(ctx, profileID, hash)
	if err != nil {
		return Outcome{}, err
	}
	if existing != nil {
		out := Outcome{Existing: existing}
		if existing.LifecycleState == constants.LifecycleSoftDeleted {
			out.SoftDeleted = true
		} else {
			out.Deduplicated = true
		}
		ix.logger.Info("dedup.hit",
			"profile_id", profileID,
			"invoice_id", existing.ID,
			"soft_deleted", out.SoftDeleted,
		)
		return out, nil
	}

	ref, err := ix.store.Save(hash, content)
	if err != nil {
		return Outcome{}, err
	}
	blob, existed, err := ix.blobs.UpsertByHash(ctx, profileID, hash, size, ref)
	if err != nil {
		return Outcome{}, err
	}
	if existed {
		// blob row without an invoice: a prior run died between blob
		// and invoice insert; extraction proceeds and heals it
		ix.logger.Warn("dedup.orphan_blob_reused", "profile_id", profileID, "blob_id", blob.ID)
	}
	return Outcome{Blob: blob}, nil
}
