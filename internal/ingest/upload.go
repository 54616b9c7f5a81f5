package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/internal/common"
	"github.com/billfold/invoice-ingest/internal/repository"
)

// MaxUploadBytes caps direct uploads. Mailbox attachments are bounded by
// the provider instead.
const MaxUploadBytes = 20 << 20

// UploadService is the synchronous ingestion path. One document in, one
// normalized record (or a duplicate marker) out.
type UploadService struct {
	pipeline *Service
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

func NewUploadService(pipeline *Service, profiles repository.ProfileRepository, logger *slog.Logger) *UploadService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadService{pipeline: pipeline, profiles: profiles, logger: logger}
}

// Upload validates and ingests one uploaded document.
func (s *UploadService) Upload(ctx context.Context, profileID uuid.UUID, filename string, content []byte) (*Result, error) {
	if len(content) == 0 {
		return nil, common.WrapError(common.ErrInvalidInput, "empty upload")
	}
	if len(content) > MaxUploadBytes {
		return nil, common.WrapError(common.ErrInvalidInput,
			fmt.Sprintf("upload exceeds %d bytes", MaxUploadBytes))
	}
	if !constants.IsDocumentExt(filename) {
		return nil, common.WrapError(common.ErrInvalidInput,
			fmt.Sprintf("unsupported file type %q", filename))
	}
	exists, err := s.profiles.Exists(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.WrapError(common.ErrNotFound, "profile not found")
	}

	res, err := s.pipeline.Ingest(ctx, profileID, content, filename, constants.SourceUpload)
	if err != nil {
		return nil, err
	}
	if res.Deduplicated {
		s.logger.Info("upload.duplicate", "profile_id", profileID, "filename", filename, "invoice_id", res.Invoice.ID)
	}
	return res, nil
}
