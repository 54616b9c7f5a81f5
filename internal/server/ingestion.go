package server

import (
	"context"
	"errors"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/billfold/invoice-ingest/gen/proto/ingest/v1"
	"github.com/billfold/invoice-ingest/internal/async"
	"github.com/billfold/invoice-ingest/internal/common"
	"github.com/billfold/invoice-ingest/internal/ingest"
	"github.com/billfold/invoice-ingest/internal/orchestrator"
	"github.com/billfold/invoice-ingest/internal/repository"
)

type IngestionServer struct {
	v1.UnimplementedIngestionServiceServer
	uploads *ingest.UploadService
	orch    *orchestrator.Orchestrator
	queue   async.Queue
	jobs    repository.IngestJobRepository
	logger  *slog.Logger
}

func NewIngestionServer(
	uploads *ingest.UploadService,
	orch *orchestrator.Orchestrator,
	queue async.Queue,
	jobs repository.IngestJobRepository,
	logger *slog.Logger,
) *IngestionServer {
	return &IngestionServer{
		uploads: uploads,
		orch:    orch,
		queue:   queue,
		jobs:    jobs,
		logger:  logger,
	}
}

// UploadDocument runs the synchronous ingestion path: the response
// carries either the new record or the duplicate it collapsed onto.
func (s *IngestionServer) UploadDocument(ctx context.Context, req *v1.UploadDocumentRequest) (*v1.UploadDocumentResponse, error) {
	profileID, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}
	res, err := s.uploads.Upload(ctx, profileID, req.GetFilename(), req.GetContent())
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidInput):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, common.ErrNotFound):
			return nil, status.Error(codes.NotFound, err.Error())
		default:
			s.logger.Error("upload failed", "profile_id", profileID, "filename", req.GetFilename(), "error", err)
			return nil, status.Error(codes.Internal, "upload failed")
		}
	}
	return &v1.UploadDocumentResponse{
		Invoice:      toPBInvoice(res.Invoice),
		Deduplicated: res.Deduplicated,
	}, nil
}

// StartScanJob creates a job and enqueues its first invocation.
func (s *IngestionServer) StartScanJob(ctx context.Context, req *v1.StartScanJobRequest) (*v1.StartScanJobResponse, error) {
	profileID, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}
	job, err := s.orch.StartJob(ctx, profileID, strings.TrimSpace(req.GetFolder()), strings.TrimSpace(req.GetCriteria()))
	if err != nil {
		s.logger.Error("start scan job failed", "profile_id", profileID, "error", err)
		return nil, status.Error(codes.Internal, "start scan job failed")
	}
	if err := s.queue.Enqueue(ctx, async.Invocation{JobID: job.ID}); err != nil {
		s.logger.Error("enqueue scan job failed", "job_id", job.ID, "error", err)
	}
	return &v1.StartScanJobResponse{JobId: job.ID.String(), Phase: string(job.Phase)}, nil
}

func (s *IngestionServer) GetJobStatus(ctx context.Context, req *v1.GetJobStatusRequest) (*v1.GetJobStatusResponse, error) {
	jobID, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "job not found")
		}
		s.logger.Error("get job status failed", "job_id", jobID, "error", err)
		return nil, status.Error(codes.Internal, "get job status failed")
	}
	return toPBJobStatus(job), nil
}

func (s *IngestionServer) CancelJob(ctx context.Context, req *v1.CancelJobRequest) (*v1.CancelJobResponse, error) {
	jobID, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	job, err := s.orch.Cancel(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "job not found")
		}
		s.logger.Error("cancel job failed", "job_id", jobID, "error", err)
		return nil, status.Error(codes.Internal, "cancel job failed")
	}
	return &v1.CancelJobResponse{JobId: job.ID.String(), Phase: string(job.Phase)}, nil
}

func parseProfileID(raw string) (uuid.UUID, error) {
	pid := strings.TrimSpace(raw)
	if pid == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile_id is required")
	}
	id, err := uuid.Parse(pid)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}
	return id, nil
}

func parseJobID(raw string) (uuid.UUID, error) {
	jid := strings.TrimSpace(raw)
	if jid == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "job_id is required")
	}
	id, err := uuid.Parse(jid)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	return id, nil
}
