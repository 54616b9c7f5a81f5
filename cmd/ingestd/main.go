package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/billfold/invoice-ingest/gen/proto/ingest/v1"
	"github.com/billfold/invoice-ingest/internal/adapters"
	"github.com/billfold/invoice-ingest/internal/async"
	"github.com/billfold/invoice-ingest/internal/blobstore"
	"github.com/billfold/invoice-ingest/internal/common"
	"github.com/billfold/invoice-ingest/internal/dedup"
	"github.com/billfold/invoice-ingest/internal/detect"
	"github.com/billfold/invoice-ingest/internal/engine"
	"github.com/billfold/invoice-ingest/internal/export"
	"github.com/billfold/invoice-ingest/internal/ingest"
	"github.com/billfold/invoice-ingest/internal/mailbox"
	"github.com/billfold/invoice-ingest/internal/orchestrator"
	"github.com/billfold/invoice-ingest/internal/repository"
	"github.com/billfold/invoice-ingest/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	// Repositories
	profilesRepo := repository.NewProfileRepository(entc, logger)
	blobsRepo := repository.NewContentBlobRepository(entc, logger)
	invoicesRepo := repository.NewInvoiceRepository(entc, logger)
	jobsRepo := repository.NewIngestJobRepository(entc, logger)

	// Blob store and dedup index
	store, err := blobstore.New(cfg.Storage.BlobDir)
	if err != nil {
		logger.Error("opening blob store", "dir", cfg.Storage.BlobDir, "error", err)
		os.Exit(1)
	}
	index := dedup.NewIndex(blobsRepo, invoicesRepo, store, logger)

	// Recognition and normalization
	recognizer := engine.NewClient(engine.Config{
		BaseURL:    cfg.Engine.BaseURL,
		APIKey:     cfg.Engine.APIKey,
		Timeout:    cfg.Engine.Timeout,
		MaxRetries: cfg.Engine.MaxRetries,
		RetryBase:  cfg.Engine.RetryBase,
	}, logger)
	mapping, err := detect.LoadMapping(cfg.Adapter.MappingPath)
	if err != nil {
		logger.Error("loading type mapping", "path", cfg.Adapter.MappingPath, "error", err)
		os.Exit(1)
	}
	detector := detect.NewDetector(mapping, logger)
	registry := adapters.NewRegistry(adapters.Config{AmountEpsilon: cfg.Adapter.AmountEpsilon}, logger)

	// Pipeline and its entry points
	pipeline := ingest.NewService(index, recognizer, detector, registry, invoicesRepo, dedup.PolicySkip, logger)
	uploads := ingest.NewUploadService(pipeline, profilesRepo, logger)

	// Mailbox scanning
	mailClient := mailbox.NewClient(logger)
	extractor := mailbox.NewExtractor(logger)
	mailCfg := mailbox.Config{
		Addr:        cfg.Mailbox.Addr,
		Username:    cfg.Mailbox.Username,
		Password:    cfg.Mailbox.Password,
		DialTimeout: cfg.Mailbox.DialTimeout,
	}
	orch := orchestrator.New(jobsRepo, mailClient, extractor, mailCfg, pipeline, cfg.Scan, logger)
	queue := async.NewJobQueue(orch, logger,
		async.WithInvocationTimeout(cfg.Scan.InvocationBudget+10*time.Second))

	exporter := export.NewService(invoicesRepo, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	v1.RegisterProfilesServiceServer(grpcServer, server.NewProfileServer(profilesRepo, logger))
	v1.RegisterIngestionServiceServer(grpcServer, server.NewIngestionServer(uploads, orch, queue, jobsRepo, logger))
	v1.RegisterInvoicesServiceServer(grpcServer, server.NewInvoiceServer(invoicesRepo, logger))
	v1.RegisterExportServiceServer(grpcServer, server.NewExportServer(exporter, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	grpcServer.GracefulStop()
	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	queue.Shutdown(drainCtx)
	cancel()
	logger.Info("stopped")
}
