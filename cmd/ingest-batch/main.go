package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/billfold/invoice-ingest/gen/ent"
	"github.com/billfold/invoice-ingest/internal/adapters"
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
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		profile  = flag.String("profile", "Local Batch", "profile name to scan under")
		folder   = flag.String("folder", "", "mailbox folder (defaults to configured folder)")
		criteria = flag.String("criteria", "", "subject keyword filter")
		out      = flag.String("out", "", "output XLSX file path (optional)")
		fromStr  = flag.String("from", "", "export from date YYYY-MM-DD")
		toStr    = flag.String("to", "", "export to date YYYY-MM-DD")
		purge    = flag.Bool("purge", false, "hard-delete records past the retention window before scanning")
	)
	flag.Parse()

	var from, to *time.Time
	if *fromStr != "" {
		parsed, err := time.Parse("2006-01-02", *fromStr)
		if err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &parsed
	}
	if *toStr != "" {
		parsed, err := time.Parse("2006-01-02", *toStr)
		if err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		to = &parsed
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if *inmem {
		entc, err = repository.OpenInMemory(ctx, logger)
	} else {
		entc, pool, err = repository.Open(ctx, repository.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
	}
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	// Wire repositories
	profilesRepo := repository.NewProfileRepository(entc, logger)
	blobsRepo := repository.NewContentBlobRepository(entc, logger)
	invoicesRepo := repository.NewInvoiceRepository(entc, logger)
	jobsRepo := repository.NewIngestJobRepository(entc, logger)

	// Find or create the batch profile
	prof, err := findProfile(ctx, profilesRepo, *profile)
	if err != nil {
		logger.Error("failed to get or create profile", "name", *profile, "error", err)
		os.Exit(1)
	}
	logger.Info("using profile", "id", prof.ID, "name", prof.Name)

	// Retention purge
	if *purge {
		cutoff := time.Now().UTC().Add(-cfg.Storage.RetentionTTL)
		blobIDs, err := invoicesRepo.PurgeExpired(ctx, cutoff)
		if err != nil {
			logger.Error("retention purge failed", "error", err)
			os.Exit(1)
		}
		deleted := 0
		if len(blobIDs) > 0 {
			if deleted, err = blobsRepo.DeleteByIDs(ctx, blobIDs); err != nil {
				logger.Error("purging blobs failed", "error", err)
				os.Exit(1)
			}
		}
		logger.Info("retention purge complete", "invoices", len(blobIDs), "blobs", deleted, "cutoff", cutoff)
	}

	// Wire the pipeline
	store, err := blobstore.New(cfg.Storage.BlobDir)
	if err != nil {
		logger.Error("failed to open blob store", "dir", cfg.Storage.BlobDir, "error", err)
		os.Exit(1)
	}
	index := dedup.NewIndex(blobsRepo, invoicesRepo, store, logger)
	recognizer := engine.NewClient(engine.Config{
		BaseURL:    cfg.Engine.BaseURL,
		APIKey:     cfg.Engine.APIKey,
		Timeout:    cfg.Engine.Timeout,
		MaxRetries: cfg.Engine.MaxRetries,
		RetryBase:  cfg.Engine.RetryBase,
	}, logger)
	mapping, err := detect.LoadMapping(cfg.Adapter.MappingPath)
	if err != nil {
		logger.Error("failed to load type mapping", "path", cfg.Adapter.MappingPath, "error", err)
		os.Exit(1)
	}
	detector := detect.NewDetector(mapping, logger)
	registry := adapters.NewRegistry(adapters.Config{AmountEpsilon: cfg.Adapter.AmountEpsilon}, logger)
	pipeline := ingest.NewService(index, recognizer, detector, registry, invoicesRepo, dedup.PolicySkip, logger)

	mailCfg := mailbox.Config{
		Addr:        cfg.Mailbox.Addr,
		Username:    cfg.Mailbox.Username,
		Password:    cfg.Mailbox.Password,
		DialTimeout: cfg.Mailbox.DialTimeout,
	}
	orch := orchestrator.New(jobsRepo, mailbox.NewClient(logger), mailbox.NewExtractor(logger), mailCfg, pipeline, cfg.Scan, logger)

	scanFolder := *folder
	if scanFolder == "" {
		scanFolder = cfg.Mailbox.Folder
	}

	// Start the job and drive it to a terminal phase, one time-boxed
	// invocation at a time. All progress is persisted, so an interrupted
	// run resumes from the job row on the next start.
	job, err := orch.StartJob(ctx, prof.ID, scanFolder, *criteria)
	if err != nil {
		logger.Error("failed to start scan job", "error", err)
		os.Exit(1)
	}
	logger.Info("scan job started", "job_id", job.ID, "folder", scanFolder, "criteria", *criteria)

	jobID := job.ID
	for !job.Phase.Terminal() {
		next, err := orch.RunInvocation(ctx, jobID)
		if err != nil {
			logger.Error("invocation failed, retrying", "job_id", jobID, "error", err)
			time.Sleep(5 * time.Second)
			continue
		}
		job = next
		logger.Info("invocation complete",
			"job_id", job.ID,
			"phase", job.Phase,
			"scanned", job.Counters.Scanned,
			"matched", job.Counters.Matched,
			"extracted", job.Counters.Extracted,
			"duplicates", job.Counters.Duplicates,
			"failed", job.Counters.Failed)
	}

	for _, ie := range job.ErrorLog {
		logger.Warn("item failed", "item", ie.Item, "reason", ie.Reason)
	}

	// Export to XLSX
	if *out != "" {
		exporter := export.NewService(invoicesRepo, logger)
		xlsxBytes, err := exporter.ExportInvoicesXLSX(ctx, prof.ID, "", from, to)
		if err != nil {
			logger.Error("failed to export invoices", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
			logger.Error("failed to write output file", "error", err)
			os.Exit(1)
		}
		logger.Info("export written", "output_file", *out)
	}

	fmt.Printf("Scan complete!\n")
	fmt.Printf("- Phase: %s\n", job.Phase)
	fmt.Printf("- Scanned: %d\n", job.Counters.Scanned)
	fmt.Printf("- Matched: %d\n", job.Counters.Matched)
	fmt.Printf("- Extracted: %d\n", job.Counters.Extracted)
	fmt.Printf("- Duplicates: %d\n", job.Counters.Duplicates)
	fmt.Printf("- Failed: %d\n", job.Counters.Failed)
	if *out != "" {
		fmt.Printf("- Output: %s\n", *out)
	}
}

func findProfile(ctx context.Context, profiles repository.ProfileRepository, name string) (*ent.Profile, error) {
	plist, err := profiles.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range plist {
		if p.Name == name {
			return p, nil
		}
	}
	return profiles.CreateProfile(ctx, name)
}
