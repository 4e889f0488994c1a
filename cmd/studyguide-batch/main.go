package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/gagni555/course-content-to-study-material-generator/constants"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent"
	"github.com/gagni555/course-content-to-study-material-generator/internal/async"
	"github.com/gagni555/course-content-to-study-material-generator/internal/budget"
	"github.com/gagni555/course-content-to-study-material-generator/internal/checkpoint"
	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
	"github.com/gagni555/course-content-to-study-material-generator/internal/confidence"
	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
	"github.com/gagni555/course-content-to-study-material-generator/internal/export"
	"github.com/gagni555/course-content-to-study-material-generator/internal/extract"
	"github.com/gagni555/course-content-to-study-material-generator/internal/llm/openai"
	"github.com/gagni555/course-content-to-study-material-generator/internal/pipeline"
	"github.com/gagni555/course-content-to-study-material-generator/internal/qa"
	repo "github.com/gagni555/course-content-to-study-material-generator/internal/repository"
	"github.com/gagni555/course-content-to-study-material-generator/internal/retry"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		dir    = flag.String("dir", "", "directory of course documents to process (required)")
		out    = flag.String("out", "", "output directory for XLSX exports (optional, defaults to --dir)")
		user   = flag.String("user", "", "user UUID to attribute jobs to (required)")
		course = flag.String("course", "", "course name for generation context")
		topic  = flag.String("topic", "", "topic hint for generation context")
		detail = flag.String("detail", "standard", "detail level: brief | standard | detailed")
	)
	flag.Parse()

	// Validate required flags
	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	userID, err := uuid.Parse(*user)
	if err != nil {
		printError("Error: --user must be a valid UUID: %v\n", err)
		os.Exit(1)
	}
	if *out == "" {
		*out = *dir
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		printError("Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		printError("Error: failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	orch, ckpts, err := buildPipeline(cfg, entc, logger)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = ckpts.Close() }()

	jobsRepo := repo.NewJobRepository(entc, logger)
	guidesRepo := repo.NewStudyGuideRepository(entc, logger)
	exporter := export.NewService(guidesRepo, logger)

	prefs := entity.Preferences{
		CourseName:        *course,
		Topic:             *topic,
		DetailLevel:       *detail,
		IncludeQuestions:  true,
		IncludeConceptMap: true,
		IncludeFlashcards: true,
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		printError("Error: failed to read --dir: %v\n", err)
		os.Exit(1)
	}

	var submitted, completed, skipped int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name()), "."))
		if constants.MapExtToFormat(ext) == "" {
			skipped++
			continue
		}
		path := filepath.Join(*dir, entry.Name())

		job, err := orch.Submit(ctx, userID, path, prefs)
		if err != nil {
			logger.Error("submission rejected", "file", entry.Name(), "error", err)
			skipped++
			continue
		}
		submitted++

		// Drive the job synchronously; batch mode has no worker pool.
		if err := orch.Run(ctx, job.ID); err != nil {
			logger.Error("job run failed", "file", entry.Name(), "job_id", job.ID, "error", err)
		}

		final, err := jobsRepo.Get(ctx, job.ID)
		if err != nil {
			logger.Error("failed to reload job", "job_id", job.ID, "error", err)
			continue
		}
		switch final.Status {
		case constants.JobStatusCompleted:
			data, name, err := exporter.ExportStudyGuideXLSX(ctx, job.ID)
			if err != nil {
				logger.Error("export failed", "job_id", job.ID, "error", err)
				continue
			}
			target := filepath.Join(*out, name)
			if err := os.WriteFile(target, data, 0o644); err != nil {
				logger.Error("failed to write export", "path", target, "error", err)
				continue
			}
			completed++
			fmt.Printf("%s -> %s (tokens=%d spend=$%.4f)\n", entry.Name(), target, final.TokensUsed, final.SpendUSD)
		case constants.JobStatusAwaitingReview:
			fmt.Printf("%s -> awaiting review (%s): %s\n", entry.Name(), final.ReasonCode, final.Message)
		default:
			fmt.Printf("%s -> %s: %s\n", entry.Name(), final.Status, final.Message)
		}
	}

	fmt.Printf("done: submitted=%d completed=%d skipped=%d\n", submitted, completed, skipped)
	if completed < submitted {
		os.Exit(1)
	}
}

func buildPipeline(cfg *common.Config, entc *ent.Client, logger *slog.Logger) (*pipeline.Orchestrator, *checkpoint.SQLiteStore, error) {
	jobsRepo := repo.NewJobRepository(entc, logger)
	guidesRepo := repo.NewStudyGuideRepository(entc, logger)
	budgetRepo := repo.NewBudgetSnapshotRepository(entc, logger)

	ckpts, err := checkpoint.NewSQLiteStore(cfg.Checkpoint.Path, logger,
		checkpoint.WithTTL(cfg.Checkpoint.TTL),
		checkpoint.WithAuditRetention(cfg.Checkpoint.AuditRetain),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open checkpoint store: %w", err)
	}

	parser := extract.NewParser(cfg.Parser, extract.NewExecRunner(), logger)
	gate := async.NewGate(cfg.Pipeline.MaxExternalCalls)
	llmClient := openai.NewClient(openai.Config{
		Model:       cfg.LLM.PrimaryModel,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		Gate:        gate,
	}, logger)

	guard := budget.NewGuard(cfg.Budget, logger).
		WithRecorder(func(snap budget.Snapshot) {
			if err := budgetRepo.Upsert(context.Background(), snap); err != nil {
				logger.Error("budget.snapshot.persist_failed", "error", err, "user_id", snap.UserID)
			}
		})

	retrier := retry.NewController(retry.Policy{
		TransientAttempts:  cfg.Pipeline.TransientAttempts,
		TransientDelay:     cfg.Pipeline.TransientDelay,
		RateLimitAttempts:  cfg.Pipeline.RateLimitAttempts,
		RateLimitBaseDelay: cfg.Pipeline.RateLimitBaseDelay,
		RateLimitMaxDelay:  cfg.Pipeline.RateLimitMaxDelay,
	})
	eval := confidence.NewEvaluator(cfg.Pipeline.AcceptThresholds, cfg.Pipeline.RejectThresholds, logger)

	executors := []pipeline.StageExecutor{
		pipeline.NewIngestionExecutor(parser, logger),
		pipeline.NewAnalysisExecutor(llmClient, logger),
		pipeline.NewGenerationExecutor(llmClient, guard, retrier, cfg.LLM, logger),
		pipeline.NewQAExecutor(qa.NewScorer(qa.Config{}, logger)),
	}

	orch := pipeline.NewOrchestrator(jobsRepo, guidesRepo, ckpts, eval, retrier, executors, logger,
		pipeline.WithReviewRescore(cfg.Pipeline.ReviewRescore),
	)
	return orch, ckpts, nil
}
