package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/gagni555/course-content-to-study-material-generator/gen/proto/studymaterial/v1"
	"github.com/gagni555/course-content-to-study-material-generator/internal/async"
	"github.com/gagni555/course-content-to-study-material-generator/internal/budget"
	"github.com/gagni555/course-content-to-study-material-generator/internal/checkpoint"
	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
	"github.com/gagni555/course-content-to-study-material-generator/internal/confidence"
	"github.com/gagni555/course-content-to-study-material-generator/internal/export"
	"github.com/gagni555/course-content-to-study-material-generator/internal/extract"
	"github.com/gagni555/course-content-to-study-material-generator/internal/llm/openai"
	"github.com/gagni555/course-content-to-study-material-generator/internal/notify"
	"github.com/gagni555/course-content-to-study-material-generator/internal/pipeline"
	"github.com/gagni555/course-content-to-study-material-generator/internal/qa"
	repo "github.com/gagni555/course-content-to-study-material-generator/internal/repository"
	"github.com/gagni555/course-content-to-study-material-generator/internal/retry"
	svc "github.com/gagni555/course-content-to-study-material-generator/internal/server"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time and level attributes, keep message and other variables
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	// Ping DB to ensure connectivity
	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	jobsRepo := repo.NewJobRepository(entc, logger)
	guidesRepo := repo.NewStudyGuideRepository(entc, logger)
	budgetRepo := repo.NewBudgetSnapshotRepository(entc, logger)

	ckpts, err := checkpoint.NewSQLiteStore(cfg.Checkpoint.Path, logger,
		checkpoint.WithTTL(cfg.Checkpoint.TTL),
		checkpoint.WithAuditRetention(cfg.Checkpoint.AuditRetain),
	)
	if err != nil {
		logger.Error("failed to open checkpoint store", "error", err, "path", cfg.Checkpoint.Path)
		os.Exit(1)
	}
	defer func() {
		if err := ckpts.Close(); err != nil {
			logger.Error("failed to close checkpoint store", "error", err)
		}
	}()

	// Document text pipeline
	parser := extract.NewParser(cfg.Parser, extract.NewExecRunner(), logger)

	// LLM pipeline: one shared gate bounds in-flight provider calls across
	// all workers.
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

	var notifier notify.Notifier = notify.NewNopNotifier(logger)
	if cfg.Notifier.WebhookURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.Notifier.WebhookURL, cfg.Notifier.Timeout, logger)
	}

	orch := pipeline.NewOrchestrator(jobsRepo, guidesRepo, ckpts, eval, retrier, executors, logger,
		pipeline.WithNotifier(notifier),
		pipeline.WithReviewRescore(cfg.Pipeline.ReviewRescore),
	)

	queue := async.NewWorkerQueue(orch.Run, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithJobTimeout(cfg.Pipeline.StageTimeout*4),
	)

	// Resume jobs interrupted by the previous run before accepting new work.
	resumable, err := orch.Recover(ctx)
	if err != nil {
		logger.Error("failed to recover interrupted jobs", "error", err)
		os.Exit(1)
	}
	for _, job := range resumable {
		if err := queue.Enqueue(ctx, async.Job{JobID: job.ID, SubmittedAt: time.Now()}); err != nil {
			logger.Error("failed to enqueue recovered job", "error", err, "job_id", job.ID)
		}
	}

	// gRPC server
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	pipelineService := svc.NewPipelineService(orch, jobsRepo, queue, logger)
	v1.RegisterPipelineServiceServer(grpcServer, pipelineService)
	exporter := export.NewService(guidesRepo, logger)
	guidesService := svc.NewGuidesService(jobsRepo, guidesRepo, exporter, logger)
	v1.RegisterGuidesServiceServer(grpcServer, guidesService)

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	// Set the service as serving (empty string means overall server health)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("studyguided listening", "addr", addr, "workers", cfg.Pipeline.Workers)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
