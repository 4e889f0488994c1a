package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gagni555/course-content-to-study-material-generator/constants"
	v1 "github.com/gagni555/course-content-to-study-material-generator/gen/proto/studymaterial/v1"
	"github.com/gagni555/course-content-to-study-material-generator/internal/async"
	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
	"github.com/gagni555/course-content-to-study-material-generator/internal/pipeline"
	"github.com/gagni555/course-content-to-study-material-generator/internal/repository"
)

type PipelineService struct {
	v1.UnimplementedPipelineServiceServer
	orch   *pipeline.Orchestrator
	jobs   repository.JobRepository
	queue  async.Queue
	logger *slog.Logger
}

func NewPipelineService(orch *pipeline.Orchestrator, jobs repository.JobRepository, queue async.Queue, logger *slog.Logger) *PipelineService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PipelineService{orch: orch, jobs: jobs, queue: queue, logger: logger}
}

// SubmitDocument implements v1.PipelineServiceServer
func (s *PipelineService) SubmitDocument(ctx context.Context, req *v1.SubmitDocumentRequest) (*v1.SubmitDocumentResponse, error) {
	userID, err := parseUUID(req.GetUserId(), "user_id")
	if err != nil {
		s.logger.Error("submit request has bad user_id", "user_id", req.GetUserId())
		return nil, err
	}
	ref := strings.TrimSpace(req.GetDocumentRef())
	if ref == "" {
		s.logger.Error("submit request missing document_ref", "user_id", userID)
		return nil, status.Error(codes.InvalidArgument, "document_ref is required")
	}

	job, err := s.orch.Submit(ctx, userID, ref, toPreferences(req.GetPreferences()))
	if err != nil {
		if common.IsValidationError(err) {
			return nil, status.Errorf(codes.InvalidArgument, "submit: %v", err)
		}
		s.logger.Error("submit failed", "user_id", userID, "error", err)
		return nil, status.Errorf(codes.Internal, "submit: %v", err)
	}

	if err := s.queue.Enqueue(ctx, async.Job{JobID: job.ID, SubmittedAt: time.Now()}); err != nil {
		s.logger.Error("enqueue failed", "job_id", job.ID, "error", err)
		return nil, status.Errorf(codes.Internal, "enqueue: %v", err)
	}
	s.logger.Info("document submitted", "job_id", job.ID, "user_id", userID, "format", job.Format)

	return &v1.SubmitDocumentResponse{
		JobId:  job.ID.String(),
		Format: job.Format,
		Status: string(job.Status),
	}, nil
}

// GetJobStatus implements v1.PipelineServiceServer
func (s *PipelineService) GetJobStatus(ctx context.Context, req *v1.GetJobStatusRequest) (*v1.JobStatus, error) {
	jobID, err := parseUUID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return toJobStatus(job), nil
}

// ListJobs implements v1.PipelineServiceServer
func (s *PipelineService) ListJobs(ctx context.Context, req *v1.ListJobsRequest) (*v1.ListJobsResponse, error) {
	userID, err := parseUUID(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobs.ListByUser(ctx, userID, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("list jobs failed", "user_id", userID, "error", err)
		return nil, status.Errorf(codes.Internal, "list jobs: %v", err)
	}
	resp := &v1.ListJobsResponse{Jobs: make([]*v1.JobStatus, 0, len(jobs))}
	for _, job := range jobs {
		resp.Jobs = append(resp.Jobs, toJobStatus(job))
	}
	return resp, nil
}

// CancelJob implements v1.PipelineServiceServer
func (s *PipelineService) CancelJob(ctx context.Context, req *v1.CancelJobRequest) (*v1.JobStatus, error) {
	jobID, err := parseUUID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	job, err := s.orch.Cancel(ctx, jobID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("job cancel requested", "job_id", jobID, "status", job.Status)
	return toJobStatus(job), nil
}

// ResolveReview implements v1.PipelineServiceServer
func (s *PipelineService) ResolveReview(ctx context.Context, req *v1.ResolveReviewRequest) (*v1.JobStatus, error) {
	jobID, err := parseUUID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	job, err := s.orch.ResolveReview(ctx, jobID, req.GetApprove(), req.GetNote())
	if err != nil {
		return nil, err
	}
	// an approved job that still has stages to run goes back on the queue
	if job.Status == constants.JobStatusQueued {
		if err := s.queue.Enqueue(ctx, async.Job{JobID: job.ID, SubmittedAt: time.Now()}); err != nil {
			s.logger.Error("re-enqueue after review failed", "job_id", job.ID, "error", err)
			return nil, status.Errorf(codes.Internal, "enqueue: %v", err)
		}
	}
	s.logger.Info("review resolved", "job_id", jobID, "approved", req.GetApprove(), "status", job.Status)
	return toJobStatus(job), nil
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}

func toPreferences(p *v1.Preferences) entity.Preferences {
	if p == nil {
		return entity.Preferences{}
	}
	return entity.Preferences{
		CourseName:        p.GetCourseName(),
		Topic:             p.GetTopic(),
		DifficultyLevel:   p.GetDifficultyLevel(),
		DetailLevel:       p.GetDetailLevel(),
		IncludeQuestions:  p.GetIncludeQuestions(),
		IncludeConceptMap: p.GetIncludeConceptMap(),
		IncludeFlashcards: p.GetIncludeFlashcards(),
	}
}

func toJobStatus(job *entity.Job) *v1.JobStatus {
	out := &v1.JobStatus{
		JobId:      job.ID.String(),
		Stage:      string(job.Stage),
		Status:     string(job.Status),
		Progress:   job.Progress,
		Message:    job.Message,
		ReasonCode: job.ReasonCode,
		TokensUsed: job.TokensUsed,
		SpendUsd:   job.SpendUSD,
		CreatedAt:  job.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  job.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if job.GuideID != nil {
		out.GuideId = job.GuideID.String()
	}
	if job.FinishedAt != nil {
		out.FinishedAt = job.FinishedAt.UTC().Format(time.RFC3339)
	}
	return out
}
