package server

import (
	"context"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gagni555/course-content-to-study-material-generator/constants"
	v1 "github.com/gagni555/course-content-to-study-material-generator/gen/proto/studymaterial/v1"
	"github.com/gagni555/course-content-to-study-material-generator/internal/export"
	"github.com/gagni555/course-content-to-study-material-generator/internal/repository"
)

type GuidesService struct {
	v1.UnimplementedGuidesServiceServer
	jobs     repository.JobRepository
	guides   repository.StudyGuideRepository
	exporter *export.Service
	logger   *slog.Logger
}

func NewGuidesService(jobs repository.JobRepository, guides repository.StudyGuideRepository, exporter *export.Service, logger *slog.Logger) *GuidesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GuidesService{jobs: jobs, guides: guides, exporter: exporter, logger: logger}
}

// GetStudyGuide implements v1.GuidesServiceServer
func (s *GuidesService) GetStudyGuide(ctx context.Context, req *v1.GetStudyGuideRequest) (*v1.StudyGuide, error) {
	jobID, err := s.completedJobID(ctx, req.GetJobId())
	if err != nil {
		return nil, err
	}
	guide, err := s.guides.GetByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return &v1.StudyGuide{
		GuideId:       guide.ID.String(),
		JobId:         guide.JobID.String(),
		Title:         guide.Title,
		Content:       guide.Content,
		DetailLevel:   guide.DetailLevel,
		QuestionCount: int32(guide.QuestionCount),
		ConceptCount:  int32(guide.ConceptCount),
		QaScore:       guide.QAScore,
		GeneratedAt:   guide.GeneratedAt.UTC().Format(time.RFC3339),
	}, nil
}

// ExportStudyGuide implements v1.GuidesServiceServer
func (s *GuidesService) ExportStudyGuide(ctx context.Context, req *v1.ExportStudyGuideRequest) (*v1.ExportStudyGuideResponse, error) {
	jobID, err := s.completedJobID(ctx, req.GetJobId())
	if err != nil {
		return nil, err
	}
	raw, filename, err := s.exporter.ExportStudyGuideXLSX(ctx, jobID)
	if err != nil {
		s.logger.Error("export failed", "job_id", jobID, "error", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}
	return &v1.ExportStudyGuideResponse{Xlsx: raw, Filename: filename}, nil
}

// completedJobID parses the job id and rejects requests for jobs that have
// not finished yet; partial results never leave the service.
func (s *GuidesService) completedJobID(ctx context.Context, raw string) (uuid.UUID, error) {
	jobID, err := parseUUID(raw, "job_id")
	if err != nil {
		return uuid.Nil, err
	}
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return uuid.Nil, err
	}
	switch job.Status {
	case constants.JobStatusCompleted:
		return jobID, nil
	case constants.JobStatusFailed:
		return uuid.Nil, status.Errorf(codes.FailedPrecondition, "job %s failed: %s", jobID, job.Message)
	default:
		return uuid.Nil, status.Errorf(codes.FailedPrecondition, "job %s is %s; guide not ready", jobID, job.Status)
	}
}
