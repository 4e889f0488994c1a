package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gagni555/course-content-to-study-material-generator/constants"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/pipelinejob"
	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
)

// JobRepository persists pipeline jobs. It satisfies pipeline.JobStore.
type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	Get(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	Update(ctx context.Context, job *entity.Job) error
	ListActive(ctx context.Context) ([]*entity.Job, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Job, error)
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Create(ctx context.Context, job *entity.Job) error {
	prefs, err := json.Marshal(job.Preferences)
	if err != nil {
		return common.WrapError(err, "marshal preferences")
	}
	_, err = r.ent.PipelineJob.
		Create().
		SetID(job.ID).
		SetUserID(job.UserID).
		SetDocumentRef(job.DocumentRef).
		SetFormat(job.Format).
		SetStage(string(job.Stage)).
		SetStatus(string(job.Status)).
		SetProgress(job.Progress).
		SetMessage(job.Message).
		SetCreatedAt(job.CreatedAt).
		SetUpdatedAt(job.UpdatedAt).
		SetPreferences(prefs).
		Save(ctx)
	if err != nil {
		r.log.Error("job create failed", "job_id", job.ID, "err", err)
		return err
	}
	r.log.Info("job created", "job_id", job.ID, "user_id", job.UserID, "format", job.Format)
	return nil
}

func (r *jobRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	row, err := r.ent.PipelineJob.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("job not found")
		}
		r.log.Error("job get failed", "job_id", id, "err", err)
		return nil, err
	}
	return toEntityJob(row), nil
}

func (r *jobRepo) Update(ctx context.Context, job *entity.Job) error {
	upd := r.ent.PipelineJob.
		UpdateOneID(job.ID).
		SetStage(string(job.Stage)).
		SetStatus(string(job.Status)).
		SetProgress(job.Progress).
		SetMessage(job.Message).
		SetReasonCode(job.ReasonCode).
		SetTokensUsed(job.TokensUsed).
		SetSpendUsd(job.SpendUSD).
		SetUpdatedAt(job.UpdatedAt).
		SetCancelRequested(job.CancelRequested).
		SetNillableFinishedAt(job.FinishedAt).
		SetNillableLastError(job.LastError).
		SetNillableGuideID(job.GuideID)
	_, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.NotFoundError("job not found")
		}
		r.log.Error("job update failed", "job_id", job.ID, "err", err)
		return err
	}
	return nil
}

func (r *jobRepo) ListActive(ctx context.Context) ([]*entity.Job, error) {
	rows, err := r.ent.PipelineJob.
		Query().
		Where(pipelinejob.StatusIn(
			string(constants.JobStatusQueued),
			string(constants.JobStatusRunning),
			string(constants.JobStatusAwaitingReview),
		)).
		Order(ent.Asc(pipelinejob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.log.Error("job list active failed", "err", err)
		return nil, err
	}
	jobs := make([]*entity.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, toEntityJob(row))
	}
	return jobs, nil
}

func (r *jobRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Job, error) {
	q := r.ent.PipelineJob.
		Query().
		Where(pipelinejob.UserID(userID)).
		Order(ent.Desc(pipelinejob.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.log.Error("job list by user failed", "user_id", userID, "err", err)
		return nil, err
	}
	jobs := make([]*entity.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, toEntityJob(row))
	}
	return jobs, nil
}

func toEntityJob(row *ent.PipelineJob) *entity.Job {
	job := &entity.Job{
		ID:              row.ID,
		UserID:          row.UserID,
		DocumentRef:     row.DocumentRef,
		Format:          row.Format,
		Stage:           constants.Stage(row.Stage),
		Status:          constants.JobStatus(row.Status),
		Progress:        row.Progress,
		Message:         row.Message,
		ReasonCode:      row.ReasonCode,
		TokensUsed:      row.TokensUsed,
		SpendUSD:        row.SpendUsd,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		FinishedAt:      row.FinishedAt,
		LastError:       row.LastError,
		GuideID:         row.GuideID,
		CancelRequested: row.CancelRequested,
	}
	if len(row.Preferences) > 0 {
		_ = json.Unmarshal(row.Preferences, &job.Preferences)
	}
	return job
}
