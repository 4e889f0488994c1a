package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gagni555/course-content-to-study-material-generator/gen/ent"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/studyguide"
	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
)

// StudyGuideRepository persists finished guides. It satisfies
// pipeline.GuideStore.
type StudyGuideRepository interface {
	Save(ctx context.Context, guide *entity.StudyGuide) error
	GetByJob(ctx context.Context, jobID uuid.UUID) (*entity.StudyGuide, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.StudyGuide, error)
}

type studyGuideRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewStudyGuideRepository(entc *ent.Client, log *slog.Logger) StudyGuideRepository {
	if log == nil {
		log = slog.Default()
	}
	return &studyGuideRepo{ent: entc, log: log}
}

func (r *studyGuideRepo) Save(ctx context.Context, guide *entity.StudyGuide) error {
	_, err := r.ent.StudyGuide.
		Create().
		SetID(guide.ID).
		SetJobID(guide.JobID).
		SetUserID(guide.UserID).
		SetTitle(guide.Title).
		SetContent(guide.Content).
		SetDetailLevel(guide.DetailLevel).
		SetQuestionCount(guide.QuestionCount).
		SetConceptCount(guide.ConceptCount).
		SetQaScore(guide.QAScore).
		SetGeneratedAt(guide.GeneratedAt).
		Save(ctx)
	if err != nil {
		r.log.Error("study guide save failed", "job_id", guide.JobID, "err", err)
		return err
	}
	r.log.Info("study guide saved", "guide_id", guide.ID, "job_id", guide.JobID,
		"questions", guide.QuestionCount, "concepts", guide.ConceptCount)
	return nil
}

func (r *studyGuideRepo) GetByJob(ctx context.Context, jobID uuid.UUID) (*entity.StudyGuide, error) {
	row, err := r.ent.StudyGuide.
		Query().
		Where(studyguide.JobID(jobID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("study guide not found")
		}
		r.log.Error("study guide get failed", "job_id", jobID, "err", err)
		return nil, err
	}
	return toEntityGuide(row), nil
}

func (r *studyGuideRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.StudyGuide, error) {
	q := r.ent.StudyGuide.
		Query().
		Where(studyguide.UserID(userID)).
		Order(ent.Desc(studyguide.FieldGeneratedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.log.Error("study guide list failed", "user_id", userID, "err", err)
		return nil, err
	}
	guides := make([]*entity.StudyGuide, 0, len(rows))
	for _, row := range rows {
		guides = append(guides, toEntityGuide(row))
	}
	return guides, nil
}

func toEntityGuide(row *ent.StudyGuide) *entity.StudyGuide {
	return &entity.StudyGuide{
		ID:            row.ID,
		JobID:         row.JobID,
		UserID:        row.UserID,
		Title:         row.Title,
		Content:       row.Content,
		DetailLevel:   row.DetailLevel,
		QuestionCount: row.QuestionCount,
		ConceptCount:  row.ConceptCount,
		QAScore:       row.QaScore,
		GeneratedAt:   row.GeneratedAt,
	}
}
