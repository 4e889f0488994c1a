package repository

import (
	"context"
	"log/slog"

	"github.com/gagni555/course-content-to-study-material-generator/gen/ent"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/budgetsnapshot"
	"github.com/gagni555/course-content-to-study-material-generator/internal/budget"
)

// BudgetSnapshotRepository mirrors the in-memory budget ledger to the
// database for audit. One row per (user, day).
type BudgetSnapshotRepository interface {
	Upsert(ctx context.Context, snap budget.Snapshot) error
}

type budgetSnapshotRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewBudgetSnapshotRepository(entc *ent.Client, log *slog.Logger) BudgetSnapshotRepository {
	if log == nil {
		log = slog.Default()
	}
	return &budgetSnapshotRepo{ent: entc, log: log}
}

func (r *budgetSnapshotRepo) Upsert(ctx context.Context, snap budget.Snapshot) error {
	err := r.ent.BudgetSnapshot.
		Create().
		SetUserID(snap.UserID).
		SetDay(snap.Day).
		SetTokensUsed(snap.TokensUsed).
		SetSpendUsd(snap.SpendUSD).
		OnConflictColumns(budgetsnapshot.FieldUserID, budgetsnapshot.FieldDay).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.log.Error("budget snapshot upsert failed", "user_id", snap.UserID, "day", snap.Day, "err", err)
		return err
	}
	return nil
}
