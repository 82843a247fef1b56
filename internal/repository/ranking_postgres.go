package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"
	"go.uber.org/zap"
)

type RankingRepository interface {
	SaveRanking(ctx context.Context, candidateID, postID string, ranking *entity.Ranking) error
	SaveOutcome(ctx context.Context, outcome entity.Outcome) error
}

type RankingPostgres struct {
	db *pgxpool.Pool
}

func NewRankingPostgres(db *pgxpool.Pool) *RankingPostgres {
	return &RankingPostgres{db: db}
}

// SaveRanking persists the final ranking tuple for a candidate
func (r *RankingPostgres) SaveRanking(ctx context.Context, candidateID, postID string, ranking *entity.Ranking) error {
	cID, err := uuid.Parse(candidateID)
	if err != nil {
		return fmt.Errorf("invalid candidate ID: %w", err)
	}
	pID, err := uuid.Parse(postID)
	if err != nil {
		return fmt.Errorf("invalid post ID: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO rankings (candidate_id, post_id, fluency, subject_knowledge, behavior, feedback)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (candidate_id, post_id) DO NOTHING`,
		pgtype.UUID{Bytes: cID, Valid: true},
		pgtype.UUID{Bytes: pID, Valid: true},
		ranking.Fluency,
		ranking.SubjectKnowledge,
		ranking.Behavior,
		ranking.Feedback,
	)
	if err != nil {
		ctxzap.Error(ctx, "failed to save ranking", zap.Error(err))
		return err
	}

	return nil
}

// SaveOutcome persists the terminal interview outcome record
func (r *RankingPostgres) SaveOutcome(ctx context.Context, outcome entity.Outcome) error {
	cID, err := uuid.Parse(outcome.CandidateID)
	if err != nil {
		return fmt.Errorf("invalid candidate ID: %w", err)
	}
	pID, err := uuid.Parse(outcome.PostID)
	if err != nil {
		return fmt.Errorf("invalid post ID: %w", err)
	}

	feedback := pgtype.Text{}
	if outcome.Feedback != nil {
		feedback = pgtype.Text{String: *outcome.Feedback, Valid: true}
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO interview_outcomes (candidate_id, post_id, stage, selected, report_to_hr, feedback)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (candidate_id, post_id) DO UPDATE
		 SET stage = EXCLUDED.stage, selected = EXCLUDED.selected,
		     report_to_hr = EXCLUDED.report_to_hr, feedback = EXCLUDED.feedback`,
		pgtype.UUID{Bytes: cID, Valid: true},
		pgtype.UUID{Bytes: pID, Valid: true},
		outcome.Stage,
		outcome.Selected,
		outcome.ReportToHR,
		feedback,
	)
	if err != nil {
		ctxzap.Error(ctx, "failed to save interview outcome", zap.Error(err))
		return err
	}

	return nil
}
