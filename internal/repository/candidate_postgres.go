package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"
	"go.uber.org/zap"
)

type CandidateRepository interface {
	GetCandidate(ctx context.Context, id string) (*entity.Candidate, error)
}

type CandidatePostgres struct {
	db *pgxpool.Pool
}

func NewCandidatePostgres(db *pgxpool.Pool) *CandidatePostgres {
	return &CandidatePostgres{db: db}
}

// GetCandidate retrieves candidate info by ID
func (r *CandidatePostgres) GetCandidate(ctx context.Context, id string) (*entity.Candidate, error) {
	candidateID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid candidate ID: %w", err)
	}

	var c entity.Candidate
	var postID pgtype.UUID
	err = r.db.QueryRow(ctx,
		`SELECT candidate_id, name, post_id FROM candidates WHERE candidate_id = $1`,
		pgtype.UUID{Bytes: candidateID, Valid: true},
	).Scan(&candidateID, &c.Name, &postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrCandidateNotFound
		}
		ctxzap.Error(ctx, "failed to get candidate", zap.Error(err))
		return nil, err
	}

	c.ID = candidateID.String()
	c.PostID = uuid.UUID(postID.Bytes).String()

	return &c, nil
}
