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

type PostRepository interface {
	GetPost(ctx context.Context, id string) (*entity.Post, error)
}

type PostPostgres struct {
	db *pgxpool.Pool
}

func NewPostPostgres(db *pgxpool.Pool) *PostPostgres {
	return &PostPostgres{db: db}
}

// GetPost retrieves a job posting with its interview configuration
func (r *PostPostgres) GetPost(ctx context.Context, id string) (*entity.Post, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID: %w", err)
	}

	var p entity.Post
	err = r.db.QueryRow(ctx,
		`SELECT post_id, title, level, time_limit_minutes, coverage_threshold, max_followup
		 FROM posts WHERE post_id = $1`,
		pgtype.UUID{Bytes: postID, Valid: true},
	).Scan(&postID, &p.Title, &p.Level, &p.TimeLimitMinutes, &p.CoverageThreshold, &p.MaxFollowup)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrPostNotFound
		}
		ctxzap.Error(ctx, "failed to get post", zap.Error(err))
		return nil, err
	}

	p.ID = postID.String()

	return &p, nil
}
