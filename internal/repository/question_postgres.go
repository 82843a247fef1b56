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

type QuestionRepository interface {
	FetchQuestionPool(ctx context.Context, postID, level string) ([]entity.QuestionItem, error)
}

type QuestionPostgres struct {
	db *pgxpool.Pool
}

func NewQuestionPostgres(db *pgxpool.Pool) *QuestionPostgres {
	return &QuestionPostgres{db: db}
}

// FetchQuestionPool retrieves the ordered question list for a post and level
func (r *QuestionPostgres) FetchQuestionPool(ctx context.Context, postID, level string) ([]entity.QuestionItem, error) {
	pID, err := uuid.Parse(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT question, expected_answer FROM question_pool
		 WHERE post_id = $1 AND level = $2
		 ORDER BY id`,
		pgtype.UUID{Bytes: pID, Valid: true}, level,
	)
	if err != nil {
		ctxzap.Error(ctx, "failed to fetch question pool", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []entity.QuestionItem
	for rows.Next() {
		var item entity.QuestionItem
		if err := rows.Scan(&item.Question, &item.ExpectedAnswer); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
