package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ConversationRepository interface {
	SaveConversation(ctx context.Context, candidateID, postID string, entries map[string]string) error
}

type ConversationPostgres struct {
	db *pgxpool.Pool
}

func NewConversationPostgres(db *pgxpool.Pool) *ConversationPostgres {
	return &ConversationPostgres{db: db}
}

// SaveConversation flushes the full transcript map in one batch
func (r *ConversationPostgres) SaveConversation(ctx context.Context, candidateID, postID string, entries map[string]string) error {
	cID, err := uuid.Parse(candidateID)
	if err != nil {
		return fmt.Errorf("invalid candidate ID: %w", err)
	}
	pID, err := uuid.Parse(postID)
	if err != nil {
		return fmt.Errorf("invalid post ID: %w", err)
	}

	rows := make([][]interface{}, 0, len(entries))
	for label, content := range entries {
		rows = append(rows, []interface{}{
			pgtype.UUID{Bytes: cID, Valid: true},
			pgtype.UUID{Bytes: pID, Valid: true},
			label,
			content,
		})
	}

	_, err = r.db.CopyFrom(
		ctx,
		pgx.Identifier{"conversations"},
		[]string{"candidate_id", "post_id", "label", "content"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		ctxzap.Error(ctx, "failed to save conversation", zap.Error(err))
		return err
	}

	return nil
}
