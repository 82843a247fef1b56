package interview

import (
	"context"

	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"
)

// Generator produces bounded-length text for a stage persona.
type Generator interface {
	Generate(ctx context.Context, stage Stage, prompt string) (string, error)
}

// Synthesizer turns interviewer text into playable audio. A synthesis
// failure must not abort the interview; the Orchestrator continues without
// audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Store is the persistence collaborator consumed by the Orchestrator.
type Store interface {
	SaveConversation(ctx context.Context, candidateID, postID string, entries map[string]string) error
	SaveRanking(ctx context.Context, candidateID, postID string, ranking *entity.Ranking) error
	SaveOutcome(ctx context.Context, outcome entity.Outcome) error
}
