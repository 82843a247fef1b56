package llm

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/interview"
	"go.uber.org/zap"
)

// MockConnector is the LLM connector stand-in for local development.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Generate(ctx context.Context, stage interview.Stage, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating text via LLM", zap.String("stage", string(stage)))

	switch stage {
	case interview.StageWelcome:
		return "Welcome to the interview. Please introduce yourself.", nil
	case interview.StageIntroduction:
		return "Thank you, that is a great introduction.", nil
	case interview.StageStart:
		return "Let us begin with the technical questions.", nil
	case interview.StageCompare, interview.StageFollowupCompare:
		return "Good attempt, you covered most of the key points. Coverage=80", nil
	case interview.StageFollowup:
		return "Can you explain the same concept with a simpler example?", nil
	case interview.StageInterviewEnd:
		return "Thank you for your time. We will share the results soon.", nil
	case interview.StageSummary:
		return "Lan=8 Sub=7 Beh=9 Sum=Confident communicator with solid fundamentals.", nil
	default:
		return "", fmt.Errorf("mock has no response for stage %s", stage)
	}
}
