package tts

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector is the TTS connector stand-in for local development. It
// returns a tiny constant payload so the playback flow can be exercised
// without a speech service.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("empty text provided")
	}

	ctxzap.Info(ctx, "[MOCK] synthesizing speech via TTS", zap.Int("text_length", len(text)))

	return []byte("RIFF-mock-audio"), nil
}
