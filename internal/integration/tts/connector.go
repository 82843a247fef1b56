package tts

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/config"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/integration/common"
	pkghttp "github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/pkg/http"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.TTSConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.TTSConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Synthesize turns interviewer text into playable audio bytes.
func (c *Connector) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("empty text provided")
	}

	ctxzap.Info(ctx, "synthesizing speech via TTS service", zap.Int("text_length", len(text)))

	req := &entity.TTSSynthesizeRequest{Text: text}

	var resp entity.TTSSynthesizeResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, c.config.SynthesizeEndpoint, req, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrSynthesisFailed, err)
	}

	audio, err := base64.StdEncoding.DecodeString(resp.Audio)
	if err != nil {
		return nil, fmt.Errorf("decode audio payload: %w", err)
	}

	if len(audio) == 0 {
		return nil, fmt.Errorf("invalid synthesis response: empty audio")
	}

	ctxzap.Info(ctx, "speech synthesized successfully", zap.Int("audio_bytes", len(audio)))

	return audio, nil
}
