package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/config"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/integration/common"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/interview"
	pkghttp "github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/pkg/http"
	"go.uber.org/zap"
)

// Stage personas tuned on the generation service side.
const (
	personaWelcome      = "welcome"
	personaIntroduction = "introduction"
	personaTransition   = "question-transition"
	personaComparison   = "comparison"
	personaGeneral      = "general"
)

type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Generate produces text for the given interview stage, bounded by the
// stage's token budget.
func (c *Connector) Generate(ctx context.Context, stage interview.Stage, prompt string) (string, error) {
	persona, maxTokens := c.stageParams(stage)

	ctxzap.Info(ctx, "generating text via LLM service",
		zap.String("stage", string(stage)),
		zap.String("persona", persona),
		zap.Int("max_tokens", maxTokens),
	)

	req := &entity.LLMGenerateRequest{
		Persona:   persona,
		Prompt:    prompt,
		MaxTokens: maxTokens,
	}

	var resp entity.LLMGenerateResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, c.config.GenerateEndpoint, req, &resp); err != nil {
		return "", fmt.Errorf("generate text: %w", err)
	}

	if resp.Text == "" {
		return "", fmt.Errorf("invalid generation response: empty text field")
	}

	ctxzap.Info(ctx, "text generated successfully", zap.Int("text_length", len(resp.Text)))

	return resp.Text, nil
}

func (c *Connector) stageParams(stage interview.Stage) (string, int) {
	limits := c.config.TokenLimits

	switch stage {
	case interview.StageWelcome:
		return personaWelcome, limits.Welcome
	case interview.StageIntroduction:
		return personaIntroduction, limits.Introduction
	case interview.StageStart:
		return personaTransition, limits.Transition
	case interview.StageCompare, interview.StageFollowupCompare:
		return personaComparison, limits.Comparison
	default:
		return personaGeneral, limits.General
	}
}
