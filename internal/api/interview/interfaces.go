package interview

import (
	"context"

	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"
)

type InterviewUsecase interface {
	StartInterview(ctx context.Context, candidateID string) (*entity.StepResponse, error)
	Advance(ctx context.Context, sessionID string, req *entity.AdvanceRequest) (*entity.StepResponse, error)
	SubmitAudioAnswer(ctx context.Context, sessionID, stageTag string, audio []byte, filename string) (*entity.StepResponse, error)
	PlaybackComplete(ctx context.Context, sessionID string) (*entity.SessionResponse, error)
	EndInterview(ctx context.Context, sessionID string) (*entity.StepResponse, error)
	GetSession(ctx context.Context, sessionID string) (*entity.SessionResponse, error)
	GetTranscript(ctx context.Context, sessionID string) (*entity.TranscriptResponse, error)
}
