package interview

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/patrickmn/go-cache"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/interview"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/repository"
	"go.uber.org/zap"
)

// InterviewUsecase runs interview sessions end to end. Live sessions are
// process-held in a TTL registry: a session is dropped once its outcome is
// persisted, or evicted after the time limit plus slack if abandoned.
type InterviewUsecase struct {
	candidateRepo repository.CandidateRepository
	postRepo      repository.PostRepository
	questionRepo  repository.QuestionRepository
	store         interview.Store
	generator     interview.Generator
	synthesizer   interview.Synthesizer
	recorder      Recorder
	sessions      *cache.Cache
	companyName   string
	ttlSlack      time.Duration
	logger        *zap.Logger
}

// NewUsecase creates a new interview use case
func NewUsecase(
	candidateRepo repository.CandidateRepository,
	postRepo repository.PostRepository,
	questionRepo repository.QuestionRepository,
	conversationRepo repository.ConversationRepository,
	rankingRepo repository.RankingRepository,
	generator interview.Generator,
	synthesizer interview.Synthesizer,
	recorder Recorder,
	companyName string,
	ttlSlack time.Duration,
	logger *zap.Logger,
) *InterviewUsecase {
	sessions := cache.New(cache.NoExpiration, time.Minute)
	sessions.OnEvicted(func(id string, v interface{}) {
		if orch, ok := v.(*interview.Orchestrator); ok {
			orch.Close()
		}
	})

	return &InterviewUsecase{
		candidateRepo: candidateRepo,
		postRepo:      postRepo,
		questionRepo:  questionRepo,
		store:         newCompositeStore(conversationRepo, rankingRepo),
		generator:     generator,
		synthesizer:   synthesizer,
		recorder:      recorder,
		sessions:      sessions,
		companyName:   companyName,
		ttlSlack:      ttlSlack,
		logger:        logger,
	}
}

// StartInterview explicitly initializes a session: candidate info, post
// configuration and the question pool are fetched up front so that
// initialization failures are observable before any stage executes. On
// success the welcome stage has already run and its result is returned.
func (uc *InterviewUsecase) StartInterview(ctx context.Context, candidateID string) (*entity.StepResponse, error) {
	candidate, err := uc.candidateRepo.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("fetch candidate: %w", err)
	}

	post, err := uc.postRepo.GetPost(ctx, candidate.PostID)
	if err != nil {
		return nil, fmt.Errorf("fetch post: %w", err)
	}

	items, err := uc.questionRepo.FetchQuestionPool(ctx, post.ID, post.Level)
	if err != nil {
		return nil, fmt.Errorf("fetch question pool: %w", err)
	}

	pool, err := interview.NewQuestionPool(items, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: empty question pool for post %s level %s", entity.ErrConfiguration, post.ID, post.Level)
	}

	sessionID := uuid.New().String()
	session := interview.NewSession(sessionID, candidate, post, pool)

	orch := interview.NewOrchestrator(interview.OrchestratorConfig{
		Session:           session,
		Generator:         uc.generator,
		Synthesizer:       uc.synthesizer,
		Store:             uc.store,
		CompanyName:       uc.companyName,
		CoverageThreshold: post.CoverageThreshold,
		MaxFollowup:       post.MaxFollowup,
		TimeLimitSeconds:  post.TimeLimitMinutes * 60,
		Logger:            uc.logger,
	})

	ttl := time.Duration(post.TimeLimitMinutes)*time.Minute + uc.ttlSlack
	uc.sessions.Set(sessionID, orch, ttl)

	ctxzap.Info(ctx, "interview session initialized",
		zap.String("session_id", sessionID),
		zap.String("candidate_id", candidate.ID),
		zap.String("post_id", post.ID),
		zap.Int("pool_size", pool.Remaining()),
		zap.Int("time_limit_minutes", post.TimeLimitMinutes),
	)

	res, err := orch.Advance(ctx, interview.StageWelcome, "", "")
	if err != nil {
		uc.dropSession(sessionID)
		return nil, err
	}

	return uc.toStepResponse(sessionID, orch, res, nil), nil
}

// Advance drives a session one stage forward with the candidate's text.
func (uc *InterviewUsecase) Advance(ctx context.Context, sessionID string, req *entity.AdvanceRequest) (*entity.StepResponse, error) {
	orch, err := uc.getOrchestrator(sessionID)
	if err != nil {
		return nil, err
	}

	stage, err := interview.ParseStage(req.Stage)
	if err != nil {
		return nil, err
	}

	res, err := orch.Advance(ctx, stage, req.Text, req.Question)
	if res == nil {
		return nil, err
	}

	if res.Done {
		// Outcome persisted (or persistence surfaced below); process-held
		// state is dropped either way.
		uc.dropSession(sessionID)
	}

	return uc.toStepResponse(sessionID, orch, res, err), nil
}

// SubmitAudioAnswer transcribes a recorded answer and advances with the
// resulting text. A transcription failure blocks the stage; the caller
// re-records and retries.
func (uc *InterviewUsecase) SubmitAudioAnswer(ctx context.Context, sessionID, stageTag string, audio []byte, filename string) (*entity.StepResponse, error) {
	text, err := uc.recorder.Transcribe(ctx, audio, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrTranscriptionFailed, err)
	}

	return uc.Advance(ctx, sessionID, &entity.AdvanceRequest{Stage: stageTag, Text: text})
}

// PlaybackComplete reports that the UI finished playing the last spoken
// output, reopening the microphone where appropriate.
func (uc *InterviewUsecase) PlaybackComplete(ctx context.Context, sessionID string) (*entity.SessionResponse, error) {
	orch, err := uc.getOrchestrator(sessionID)
	if err != nil {
		return nil, err
	}

	orch.PlaybackComplete()
	snapshot := orch.Snapshot()
	return &snapshot, nil
}

// EndInterview force-ends a session on the candidate's request.
func (uc *InterviewUsecase) EndInterview(ctx context.Context, sessionID string) (*entity.StepResponse, error) {
	orch, err := uc.getOrchestrator(sessionID)
	if err != nil {
		return nil, err
	}

	res, err := orch.ForceEnd(ctx)
	if res == nil {
		return nil, err
	}

	return uc.toStepResponse(sessionID, orch, res, err), nil
}

// GetSession returns the externally visible session state.
func (uc *InterviewUsecase) GetSession(ctx context.Context, sessionID string) (*entity.SessionResponse, error) {
	orch, err := uc.getOrchestrator(sessionID)
	if err != nil {
		return nil, err
	}

	snapshot := orch.Snapshot()
	return &snapshot, nil
}

// GetTranscript returns the accumulated conversation of a session.
func (uc *InterviewUsecase) GetTranscript(ctx context.Context, sessionID string) (*entity.TranscriptResponse, error) {
	orch, err := uc.getOrchestrator(sessionID)
	if err != nil {
		return nil, err
	}

	return &entity.TranscriptResponse{
		SessionID: sessionID,
		Entries:   orch.TranscriptEntries(),
	}, nil
}

func (uc *InterviewUsecase) getOrchestrator(sessionID string) (*interview.Orchestrator, error) {
	v, found := uc.sessions.Get(sessionID)
	if !found {
		return nil, entity.ErrSessionNotFound
	}
	return v.(*interview.Orchestrator), nil
}

func (uc *InterviewUsecase) dropSession(sessionID string) {
	if v, found := uc.sessions.Get(sessionID); found {
		if orch, ok := v.(*interview.Orchestrator); ok {
			orch.Close()
		}
	}
	uc.sessions.Delete(sessionID)
}
