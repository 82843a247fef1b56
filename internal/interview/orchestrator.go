package interview

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"
	"go.uber.org/zap"
)

// StepResult is the outcome of one successful advance.
type StepResult struct {
	Stage          Stage
	Text           string
	Audio          []byte // nil when the stage is silent or synthesis failed
	NextStage      Stage  // suggested next stage tag for the UI, "" when done
	ActiveQuestion string
	ExpectsSpeech  bool // mic should reopen once playback of Audio finished
	Ranking        *entity.Ranking
	Done           bool
}

// OrchestratorConfig wires one session's collaborators.
type OrchestratorConfig struct {
	Session           *Session
	Generator         Generator
	Synthesizer       Synthesizer
	Store             Store
	CompanyName       string
	CoverageThreshold int
	MaxFollowup       int
	TimeLimitSeconds  int
	Logger            *zap.Logger
}

// Orchestrator is the top-level driver of one interview session. It owns
// the session state exclusively and serializes all mutation behind a single
// lock: a second Advance while one is pending is a defined, rejected
// outcome (ErrAdvanceInFlight), never a race.
type Orchestrator struct {
	mu      sync.Mutex
	session *Session
	gen     Generator
	tts     Synthesizer
	store   Store
	engine  *DecisionEngine
	timer   *Timer
	logger  *zap.Logger
	company string

	micOpen          atomic.Bool
	pendingMic       atomic.Bool
	awaitingPlayback atomic.Bool
	forceEnd         atomic.Bool
}

func NewOrchestrator(cfg OrchestratorConfig) *Orchestrator {
	o := &Orchestrator{
		session: cfg.Session,
		gen:     cfg.Generator,
		tts:     cfg.Synthesizer,
		store:   cfg.Store,
		engine:  NewDecisionEngine(cfg.CoverageThreshold, cfg.MaxFollowup),
		logger:  cfg.Logger,
		company: cfg.CompanyName,
	}

	o.timer = NewTimer(cfg.TimeLimitSeconds, o.onTimerExpired)
	o.timer.Start()

	return o
}

// onTimerExpired preemptively routes the session to interview_end. The
// preemption takes priority over any decision-engine outcome: if an advance
// is in flight right now, the force-end flag redirects its successor.
func (o *Orchestrator) onTimerExpired() {
	o.forceEnd.Store(true)
	o.micOpen.Store(false)
	o.logger.Info("interview time limit reached, forcing end",
		zap.String("session_id", o.session.ID),
	)

	go func() {
		if _, err := o.Advance(context.Background(), StageInterviewEnd, "", ""); err != nil {
			o.logger.Warn("forced end deferred", zap.Error(err))
		}
	}()
}

// Advance drives the state machine one step. At most one call is in flight
// at a time; concurrent callers get ErrAdvanceInFlight. On failure of the
// generation service the stage does not advance and the caller may retry
// manually. A non-nil result may be returned together with a persistence
// error: the candidate-visible step succeeded, only the save failed.
func (o *Orchestrator) Advance(ctx context.Context, stage Stage, candidateText, contextQuestion string) (*StepResult, error) {
	if !o.mu.TryLock() {
		return nil, entity.ErrAdvanceInFlight
	}
	defer o.mu.Unlock()

	s := o.session
	if s.Ranking != nil {
		return nil, entity.ErrInterviewFinished
	}
	if s.finished && stage != StageSummary {
		return nil, entity.ErrInterviewFinished
	}

	// Timer preemption: whatever the caller asked for, a force-ended
	// session's next action is interview_end.
	if o.forceEnd.Load() && stage != StageInterviewEnd && stage != StageSummary {
		stage = StageInterviewEnd
	}

	o.timer.Pause()
	o.micOpen.Store(false)

	res, stepErr := o.step(ctx, stage, candidateText, contextQuestion)
	if res == nil {
		// Stage did not advance; the session is idle again.
		if !s.finished {
			o.timer.Resume()
		}
		return nil, stepErr
	}

	s.Stage = res.Stage
	res.ExpectsSpeech = res.Stage.ExpectsSpeech()

	if res.Stage.Speaks() && res.Text != "" {
		audio, err := o.tts.Synthesize(ctx, res.Text)
		if err != nil {
			// Absorbed: the interview proceeds without spoken audio.
			o.logger.Warn("speech synthesis failed, continuing without audio",
				zap.String("session_id", s.ID), zap.Error(err))
		} else {
			res.Audio = audio
		}
	}

	switch {
	case s.finished || res.Done:
		o.timer.Stop()
	case len(res.Audio) > 0:
		// Mic stays gated and the clock stays paused until the UI reports
		// playback completion.
		o.awaitingPlayback.Store(true)
		o.pendingMic.Store(res.ExpectsSpeech)
	default:
		o.micOpen.Store(res.ExpectsSpeech)
		o.timer.Resume()
	}

	return res, stepErr
}

func (o *Orchestrator) step(ctx context.Context, stage Stage, candidateText, contextQuestion string) (*StepResult, error) {
	s := o.session

	switch stage {
	case StageWelcome:
		text, err := o.generate(ctx, StageWelcome, welcomePrompt(o.company, s.CandidateName, s.PostTitle))
		if err != nil {
			return nil, err
		}
		s.Transcript.SetFixed(LabelWelcome, text)
		return &StepResult{Stage: StageWelcome, Text: text, NextStage: StageIntroduction}, nil

	case StageIntroduction:
		text, err := o.generate(ctx, StageIntroduction, introductionPrompt(candidateText))
		if err != nil {
			return nil, err
		}
		s.Transcript.SetFixed(LabelIntroduction, candidateText)
		return &StepResult{Stage: StageIntroduction, Text: text, NextStage: StageStart}, nil

	case StageStart:
		text, err := o.generate(ctx, StageStart, startPrompt(candidateText))
		if err != nil {
			return nil, err
		}
		s.Transcript.SetFixed(LabelStart, text)
		return &StepResult{Stage: StageStart, Text: text, NextStage: StageGenerate}, nil

	case StageGenerate:
		item, ok := s.Pool.Draw()
		if !ok {
			if s.markPoolExhausted() {
				o.logger.Info("question pool exhausted, finalizing interview",
					zap.String("session_id", s.ID))
			}
			return &StepResult{Stage: StageGenerate, NextStage: StageInterviewEnd}, nil
		}
		s.FollowupCount = 0
		s.Coverage = nil
		s.Transcript.Append(CategoryQuestion, item.Question)
		return &StepResult{
			Stage:          StageGenerate,
			Text:           item.Question,
			NextStage:      StageCompare,
			ActiveQuestion: item.Question,
		}, nil

	case StageCompare:
		return o.compareStep(ctx, stage, candidateText, contextQuestion)

	case StageFollowup:
		base := contextQuestion
		if base == "" {
			if last := s.Pool.LastAsked(); last != nil {
				base = last.Question
			}
		}
		text, err := o.generate(ctx, StageFollowup, followupPrompt(base))
		if err != nil {
			return nil, err
		}
		s.Transcript.Append(CategoryFollowupQuestion, text)
		return &StepResult{
			Stage:          StageFollowup,
			Text:           text,
			NextStage:      StageFollowupCompare,
			ActiveQuestion: base,
		}, nil

	case StageFollowupCompare:
		return o.compareStep(ctx, stage, candidateText, contextQuestion)

	case StageInterviewEnd:
		text, err := o.generate(ctx, StageInterviewEnd, closingPrompt(s.CandidateName))
		if err != nil {
			return nil, err
		}
		s.Transcript.SetFixed(LabelInterviewEnd, text)
		s.finished = true

		res := &StepResult{Stage: StageInterviewEnd, Text: text, NextStage: StageSummary}
		if err := o.store.SaveConversation(ctx, s.CandidateID, s.PostID, s.Transcript.Entries()); err != nil {
			// Surfaced, but in-memory state is not rolled back: the
			// candidate-visible interview has already concluded.
			return res, fmt.Errorf("%w: save conversation: %v", entity.ErrPersistenceFailed, err)
		}
		return res, nil

	case StageSummary:
		return o.summaryStep(ctx)

	default:
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownStage, stage)
	}
}

// compareStep handles both compare and followup_compare: score the answer,
// record it with its feedback, and ask the decision engine where to go next.
func (o *Orchestrator) compareStep(ctx context.Context, stage Stage, candidateText, contextQuestion string) (*StepResult, error) {
	s := o.session

	active := s.Pool.LastAsked()
	if active == nil {
		return nil, fmt.Errorf("%w: no active question to compare against", entity.ErrInvalidFormat)
	}

	question := active.Question
	if stage == StageFollowupCompare && contextQuestion != "" {
		question = contextQuestion
	}

	raw, err := o.generate(ctx, stage, comparePrompt(question, active.ExpectedAnswer, candidateText))
	if err != nil {
		return nil, err
	}

	score, feedback, ok := ParseCoverage(raw)
	if ok {
		s.Coverage = &score
	} else {
		// Documented policy: unparsable coverage progresses without a
		// follow-up rather than looping on malformed model output.
		s.Coverage = nil
		o.logger.Warn("coverage marker missing in feedback",
			zap.String("session_id", s.ID), zap.String("stage", string(stage)))
	}

	if stage == StageFollowupCompare {
		s.Transcript.Append(CategoryFollowupAnswer, candidateText)
		s.Transcript.Append(CategoryFollowupFeedback, feedback)
	} else {
		s.Transcript.Append(CategoryAnswer, candidateText)
		s.Transcript.Append(CategoryFeedback, feedback)
	}

	var next Stage
	switch o.engine.Decide(s.Coverage, s.FollowupCount, s.Pool.HasRemaining()) {
	case ActionFollowup:
		s.FollowupCount++
		next = StageFollowup
	case ActionNextQuestion:
		next = StageGenerate
	default:
		next = StageInterviewEnd
	}

	return &StepResult{Stage: stage, Text: feedback, NextStage: next}, nil
}

func (o *Orchestrator) summaryStep(ctx context.Context) (*StepResult, error) {
	s := o.session

	raw, err := o.generate(ctx, StageSummary, summaryPrompt(s.Transcript.Entries()))
	if err != nil {
		return nil, err
	}

	ranking, ok := ParseRanking(raw)
	if !ok {
		// Recoverable: no partial or guessed scores are ever stored.
		return nil, fmt.Errorf("%w: summary response did not match ranking format", entity.ErrNoRanking)
	}
	s.Ranking = ranking

	res := &StepResult{Stage: StageSummary, Ranking: ranking, Done: true}

	if err := o.store.SaveRanking(ctx, s.CandidateID, s.PostID, ranking); err != nil {
		return res, fmt.Errorf("%w: save ranking: %v", entity.ErrPersistenceFailed, err)
	}

	outcome := entity.Outcome{
		CandidateID: s.CandidateID,
		PostID:      s.PostID,
		Stage:       2,
		ReportToHR:  true,
		Feedback:    &ranking.Feedback,
	}
	if err := o.store.SaveOutcome(ctx, outcome); err != nil {
		return res, fmt.Errorf("%w: save outcome: %v", entity.ErrPersistenceFailed, err)
	}

	return res, nil
}

func (o *Orchestrator) generate(ctx context.Context, stage Stage, prompt string) (string, error) {
	text, err := o.gen.Generate(ctx, stage, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: stage %s: %v", entity.ErrGenerationFailed, stage, err)
	}
	return text, nil
}

// ForceEnd terminates the interview early (manual end by the user). It
// shares the timer-expiry path: pending audio is dropped by the UI, the mic
// closes, and exactly one interview_end advance is issued.
func (o *Orchestrator) ForceEnd(ctx context.Context) (*StepResult, error) {
	o.forceEnd.Store(true)
	o.micOpen.Store(false)
	return o.Advance(ctx, StageInterviewEnd, "", "")
}

// PlaybackComplete is the UI's signal that the last spoken output finished
// playing. Only now may the microphone reactivate, and only for stages that
// expect candidate speech; the countdown resumes as the session is idle
// again.
func (o *Orchestrator) PlaybackComplete() {
	o.awaitingPlayback.Store(false)

	o.mu.Lock()
	finished := o.session.finished
	o.mu.Unlock()

	if finished || o.forceEnd.Load() {
		o.pendingMic.Store(false)
		return
	}

	o.micOpen.Store(o.pendingMic.Load())
	o.pendingMic.Store(false)
	o.timer.Resume()
}

// MicOpen reports whether the microphone may currently capture the
// candidate.
func (o *Orchestrator) MicOpen() bool {
	return o.micOpen.Load()
}

// Remaining returns the seconds left on the session clock.
func (o *Orchestrator) Remaining() int {
	return o.timer.Remaining()
}

// Snapshot returns the externally visible session state. It waits for any
// in-flight advance to finish.
func (o *Orchestrator) Snapshot() entity.SessionResponse {
	o.mu.Lock()
	defer o.mu.Unlock()

	s := o.session
	return entity.SessionResponse{
		SessionID:        s.ID,
		CandidateID:      s.CandidateID,
		CandidateName:    s.CandidateName,
		PostID:           s.PostID,
		PostTitle:        s.PostTitle,
		Stage:            string(s.Stage),
		RemainingSeconds: o.timer.Remaining(),
		QuestionsLeft:    s.Pool.Remaining(),
		Finished:         s.finished,
	}
}

// TranscriptEntries returns a copy of the accumulated conversation.
func (o *Orchestrator) TranscriptEntries() map[string]string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.session.Transcript.Entries()
}

// Close releases the session's timer. Called when the session is evicted.
func (o *Orchestrator) Close() {
	o.timer.Stop()
}
