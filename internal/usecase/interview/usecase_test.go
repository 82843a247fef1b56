package interview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/interview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockCandidateRepo is a mock implementation of repository.CandidateRepository
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetCandidate(ctx context.Context, id string) (*entity.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Candidate), args.Error(1)
}

// MockPostRepo is a mock implementation of repository.PostRepository
type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) GetPost(ctx context.Context, id string) (*entity.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

// MockQuestionRepo is a mock implementation of repository.QuestionRepository
type MockQuestionRepo struct {
	mock.Mock
}

func (m *MockQuestionRepo) FetchQuestionPool(ctx context.Context, postID, level string) ([]entity.QuestionItem, error) {
	args := m.Called(ctx, postID, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.QuestionItem), args.Error(1)
}

// MockConversationRepo is a mock implementation of repository.ConversationRepository
type MockConversationRepo struct {
	mock.Mock
}

func (m *MockConversationRepo) SaveConversation(ctx context.Context, candidateID, postID string, entries map[string]string) error {
	args := m.Called(ctx, candidateID, postID, entries)
	return args.Error(0)
}

// MockRankingRepo is a mock implementation of repository.RankingRepository
type MockRankingRepo struct {
	mock.Mock
}

func (m *MockRankingRepo) SaveRanking(ctx context.Context, candidateID, postID string, ranking *entity.Ranking) error {
	args := m.Called(ctx, candidateID, postID, ranking)
	return args.Error(0)
}

func (m *MockRankingRepo) SaveOutcome(ctx context.Context, outcome entity.Outcome) error {
	args := m.Called(ctx, outcome)
	return args.Error(0)
}

type stubGenerator struct {
	responses map[interview.Stage]string
}

func (g *stubGenerator) Generate(_ context.Context, stage interview.Stage, _ string) (string, error) {
	return g.responses[stage], nil
}

type stubSynthesizer struct{}

func (s *stubSynthesizer) Synthesize(_ context.Context, _ string) ([]byte, error) {
	return []byte("audio"), nil
}

type stubRecorder struct {
	text string
	err  error
}

func (r *stubRecorder) Transcribe(_ context.Context, _ []byte, _ string) (string, error) {
	return r.text, r.err
}

type usecaseFixture struct {
	uc           *InterviewUsecase
	candidate    *MockCandidateRepo
	post         *MockPostRepo
	question     *MockQuestionRepo
	conversation *MockConversationRepo
	ranking      *MockRankingRepo
	recorder     *stubRecorder
}

func newFixture(t *testing.T) *usecaseFixture {
	t.Helper()

	candidateRepo := new(MockCandidateRepo)
	postRepo := new(MockPostRepo)
	questionRepo := new(MockQuestionRepo)
	conversationRepo := new(MockConversationRepo)
	rankingRepo := new(MockRankingRepo)

	gen := &stubGenerator{responses: map[interview.Stage]string{
		interview.StageWelcome:      "Welcome to Acme, Sam.",
		interview.StageIntroduction: "Nice to meet you.",
		interview.StageStart:        "Let's begin.",
		interview.StageCompare:      "Good. Coverage=90",
		interview.StageInterviewEnd: "Thank you for your time.",
		interview.StageSummary:      "Lan=8 Sub=8 Beh=8 Sum=Well rounded.",
	}}
	recorder := &stubRecorder{text: "I am Sam and I build APIs."}

	uc := NewUsecase(
		candidateRepo,
		postRepo,
		questionRepo,
		conversationRepo,
		rankingRepo,
		gen,
		&stubSynthesizer{},
		recorder,
		"Acme",
		time.Minute,
		zap.NewNop(),
	)

	return &usecaseFixture{
		uc:           uc,
		candidate:    candidateRepo,
		post:         postRepo,
		question:     questionRepo,
		conversation: conversationRepo,
		ranking:      rankingRepo,
		recorder:     recorder,
	}
}

func (f *usecaseFixture) expectInitFetches() {
	candidate := &entity.Candidate{ID: "cand-1", Name: "Sam", PostID: "post-1"}
	post := &entity.Post{
		ID: "post-1", Title: "Backend Engineer", Level: "mid",
		TimeLimitMinutes: 10, CoverageThreshold: 60, MaxFollowup: 2,
	}
	questions := []entity.QuestionItem{
		{Question: "What is a goroutine?", ExpectedAnswer: "a lightweight thread"},
		{Question: "What does defer do?", ExpectedAnswer: "schedules a call"},
	}

	f.candidate.On("GetCandidate", mock.Anything, "cand-1").Return(candidate, nil)
	f.post.On("GetPost", mock.Anything, "post-1").Return(post, nil)
	f.question.On("FetchQuestionPool", mock.Anything, "post-1", "mid").Return(questions, nil)
}

func TestStartInterview(t *testing.T) {
	f := newFixture(t)
	f.expectInitFetches()
	ctx := context.Background()

	step, err := f.uc.StartInterview(ctx, "cand-1")
	require.NoError(t, err)
	assert.NotEmpty(t, step.SessionID)
	assert.Equal(t, "welcome", step.Stage)
	assert.Equal(t, "introduction", step.NextStage)
	assert.NotEmpty(t, step.Audio, "welcome speech is base64 encoded")
	assert.False(t, step.Done)

	session, err := f.uc.GetSession(ctx, step.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "cand-1", session.CandidateID)
	assert.Equal(t, 2, session.QuestionsLeft)
	assert.False(t, session.Finished)

	f.candidate.AssertExpectations(t)
	f.post.AssertExpectations(t)
	f.question.AssertExpectations(t)
}

func TestStartInterview_CandidateNotFound(t *testing.T) {
	f := newFixture(t)
	f.candidate.On("GetCandidate", mock.Anything, "ghost").Return(nil, entity.ErrCandidateNotFound)

	_, err := f.uc.StartInterview(context.Background(), "ghost")
	assert.ErrorIs(t, err, entity.ErrCandidateNotFound)
}

func TestStartInterview_EmptyPool(t *testing.T) {
	f := newFixture(t)
	candidate := &entity.Candidate{ID: "cand-1", Name: "Sam", PostID: "post-1"}
	post := &entity.Post{ID: "post-1", Title: "Backend Engineer", Level: "mid", TimeLimitMinutes: 10}

	f.candidate.On("GetCandidate", mock.Anything, "cand-1").Return(candidate, nil)
	f.post.On("GetPost", mock.Anything, "post-1").Return(post, nil)
	f.question.On("FetchQuestionPool", mock.Anything, "post-1", "mid").Return([]entity.QuestionItem{}, nil)

	_, err := f.uc.StartInterview(context.Background(), "cand-1")
	assert.ErrorIs(t, err, entity.ErrConfiguration)
}

func TestAdvance_UnknownSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Advance(context.Background(), "no-such-session", &entity.AdvanceRequest{Stage: "introduction"})
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestAdvance_UnknownStageTag(t *testing.T) {
	f := newFixture(t)
	f.expectInitFetches()
	ctx := context.Background()

	step, err := f.uc.StartInterview(ctx, "cand-1")
	require.NoError(t, err)

	_, err = f.uc.Advance(ctx, step.SessionID, &entity.AdvanceRequest{Stage: "lunch_break"})
	assert.ErrorIs(t, err, entity.ErrUnknownStage)
}

func TestSubmitAudioAnswer(t *testing.T) {
	f := newFixture(t)
	f.expectInitFetches()
	ctx := context.Background()

	start, err := f.uc.StartInterview(ctx, "cand-1")
	require.NoError(t, err)

	step, err := f.uc.SubmitAudioAnswer(ctx, start.SessionID, "introduction", []byte("fake-audio"), "answer.wav")
	require.NoError(t, err)
	assert.Equal(t, "introduction", step.Stage)
	assert.Equal(t, "start", step.NextStage)
}

func TestSubmitAudioAnswer_TranscriptionFailure(t *testing.T) {
	f := newFixture(t)
	f.expectInitFetches()
	ctx := context.Background()

	start, err := f.uc.StartInterview(ctx, "cand-1")
	require.NoError(t, err)

	f.recorder.err = errors.New("asr unavailable")
	_, err = f.uc.SubmitAudioAnswer(ctx, start.SessionID, "introduction", []byte("fake-audio"), "answer.wav")
	assert.ErrorIs(t, err, entity.ErrTranscriptionFailed)

	// The stage is unchanged and a re-recorded answer goes through.
	f.recorder.err = nil
	step, err := f.uc.SubmitAudioAnswer(ctx, start.SessionID, "introduction", []byte("fake-audio"), "answer.wav")
	require.NoError(t, err)
	assert.Equal(t, "introduction", step.Stage)
}

func TestEndInterviewAndTranscript(t *testing.T) {
	f := newFixture(t)
	f.expectInitFetches()
	ctx := context.Background()

	// Conversation flush on end.
	f.conversation.On("SaveConversation", mock.Anything, "cand-1", "post-1", mock.Anything).Return(nil)

	start, err := f.uc.StartInterview(ctx, "cand-1")
	require.NoError(t, err)

	step, err := f.uc.EndInterview(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "interview_end", step.Stage)
	assert.Equal(t, "summary", step.NextStage)
	assert.False(t, step.MicOpen)

	transcript, err := f.uc.GetTranscript(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Contains(t, transcript.Entries, "Welcome")
	assert.Contains(t, transcript.Entries, "Interview_End")

	f.conversation.AssertExpectations(t)
}

func TestPlaybackComplete_ReopensMic(t *testing.T) {
	f := newFixture(t)
	f.expectInitFetches()
	ctx := context.Background()

	start, err := f.uc.StartInterview(ctx, "cand-1")
	require.NoError(t, err)
	assert.False(t, start.MicOpen, "mic is gated while the greeting plays")

	session, err := f.uc.PlaybackComplete(ctx, start.SessionID)
	require.NoError(t, err)
	require.NotNil(t, session)

	state, err := f.uc.GetSession(ctx, start.SessionID)
	require.NoError(t, err)
	assert.False(t, state.Finished)
}
