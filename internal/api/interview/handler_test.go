package interview

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUsecase is a mock implementation of InterviewUsecase
type MockUsecase struct {
	mock.Mock
}

func (m *MockUsecase) StartInterview(ctx context.Context, candidateID string) (*entity.StepResponse, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StepResponse), args.Error(1)
}

func (m *MockUsecase) Advance(ctx context.Context, sessionID string, req *entity.AdvanceRequest) (*entity.StepResponse, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StepResponse), args.Error(1)
}

func (m *MockUsecase) SubmitAudioAnswer(ctx context.Context, sessionID, stageTag string, audio []byte, filename string) (*entity.StepResponse, error) {
	args := m.Called(ctx, sessionID, stageTag, audio, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StepResponse), args.Error(1)
}

func (m *MockUsecase) PlaybackComplete(ctx context.Context, sessionID string) (*entity.SessionResponse, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SessionResponse), args.Error(1)
}

func (m *MockUsecase) EndInterview(ctx context.Context, sessionID string) (*entity.StepResponse, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StepResponse), args.Error(1)
}

func (m *MockUsecase) GetSession(ctx context.Context, sessionID string) (*entity.SessionResponse, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SessionResponse), args.Error(1)
}

func (m *MockUsecase) GetTranscript(ctx context.Context, sessionID string) (*entity.TranscriptResponse, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TranscriptResponse), args.Error(1)
}

func newTestRouter(uc InterviewUsecase) http.Handler {
	h := NewHandler(uc, validator.NewValidator(1<<20))
	r := chi.NewRouter()
	RegisterRoutes(r, h)
	return r
}

func TestHandler_StartInterview(t *testing.T) {
	uc := new(MockUsecase)
	uc.On("StartInterview", mock.Anything, "cand-1").Return(&entity.StepResponse{
		SessionID: "sess-1",
		Stage:     "welcome",
		Text:      "Hello!",
	}, nil)

	body := `{"candidate_id":"cand-1"}`
	req := httptest.NewRequest(http.MethodPost, "/interviews", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp entity.StepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "sess-1", resp.SessionID)
	uc.AssertExpectations(t)
}

func TestHandler_StartInterview_MissingCandidate(t *testing.T) {
	uc := new(MockUsecase)

	req := httptest.NewRequest(http.MethodPost, "/interviews", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "StartInterview", mock.Anything, mock.Anything)
}

func TestHandler_Advance_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"session not found", entity.ErrSessionNotFound, http.StatusNotFound},
		{"advance in flight", entity.ErrAdvanceInFlight, http.StatusConflict},
		{"interview finished", entity.ErrInterviewFinished, http.StatusConflict},
		{"unknown stage", entity.ErrUnknownStage, http.StatusBadRequest},
		{"generation failed", entity.ErrGenerationFailed, http.StatusBadGateway},
		{"persistence failed", entity.ErrPersistenceFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUsecase)
			uc.On("Advance", mock.Anything, "sess-1", mock.Anything).Return(nil, tt.err)

			body := `{"stage":"compare","text":"an answer"}`
			req := httptest.NewRequest(http.MethodPost, "/interviews/sess-1/advance", strings.NewReader(body))
			rec := httptest.NewRecorder()
			newTestRouter(uc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Advance_Success(t *testing.T) {
	uc := new(MockUsecase)
	uc.On("Advance", mock.Anything, "sess-1", &entity.AdvanceRequest{Stage: "compare", Text: "my answer"}).
		Return(&entity.StepResponse{SessionID: "sess-1", Stage: "compare", NextStage: "generate"}, nil)

	body := `{"stage":"compare","text":"my answer"}`
	req := httptest.NewRequest(http.MethodPost, "/interviews/sess-1/advance", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandler_SubmitAudioAnswer(t *testing.T) {
	uc := new(MockUsecase)
	uc.On("SubmitAudioAnswer", mock.Anything, "sess-1", "introduction", []byte("fake-wav-bytes"), "answer.wav").
		Return(&entity.StepResponse{SessionID: "sess-1", Stage: "introduction"}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("audio", "answer.wav")
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake-wav-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("stage", "introduction"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/interviews/sess-1/audio", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandler_SubmitAudioAnswer_MissingStage(t *testing.T) {
	uc := new(MockUsecase)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("audio", "answer.wav")
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake-wav-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/interviews/sess-1/audio", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "SubmitAudioAnswer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_GetSession(t *testing.T) {
	uc := new(MockUsecase)
	uc.On("GetSession", mock.Anything, "sess-1").Return(&entity.SessionResponse{
		SessionID: "sess-1",
		Stage:     "compare",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/interviews/sess-1", nil)
	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp entity.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "compare", resp.Stage)
}

func TestHandler_GetTranscript(t *testing.T) {
	uc := new(MockUsecase)
	uc.On("GetTranscript", mock.Anything, "sess-1").Return(&entity.TranscriptResponse{
		SessionID: "sess-1",
		Entries:   map[string]string{"Welcome": "Hello!", "Question 1": "What is a goroutine?"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/interviews/sess-1/transcript", nil)
	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp entity.TranscriptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "What is a goroutine?", resp.Entries["Question 1"])
}

func TestHandler_EndInterview(t *testing.T) {
	uc := new(MockUsecase)
	uc.On("EndInterview", mock.Anything, "sess-1").Return(&entity.StepResponse{
		SessionID: "sess-1",
		Stage:     "interview_end",
		NextStage: "summary",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/interviews/sess-1/end", nil)
	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandler_PlaybackComplete(t *testing.T) {
	uc := new(MockUsecase)
	uc.On("PlaybackComplete", mock.Anything, "sess-1").Return(&entity.SessionResponse{
		SessionID: "sess-1",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/interviews/sess-1/playback-complete", nil)
	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}
