package interview

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/pkg/logger"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/pkg/validator"
	"go.uber.org/zap"
)

type Handler struct {
	usecase   InterviewUsecase
	validator *validator.Validator
}

func NewHandler(usecase InterviewUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// StartInterview handles POST /interviews - Start a new interview session
func (h *Handler) StartInterview(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "StartInterview")

	var req entity.StartInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateStartInterview(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	ctxzap.Info(ctx, "starting interview", zap.String("candidate_id", req.CandidateID))

	step, err := h.usecase.StartInterview(ctx, req.CandidateID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "interview started", zap.String("session_id", step.SessionID))
	h.respondJSON(w, http.StatusCreated, step)
}

// Advance handles POST /interviews/{id}/advance - Drive the session one stage
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "id")

	ctx = logger.AddFields(ctx,
		zap.String("session_id", sessionID),
		zap.String("action", "Advance"),
	)

	var req entity.AdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateAdvance(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	ctxzap.Info(ctx, "advancing interview", zap.String("stage", req.Stage))

	step, err := h.usecase.Advance(ctx, sessionID, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	if step.Warning != "" {
		ctxzap.Warn(ctx, "step completed with persistence warning", zap.String("warning", step.Warning))
	}
	h.respondJSON(w, http.StatusOK, step)
}

// SubmitAudioAnswer handles POST /interviews/{id}/audio - Submit a recorded answer
func (h *Handler) SubmitAudioAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "id")

	ctx = logger.AddFields(ctx,
		zap.String("session_id", sessionID),
		zap.String("action", "SubmitAudioAnswer"),
	)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		ctxzap.Error(ctx, "failed to parse multipart form", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "failed to parse form", err)
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		ctxzap.Error(ctx, "missing audio file", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "audio file is required", err)
		return
	}
	defer file.Close()

	stageTag := r.FormValue("stage")
	if stageTag == "" {
		h.respondError(ctx, w, http.StatusBadRequest, "stage field is required", entity.ErrMissingField)
		return
	}

	if err := h.validator.ValidateAudioUpload(header); err != nil {
		ctxzap.Error(ctx, "failed to validate audio upload", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	audio, err := io.ReadAll(file)
	if err != nil {
		ctxzap.Error(ctx, "failed to read audio file", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "failed to read audio file", err)
		return
	}

	ctxzap.Info(ctx, "submitting audio answer",
		zap.String("stage", stageTag),
		zap.Int64("size_bytes", header.Size),
	)

	step, err := h.usecase.SubmitAudioAnswer(ctx, sessionID, stageTag, audio, header.Filename)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, step)
}

// PlaybackComplete handles POST /interviews/{id}/playback-complete
func (h *Handler) PlaybackComplete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "id")

	ctx = logger.AddFields(ctx,
		zap.String("session_id", sessionID),
		zap.String("action", "PlaybackComplete"),
	)

	ctxzap.Debug(ctx, "playback complete signal received")

	session, err := h.usecase.PlaybackComplete(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, session)
}

// EndInterview handles POST /interviews/{id}/end - End the session early
func (h *Handler) EndInterview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "id")

	ctx = logger.AddFields(ctx,
		zap.String("session_id", sessionID),
		zap.String("action", "EndInterview"),
	)

	ctxzap.Info(ctx, "ending interview on user request")

	step, err := h.usecase.EndInterview(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, step)
}

// GetSession handles GET /interviews/{id} - Get session status
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "id")

	ctx = logger.AddFields(ctx,
		zap.String("session_id", sessionID),
		zap.String("action", "GetSession"),
	)

	ctxzap.Debug(ctx, "fetching session")

	session, err := h.usecase.GetSession(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, session)
}

// GetTranscript handles GET /interviews/{id}/transcript - Get the conversation
func (h *Handler) GetTranscript(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "id")

	ctx = logger.AddFields(ctx,
		zap.String("session_id", sessionID),
		zap.String("action", "GetTranscript"),
	)

	transcript, err := h.usecase.GetTranscript(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, transcript)
}

// Helper methods
func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	ctxzap.Error(ctx, message, zap.Error(err))
	h.respondJSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrSessionNotFound) || errors.Is(err, entity.ErrCandidateNotFound) || errors.Is(err, entity.ErrPostNotFound):
		h.respondError(ctx, w, http.StatusNotFound, "resource not found", err)
	case errors.Is(err, entity.ErrAdvanceInFlight):
		h.respondError(ctx, w, http.StatusConflict, "another step is already in progress", err)
	case errors.Is(err, entity.ErrInterviewFinished):
		h.respondError(ctx, w, http.StatusConflict, "interview already finished", err)
	case errors.Is(err, entity.ErrMissingField) || errors.Is(err, entity.ErrInvalidFormat) ||
		errors.Is(err, entity.ErrUnknownStage) || errors.Is(err, entity.ErrInvalidExtension) ||
		errors.Is(err, entity.ErrFileTooLarge):
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, entity.ErrConfiguration):
		h.respondError(ctx, w, http.StatusUnprocessableEntity, "interview is not configured for this candidate", err)
	case errors.Is(err, entity.ErrGenerationFailed) || errors.Is(err, entity.ErrTranscriptionFailed) || errors.Is(err, entity.ErrNoRanking):
		// The stage did not advance; the caller may retry the same step.
		h.respondError(ctx, w, http.StatusBadGateway, "upstream speech or language service failed", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
