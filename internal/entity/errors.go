package entity

import "errors"

// Domain errors
var (
	// External collaborator failures
	ErrGenerationFailed    = errors.New("text generation failed")
	ErrTranscriptionFailed = errors.New("no usable transcription")
	ErrSynthesisFailed     = errors.New("speech synthesis failed")
	ErrPersistenceFailed   = errors.New("persistence failed")

	// Session errors
	ErrSessionNotFound    = errors.New("interview session not found")
	ErrAdvanceInFlight    = errors.New("another advance call is in flight")
	ErrInterviewFinished  = errors.New("interview already finished")
	ErrUnknownStage       = errors.New("unknown interview stage")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrNoRanking          = errors.New("ranking could not be extracted")
	ErrConfiguration      = errors.New("invalid interview configuration")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidExtension = errors.New("file extension not allowed")
	ErrFileTooLarge     = errors.New("file too large")
)
