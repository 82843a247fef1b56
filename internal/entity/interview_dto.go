package entity

// StartInterviewRequest begins a new interview session for a candidate.
type StartInterviewRequest struct {
	CandidateID string `json:"candidate_id"`
}

// AdvanceRequest drives the interview state machine one step forward.
// Text carries the candidate's (possibly empty) spoken answer for the
// stages that consume one; Question carries the context question for
// follow-up generation.
type AdvanceRequest struct {
	Stage    string `json:"stage"`
	Text     string `json:"text"`
	Question string `json:"question,omitempty"`
}

// StepResponse is what the UI receives after each successful advance.
type StepResponse struct {
	SessionID        string   `json:"session_id"`
	Stage            string   `json:"stage"`
	Text             string   `json:"text"`
	Audio            string   `json:"audio,omitempty"` // base64, absent when synthesis failed
	NextStage        string   `json:"next_stage,omitempty"`
	ActiveQuestion   string   `json:"active_question,omitempty"`
	MicOpen          bool     `json:"mic_open"`
	RemainingSeconds int      `json:"remaining_seconds"`
	Done             bool     `json:"done"`
	Ranking          *Ranking `json:"ranking,omitempty"`
	Warning          string   `json:"warning,omitempty"` // set when the step succeeded but a save failed
}

// SessionResponse is the externally visible state of a session.
type SessionResponse struct {
	SessionID        string `json:"session_id"`
	CandidateID      string `json:"candidate_id"`
	CandidateName    string `json:"candidate_name"`
	PostID           string `json:"post_id"`
	PostTitle        string `json:"post_title"`
	Stage            string `json:"stage"`
	RemainingSeconds int    `json:"remaining_seconds"`
	QuestionsLeft    int    `json:"questions_left"`
	Finished         bool   `json:"finished"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// TranscriptResponse returns the accumulated conversation.
type TranscriptResponse struct {
	SessionID string            `json:"session_id"`
	Entries   map[string]string `json:"entries"`
}
