package entity

import "time"

// Candidate is the person being interviewed, as stored by the hiring platform.
type Candidate struct {
	ID     string `json:"candidate_id"`
	Name   string `json:"name"`
	PostID string `json:"post_id"`
}

// Post is a job posting together with the interview configuration HR set for it.
type Post struct {
	ID                string `json:"post_id"`
	Title             string `json:"title"`
	Level             string `json:"level"`
	TimeLimitMinutes  int    `json:"time_limit_minutes"`
	CoverageThreshold int    `json:"coverage_threshold"` // 0-100
	MaxFollowup       int    `json:"max_followup"`
}

// QuestionItem is one entry of a post's question pool.
type QuestionItem struct {
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer"`
}

// Ranking is the final structured evaluation of a candidate.
type Ranking struct {
	Fluency          int    `json:"fluency"`
	SubjectKnowledge int    `json:"subject_knowledge"`
	Behavior         int    `json:"behavior"`
	Feedback         string `json:"feedback"`
}

// Outcome is the terminal record persisted once an interview concludes.
// Stage is fixed to 2 by the hiring pipeline: the candidate finished the
// automated interview round and awaits HR review.
type Outcome struct {
	CandidateID string  `json:"candidate_id"`
	PostID      string  `json:"post_id"`
	Stage       int     `json:"stage"`
	Selected    bool    `json:"selected"`
	ReportToHR  bool    `json:"report_to_hr"`
	Feedback    *string `json:"feedback,omitempty"`
}

// ConversationEntry is one persisted transcript line.
type ConversationEntry struct {
	CandidateID string    `json:"candidate_id"`
	PostID      string    `json:"post_id"`
	Label       string    `json:"label"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}
