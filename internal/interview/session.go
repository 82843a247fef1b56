package interview

import "github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"

// Session is the per-candidate interview state. It is created by explicit
// initialization (candidate info, post config and question pool fetched up
// front) and mutated only by the Orchestrator that owns it; no other
// component holds a writable reference.
type Session struct {
	ID            string
	CandidateID   string
	CandidateName string
	PostID        string
	PostTitle     string

	Stage      Stage
	Pool       *QuestionPool
	Transcript *Transcript

	// FollowupCount advances only while one main question is active and
	// resets to 0 exactly when a new main question is drawn.
	FollowupCount int

	// Coverage is the last measured score for the active answer; nil before
	// first scoring and reset on every new main question so a stale score
	// never leaks into the evaluation of a different answer.
	Coverage *int

	// Ranking is written at most once and is terminal data.
	Ranking *entity.Ranking

	poolExhausted bool
	finished      bool
}

// NewSession assembles session state from the initialization fetches.
func NewSession(id string, candidate *entity.Candidate, post *entity.Post, pool *QuestionPool) *Session {
	return &Session{
		ID:            id,
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		PostID:        post.ID,
		PostTitle:     post.Title,
		Stage:         StageWelcome,
		Pool:          pool,
		Transcript:    NewTranscript(),
	}
}

// Finished reports whether the interview has concluded (interview_end
// reached or force-ended).
func (s *Session) Finished() bool {
	return s.finished
}

// markPoolExhausted records exhaustion exactly once, returning true only on
// the first call.
func (s *Session) markPoolExhausted() bool {
	if s.poolExhausted {
		return false
	}
	s.poolExhausted = true
	return true
}
