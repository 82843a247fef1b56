package interview

// Action is the Decision Engine's verdict after a scored answer.
type Action int

const (
	// ActionFollowup asks a derived follow-up for the active main question.
	ActionFollowup Action = iota
	// ActionNextQuestion advances to the next main question.
	ActionNextQuestion
	// ActionEnd signals loop completion; the Orchestrator turns it into
	// interview_end.
	ActionEnd
)

func (a Action) String() string {
	switch a {
	case ActionFollowup:
		return "followup"
	case ActionNextQuestion:
		return "next_question"
	case ActionEnd:
		return "end"
	default:
		return "unknown"
	}
}

// DecisionEngine decides the loop's next step after each compare or
// follow-up compare, using the per-post coverage threshold and follow-up
// budget.
type DecisionEngine struct {
	threshold   int
	maxFollowup int
}

func NewDecisionEngine(threshold, maxFollowup int) *DecisionEngine {
	return &DecisionEngine{threshold: threshold, maxFollowup: maxFollowup}
}

// Decide returns the next action. A nil coverage means the score could not
// be parsed from the feedback; the engine then fails open toward
// progression and never issues a follow-up, to avoid looping on malformed
// model output. The follow-up budget is a hard ceiling, never bypassed.
func (e *DecisionEngine) Decide(coverage *int, followupCount int, hasRemaining bool) Action {
	if coverage != nil && *coverage < e.threshold && followupCount < e.maxFollowup {
		return ActionFollowup
	}

	if hasRemaining {
		return ActionNextQuestion
	}

	return ActionEnd
}
