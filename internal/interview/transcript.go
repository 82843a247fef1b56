package interview

import "fmt"

// Fixed transcript labels written at most once per session.
const (
	LabelWelcome      = "Welcome"
	LabelIntroduction = "Introduction"
	LabelStart        = "Start"
	LabelInterviewEnd = "Interview_End"
)

// Ordinal-keyed transcript categories. Each keeps its own counter so that
// e.g. follow-up answers never collide with main answers.
const (
	CategoryQuestion         = "Question"
	CategoryAnswer           = "Candidate Answer"
	CategoryFeedback         = "Question_Feedback"
	CategoryFollowupQuestion = "Followup_Question"
	CategoryFollowupAnswer   = "Followup_Answer"
	CategoryFollowupFeedback = "Followup_Question_Feedback"
)

// Transcript is the append-only, stage-keyed conversation accumulator.
// Keys are assigned by probing ordinals starting at 1 until a free slot is
// found, so keys stay collision-free even if categories interleave. Entries
// are never overwritten. Access is serialized by the Orchestrator's
// one-in-flight rule; the type itself holds no lock.
type Transcript struct {
	entries map[string]string
}

func NewTranscript() *Transcript {
	return &Transcript{entries: make(map[string]string)}
}

// SetFixed writes a fixed-name entry. A second write under the same label
// is dropped: once written, an entry is immutable.
func (t *Transcript) SetFixed(label, text string) {
	if _, exists := t.entries[label]; exists {
		return
	}
	t.entries[label] = text
}

// Append writes text under the category's next free ordinal and returns the
// assigned key.
func (t *Transcript) Append(category, text string) string {
	for n := 1; ; n++ {
		key := fmt.Sprintf("%s %d", category, n)
		if _, exists := t.entries[key]; !exists {
			t.entries[key] = text
			return key
		}
	}
}

// Entries returns a copy of the accumulated map.
func (t *Transcript) Entries() map[string]string {
	out := make(map[string]string, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}

// Len returns the number of recorded entries.
func (t *Transcript) Len() int {
	return len(t.entries)
}
