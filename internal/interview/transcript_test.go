package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscript_SetFixedNeverOverwrites(t *testing.T) {
	tr := NewTranscript()

	tr.SetFixed(LabelWelcome, "hello")
	tr.SetFixed(LabelWelcome, "replaced")

	assert.Equal(t, "hello", tr.Entries()[LabelWelcome])
	assert.Equal(t, 1, tr.Len())
}

func TestTranscript_AppendAssignsOrdinals(t *testing.T) {
	tr := NewTranscript()

	assert.Equal(t, "Question 1", tr.Append(CategoryQuestion, "q1"))
	assert.Equal(t, "Question 2", tr.Append(CategoryQuestion, "q2"))
	assert.Equal(t, "Question 3", tr.Append(CategoryQuestion, "q3"))
}

func TestTranscript_CategoriesCountIndependently(t *testing.T) {
	tr := NewTranscript()

	tr.Append(CategoryQuestion, "q1")
	tr.Append(CategoryAnswer, "a1")
	tr.Append(CategoryFeedback, "f1")
	tr.Append(CategoryQuestion, "q2")
	tr.Append(CategoryFollowupQuestion, "fq1")
	tr.Append(CategoryFollowupAnswer, "fa1")
	tr.Append(CategoryAnswer, "a2")

	entries := tr.Entries()
	assert.Equal(t, "q1", entries["Question 1"])
	assert.Equal(t, "q2", entries["Question 2"])
	assert.Equal(t, "a1", entries["Candidate Answer 1"])
	assert.Equal(t, "a2", entries["Candidate Answer 2"])
	assert.Equal(t, "f1", entries["Question_Feedback 1"])
	assert.Equal(t, "fq1", entries["Followup_Question 1"])
	assert.Equal(t, "fa1", entries["Followup_Answer 1"])
	assert.Equal(t, 7, tr.Len())
}

func TestTranscript_EntriesReturnsCopy(t *testing.T) {
	tr := NewTranscript()
	tr.SetFixed(LabelWelcome, "hello")

	entries := tr.Entries()
	entries[LabelWelcome] = "mutated"
	entries["Injected"] = "x"

	assert.Equal(t, "hello", tr.Entries()[LabelWelcome])
	assert.Equal(t, 1, tr.Len())
}
