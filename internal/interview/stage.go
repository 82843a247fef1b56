package interview

import (
	"fmt"

	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"
)

// Stage is a named step of the interview state machine.
type Stage string

const (
	StageWelcome         Stage = "welcome"
	StageIntroduction    Stage = "introduction"
	StageStart           Stage = "start"
	StageGenerate        Stage = "generate"
	StageCompare         Stage = "compare"
	StageFollowup        Stage = "followup"
	StageFollowupCompare Stage = "followup_compare"
	StageInterviewEnd    Stage = "interview_end"
	StageSummary         Stage = "summary"
)

// ParseStage resolves a wire tag into a Stage. The hyphenated follow-up
// compare tag is accepted as an alias for backwards compatibility with the
// original UI events.
func ParseStage(tag string) (Stage, error) {
	switch tag {
	case "welcome":
		return StageWelcome, nil
	case "introduction":
		return StageIntroduction, nil
	case "start":
		return StageStart, nil
	case "generate":
		return StageGenerate, nil
	case "compare":
		return StageCompare, nil
	case "followup":
		return StageFollowup, nil
	case "followup_compare", "followup-compare":
		return StageFollowupCompare, nil
	case "interview_end":
		return StageInterviewEnd, nil
	case "summary":
		return StageSummary, nil
	default:
		return "", fmt.Errorf("%w: %q", entity.ErrUnknownStage, tag)
	}
}

// ConsumesText reports whether the stage interprets the candidate's text.
// An empty string is a valid (possibly wrong) answer for these stages,
// never "no input".
func (s Stage) ConsumesText() bool {
	switch s {
	case StageIntroduction, StageStart, StageCompare, StageFollowupCompare:
		return true
	default:
		return false
	}
}

// ExpectsSpeech reports whether the microphone should reopen for the
// candidate once the stage's spoken output finished playing.
func (s Stage) ExpectsSpeech() bool {
	switch s {
	case StageWelcome, StageIntroduction, StageGenerate, StageFollowup:
		return true
	default:
		return false
	}
}

// Speaks reports whether the stage's produced text is scheduled for speech
// synthesis.
func (s Stage) Speaks() bool {
	switch s {
	case StageWelcome, StageGenerate, StageCompare, StageFollowup, StageFollowupCompare, StageInterviewEnd:
		return true
	default:
		return false
	}
}
