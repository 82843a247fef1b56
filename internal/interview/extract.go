package interview

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"
)

// The marker formats below are an external contract with the generation
// service's prompt templates. Parsing is isolated here so the contract can
// be swapped for structured output later without touching the state machine.

var (
	coverageRe = regexp.MustCompile(`\s*Coverage=(\d{1,3})`)
	rankingRe  = regexp.MustCompile(`(?s)Lan=(\d{1,2})\s+Sub=(\d{1,2})\s+Beh=(\d{1,2})\s+Sum=(.+)`)
)

// ParseCoverage extracts the 0-100 coverage score from feedback text and
// returns the feedback with the marker stripped. ok is false when the
// marker is absent or out of range; the stripped text is returned either
// way so the feedback can still be spoken.
func ParseCoverage(text string) (int, string, bool) {
	m := coverageRe.FindStringSubmatchIndex(text)
	if m == nil {
		return 0, strings.TrimSpace(text), false
	}

	score, err := strconv.Atoi(text[m[2]:m[3]])
	stripped := strings.TrimSpace(text[:m[0]] + text[m[1]:])
	if err != nil || score < 0 || score > 100 {
		return 0, stripped, false
	}

	return score, stripped, true
}

// ParseRanking extracts the four-field ranking tuple from the summary
// response. It yields no ranking when any marker is missing; partial or
// guessed scores are never produced.
func ParseRanking(text string) (*entity.Ranking, bool) {
	m := rankingRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	lan, err1 := strconv.Atoi(m[1])
	sub, err2 := strconv.Atoi(m[2])
	beh, err3 := strconv.Atoi(m[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, false
	}

	return &entity.Ranking{
		Fluency:          lan,
		SubjectKnowledge: sub,
		Behavior:         beh,
		Feedback:         strings.TrimSpace(m[4]),
	}, true
}
