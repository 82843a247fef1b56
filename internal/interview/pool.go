package interview

import (
	"math/rand"
	"time"

	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"
)

// QuestionPool holds the level-and-role-specific questions of one session
// and supports without-replacement uniform random draws. Drawn questions are
// never re-added.
type QuestionPool struct {
	rng       *rand.Rand
	items     []entity.QuestionItem
	lastAsked *entity.QuestionItem
}

// NewQuestionPool builds a pool from the fetched question list. An empty
// list is a configuration error, not a silent empty interview. A nil rng
// gets a time-seeded source; tests inject a fixed seed.
func NewQuestionPool(items []entity.QuestionItem, rng *rand.Rand) (*QuestionPool, error) {
	if len(items) == 0 {
		return nil, entity.ErrConfiguration
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	copied := make([]entity.QuestionItem, len(items))
	copy(copied, items)

	return &QuestionPool{rng: rng, items: copied}, nil
}

// Draw removes and returns a uniformly random question. ok is false once
// the pool is exhausted; exhaustion is the sole termination signal of the
// main-question loop.
func (p *QuestionPool) Draw() (entity.QuestionItem, bool) {
	if len(p.items) == 0 {
		return entity.QuestionItem{}, false
	}

	idx := p.rng.Intn(len(p.items))
	item := p.items[idx]
	p.items = append(p.items[:idx], p.items[idx+1:]...)
	p.lastAsked = &item

	return item, true
}

// HasRemaining reports whether any main question is left to draw.
func (p *QuestionPool) HasRemaining() bool {
	return len(p.items) > 0
}

// Remaining returns the number of questions left in the pool.
func (p *QuestionPool) Remaining() int {
	return len(p.items)
}

// LastAsked returns the most recently drawn question, or nil before the
// first draw. The active question is owned exclusively by the session.
func (p *QuestionPool) LastAsked() *entity.QuestionItem {
	return p.lastAsked
}
