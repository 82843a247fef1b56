package interview

import (
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/repository"
)

// compositeStore bundles the persistence repositories into the single Store
// the orchestrator consumes.
type compositeStore struct {
	repository.ConversationRepository
	repository.RankingRepository
}

func newCompositeStore(conv repository.ConversationRepository, rank repository.RankingRepository) *compositeStore {
	return &compositeStore{
		ConversationRepository: conv,
		RankingRepository:      rank,
	}
}
