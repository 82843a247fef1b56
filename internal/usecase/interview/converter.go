package interview

import (
	"encoding/base64"
	"errors"

	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/interview"
)

// toStepResponse converts an orchestrator step into the wire DTO. A
// persistence error accompanying a successful step is surfaced as a warning
// rather than failing the candidate-visible step.
func (uc *InterviewUsecase) toStepResponse(sessionID string, orch *interview.Orchestrator, res *interview.StepResult, stepErr error) *entity.StepResponse {
	resp := &entity.StepResponse{
		SessionID:        sessionID,
		Stage:            string(res.Stage),
		Text:             res.Text,
		NextStage:        string(res.NextStage),
		ActiveQuestion:   res.ActiveQuestion,
		MicOpen:          orch.MicOpen(),
		RemainingSeconds: orch.Remaining(),
		Done:             res.Done,
		Ranking:          res.Ranking,
	}

	if len(res.Audio) > 0 {
		resp.Audio = base64.StdEncoding.EncodeToString(res.Audio)
	}

	if stepErr != nil && errors.Is(stepErr, entity.ErrPersistenceFailed) {
		resp.Warning = stepErr.Error()
	}

	return resp
}
