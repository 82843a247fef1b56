package validator

import (
	"mime/multipart"
	"testing"

	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestValidateStartInterview(t *testing.T) {
	v := NewValidator(1024)

	err := v.ValidateStartInterview(&entity.StartInterviewRequest{CandidateID: "cand-1"})
	assert.NoError(t, err)

	err = v.ValidateStartInterview(&entity.StartInterviewRequest{})
	assert.ErrorIs(t, err, entity.ErrMissingField)
}

func TestValidateAdvance(t *testing.T) {
	v := NewValidator(1024)

	err := v.ValidateAdvance(&entity.AdvanceRequest{Stage: "compare", Text: "an answer"})
	assert.NoError(t, err)

	// Empty text is a valid answer; only the stage tag is mandatory.
	err = v.ValidateAdvance(&entity.AdvanceRequest{Stage: "compare"})
	assert.NoError(t, err)

	err = v.ValidateAdvance(&entity.AdvanceRequest{Text: "an answer"})
	assert.ErrorIs(t, err, entity.ErrMissingField)
}

func TestValidateAudioUpload(t *testing.T) {
	v := NewValidator(1024)

	tests := []struct {
		name    string
		header  *multipart.FileHeader
		wantErr error
	}{
		{
			name:   "wav within limit",
			header: &multipart.FileHeader{Filename: "answer.wav", Size: 512},
		},
		{
			name:   "webm within limit",
			header: &multipart.FileHeader{Filename: "answer.webm", Size: 1024},
		},
		{
			name:    "nil header",
			header:  nil,
			wantErr: entity.ErrMissingField,
		},
		{
			name:    "disallowed extension",
			header:  &multipart.FileHeader{Filename: "answer.txt", Size: 10},
			wantErr: entity.ErrInvalidExtension,
		},
		{
			name:    "uppercase extension allowed",
			header:  &multipart.FileHeader{Filename: "ANSWER.WAV", Size: 10},
			wantErr: nil,
		},
		{
			name:    "too large",
			header:  &multipart.FileHeader{Filename: "answer.wav", Size: 2048},
			wantErr: entity.ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateAudioUpload(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
