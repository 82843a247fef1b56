package validator

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/entity"
)

var AllowedAudioExtensions = map[string]bool{
	".wav":  true,
	".webm": true,
	".ogg":  true,
	".mp3":  true,
	".m4a":  true,
}

// Validator validates incoming interview requests
type Validator struct {
	maxAudioFileSize int64
}

func NewValidator(maxAudioFileSize int64) *Validator {
	return &Validator{maxAudioFileSize: maxAudioFileSize}
}

func (v *Validator) ValidateStartInterview(req *entity.StartInterviewRequest) error {
	if req.CandidateID == "" {
		return fmt.Errorf("%w: candidate_id", entity.ErrMissingField)
	}
	return nil
}

func (v *Validator) ValidateAdvance(req *entity.AdvanceRequest) error {
	if req.Stage == "" {
		return fmt.Errorf("%w: stage", entity.ErrMissingField)
	}
	return nil
}

// ValidateAudioUpload validates a recorded answer before transcription.
func (v *Validator) ValidateAudioUpload(fh *multipart.FileHeader) error {
	if fh == nil {
		return fmt.Errorf("%w: audio", entity.ErrMissingField)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := AllowedAudioExtensions[ext]; !ok {
		return fmt.Errorf("%w: %s (allowed: wav, webm, ogg, mp3, m4a)", entity.ErrInvalidExtension, ext)
	}

	if fh.Size > v.maxAudioFileSize {
		return fmt.Errorf("%w: file '%s' is %d bytes (max %d)", entity.ErrFileTooLarge, fh.Filename, fh.Size, v.maxAudioFileSize)
	}

	return nil
}
