package interview

import (
	"context"
)

// Recorder converts recorded candidate audio into text.
type Recorder interface {
	Transcribe(ctx context.Context, audioData []byte, filename string) (string, error)
}
