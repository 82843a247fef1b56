package interview

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers interview routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/interviews", func(r chi.Router) {
		r.Post("/", h.StartInterview)
		r.Get("/{id}", h.GetSession)
		r.Post("/{id}/advance", h.Advance)
		r.Post("/{id}/audio", h.SubmitAudioAnswer)
		r.Post("/{id}/playback-complete", h.PlaybackComplete)
		r.Post("/{id}/end", h.EndInterview)
		r.Get("/{id}/transcript", h.GetTranscript)
	})
}
