package entity

// LLMGenerateRequest is the payload sent to the generation service. Persona
// selects the stage-tuned model configuration on the service side; MaxTokens
// bounds the completion length per stage.
type LLMGenerateRequest struct {
	Persona   string `json:"persona"`
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type LLMGenerateResponse struct {
	Text string `json:"text"`
}

type ASRTranscribeResponse struct {
	Transcription string `json:"transcription"`
}

type TTSSynthesizeRequest struct {
	Text string `json:"text"`
}

// TTSSynthesizeResponse carries the synthesized speech as base64 audio.
type TTSSynthesizeResponse struct {
	Audio string `json:"audio"`
}
