package gateway

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ttsInputCap bounds how much article text is read aloud per request.
const ttsInputCap = 1000

// GenerateImage produces a blog header image for the prompt and returns it
// as a PNG data URI. An empty string means the model answered without an
// image part; callers keep their placeholder. The 16:9 banner framing is
// requested in the prompt itself.
func (g *Gateway) GenerateImage(ctx context.Context, prompt string) (string, error) {
	full := fmt.Sprintf(
		"Professional, modern, high-quality blog header image for: %s. Artistic, clean, minimal style. Wide 16:9 banner composition.",
		prompt)

	result, err := g.generate(ctx, "generate_image", g.cfg.ImageModel, full, nil)
	if err != nil {
		return "", err
	}

	for _, part := range candidateParts(result) {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			mime := part.InlineData.MIMEType
			if mime == "" || !strings.HasPrefix(mime, "image/") {
				mime = "image/png"
			}
			return fmt.Sprintf("data:%s;base64,%s", mime,
				base64.StdEncoding.EncodeToString(part.InlineData.Data)), nil
		}
	}
	return "", nil
}

// TextToSpeech reads the article aloud with the Kore voice and returns the
// base64 PCM payload (24 kHz mono, 16-bit little endian).
func (g *Gateway) TextToSpeech(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf("اقرأ هذا المقال بصوت رزين واحترافي: %s",
		truncateRunes(text, ttsInputCap))

	result, err := g.generate(ctx, "text_to_speech", g.cfg.TTSModel, prompt,
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: "Kore"},
				},
			},
		})
	if err != nil {
		return "", err
	}

	for _, part := range candidateParts(result) {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return base64.StdEncoding.EncodeToString(part.InlineData.Data), nil
		}
	}
	return "", nil
}

func candidateParts(result *genai.GenerateContentResponse) []*genai.Part {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil
	}
	return result.Candidates[0].Content.Parts
}
