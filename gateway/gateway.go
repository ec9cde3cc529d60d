// Package gateway wraps the Gemini API behind stateless request/response
// operations. No retries, no caching, no streaming: every call is a single
// prompt in, normalized value out.
package gateway

import (
	"context"
	"strings"
	"time"

	"google.golang.org/genai"

	"eliteblog/logger"
	"eliteblog/models"
	"eliteblog/trace"
)

// Config is injected at construction; the gateway never reads ambient
// environment state.
type Config struct {
	Credential string
	TextModel  string
	ProModel   string
	ImageModel string
	TTSModel   string
}

// LogSink receives one record per gateway call. Implementations may persist
// them (Mongo) or drop them (NopSink).
type LogSink interface {
	Record(ctx context.Context, log models.AILog)
}

// NopSink discards call records.
type NopSink struct{}

func (NopSink) Record(context.Context, models.AILog) {}

// Gateway issues Gemini calls. A nil client means no credential was
// configured and every operation fails fast with MissingCredential.
type Gateway struct {
	cfg    Config
	client *genai.Client
	sink   LogSink
}

// New builds a gateway. A missing credential is not an error here: the
// application still boots, and each call reports the configuration problem.
func New(ctx context.Context, cfg Config, sink LogSink) (*Gateway, error) {
	if sink == nil {
		sink = NopSink{}
	}
	g := &Gateway{cfg: cfg, sink: sink}
	if cfg.Credential == "" {
		return g, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.Credential})
	if err != nil {
		return nil, err
	}
	g.client = client
	return g, nil
}

// Ready reports whether a credential is configured.
func (g *Gateway) Ready() bool { return g.client != nil }

// generate runs one GenerateContent call with timing and call logging.
func (g *Gateway) generate(ctx context.Context, op, model, prompt string, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if g.client == nil {
		return nil, errMissingCredential(op)
	}

	requestID, spanID := trace.NextSpanID(ctx)
	start := time.Now()
	result, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	logger.InfoWithFields("gateway call", logger.Fields{
		"operation":   op,
		"model":       model,
		"duration_ms": time.Since(start).Milliseconds(),
		"success":     err == nil,
		"request_id":  requestID,
		"span_id":     spanID,
	})
	entry := models.AILog{
		Operation:   op,
		ModelName:   model,
		DurationMs:  time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestedAt: start,
		CompletedAt: time.Now(),
	}
	if err != nil {
		ge := classify(op, err)
		entry.ErrorKind = string(ge.Kind)
		g.sink.Record(ctx, entry)
		return nil, ge
	}
	if result != nil && result.UsageMetadata != nil {
		entry.InputTokens = int64(result.UsageMetadata.PromptTokenCount)
		entry.OutputTokens = int64(result.UsageMetadata.CandidatesTokenCount)
		entry.TotalTokens = int64(result.UsageMetadata.TotalTokenCount)
	}
	g.sink.Record(ctx, entry)
	return result, nil
}

// truncateRunes caps s at max runes. Prompt inputs are capped rune-safe so
// multi-byte text is never split mid-character.
func truncateRunes(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}

// cleanJSON strips a markdown code fence the model sometimes wraps around
// JSON output despite instructions.
func cleanJSON(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}

// groundingSources pulls web source URLs out of a grounded response for
// citation. Missing metadata yields an empty list.
func groundingSources(result *genai.GenerateContentResponse) []models.GroundingReference {
	var out []models.GroundingReference
	if result == nil || len(result.Candidates) == 0 {
		return out
	}
	md := result.Candidates[0].GroundingMetadata
	if md == nil {
		return out
	}
	for _, chunk := range md.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		out = append(out, models.GroundingReference{
			URI:   chunk.Web.URI,
			Title: chunk.Web.Title,
		})
	}
	return out
}
