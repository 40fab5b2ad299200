package generativeAI

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/wanderroute/go-itinerary-planner/internal/api/planner"
)

var _ planner.TagExtractor = (*GeminiExtractor)(nil)

const extractPromptTemplate = `You are an interest extractor for a Beijing sightseeing planner.
From the visitor request below, return a JSON array of short tokens: known POI ids
(for example "gugong", "tiantan") when a sight is named explicitly, otherwise
lowercase English interest tags (for example "history", "temple", "food").
Return the JSON array only, no prose.

Visitor personality (may be empty): %s
Visitor request: %s`

// GeminiExtractor pulls POI ids and interest tags out of free text via
// Gemini. It is an optional collaborator: the planner falls back to pure
// keyword inference when extraction fails or no extractor is wired.
type GeminiExtractor struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGeminiExtractor builds the extractor. The API key comes from the
// caller (main reads GOOGLE_GEMINI_API_KEY).
func NewGeminiExtractor(ctx context.Context, apiKey, model string, logger *slog.Logger) (*GeminiExtractor, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "NewGeminiExtractor")
	defer span.End()

	if apiKey == "" {
		err := fmt.Errorf("gemini api key is not set")
		span.RecordError(err)
		span.SetStatus(codes.Error, "API key not set")
		return nil, err
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return nil, err
	}

	span.SetStatus(codes.Ok, "Gemini extractor created")
	return &GeminiExtractor{client: client, model: model, logger: logger}, nil
}

func (e *GeminiExtractor) ExtractTags(ctx context.Context, freeText, personality string) ([]string, error) {
	interactionID := uuid.New().String()
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "ExtractTags", trace.WithAttributes(
		attribute.String("interaction.id", interactionID),
		attribute.String("model", e.model),
		attribute.Int("text.length", len(freeText)),
	))
	defer span.End()

	prompt := fmt.Sprintf(extractPromptTemplate, personality, freeText)
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.1),
		ResponseMIMEType: "application/json",
	}

	result, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), config)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate content")
		return nil, fmt.Errorf("gemini extraction: %w", err)
	}

	tokens, err := parseTokens(result.Text())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to parse model output")
		return nil, fmt.Errorf("gemini extraction: %w", err)
	}

	e.logger.DebugContext(ctx, "Extracted interest tokens",
		slog.String("interaction_id", interactionID),
		slog.Int("tokens", len(tokens)),
	)
	span.SetAttributes(attribute.Int("tokens.count", len(tokens)))
	span.SetStatus(codes.Ok, "Tokens extracted")
	return tokens, nil
}

// parseTokens decodes the model's JSON array, tolerating code fences and
// dropping empty entries.
func parseTokens(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw []string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("unmarshal token array: %w", err)
	}
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens, nil
}
