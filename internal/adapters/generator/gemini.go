package generator

import (
	"context"
	"fmt"

	"retouch/internal/core/domain"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// Gemini edits images through the Gemini API. The credential is injected at
// construction; the adapter never reads process environment itself.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating gemini client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) EditImage(ctx context.Context, request domain.EditRequest) ([]byte, error) {
	data, err := domain.DecodePayload(request.Payload)
	if err != nil {
		return nil, err
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(request.Prompt),
			{InlineData: &genai.Blob{MIMEType: request.MediaType, Data: data}},
		}, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}

	log.Debug().Str("model", g.model).Int("bytes", len(data)).Msg("sending edit request to gemini")

	response, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	return firstInlineImage(response)
}

// firstInlineImage scans the response parts in order and returns the bytes of
// the first part carrying inline image data.
func firstInlineImage(response *genai.GenerateContentResponse) ([]byte, error) {
	if response == nil || len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return nil, domain.ErrNoImageData
	}

	for _, part := range response.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}

	return nil, domain.ErrNoImageData
}
