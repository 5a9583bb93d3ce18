package inference

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"google.golang.org/genai"
)

type GeminiInferencer struct {
	client *genai.Client
	model  string
	schema *genai.Schema
	search bool
}

// NewGeminiInferencer builds a Gemini-backed inferencer with an explicit
// API key; no process-wide client is kept anywhere else. An optional
// response schema constrains the JSON the model is allowed to emit.
func NewGeminiInferencer(ctx context.Context, apiKey, model string, schema *genai.Schema) (*GeminiInferencer, error) {
	if model == "" {
		model = "gemini-3-flash-preview"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &GeminiInferencer{
		client: client,
		model:  model,
		schema: schema,
	}, nil
}

// EnableSearch turns on the Google Search tool so destination facts come
// from current sources rather than model memory alone.
func (o *GeminiInferencer) EnableSearch() {
	o.search = true
}

// Infer sends the prompt to Gemini and returns the raw text output.
func (o *GeminiInferencer) Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error) {
	if params == nil {
		params = new(openai.ChatCompletionNewParams)
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleModel),
		ResponseMIMEType:  "application/json",
		MaxOutputTokens:   int32(cmp.Or(params.MaxCompletionTokens.Value, 8192)),
	}
	if o.schema != nil {
		config.ResponseSchema = o.schema
	}
	if o.search {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	result, err := o.client.Models.GenerateContent(
		ctx,
		cmp.Or(params.Model, o.model),
		genai.Text(user),
		config,
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return result.Text(), nil
}

func (o *GeminiInferencer) Verify(ctx context.Context, result string) (bool, error) {
	if result == "" {
		return false, errors.New("empty result")
	}
	return true, nil
}
