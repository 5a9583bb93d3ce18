package inference

import (
	"context"

	"github.com/openai/openai-go/v3"
)

// Inferencer runs one text-model call. Providers translate the
// OpenAI-shaped params into whatever their own API expects.
type Inferencer interface {
	Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error)
	Verify(ctx context.Context, result string) (bool, error)
}
