package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go/v3"

	"wanderbook/pkg/book"
	"wanderbook/pkg/inference"
	"wanderbook/pkg/schema"
	"wanderbook/pkg/utils"
)

// Generator turns one ActivityInput into a complete activity book: one
// content-generation call, then the deterministic assembly step. It holds
// no state between runs.
type Generator struct {
	inf inference.Inferencer
}

func New(inf inference.Inferencer) *Generator {
	return &Generator{inf: inf}
}

// Generate runs one book generation. It either returns a complete
// 42-page book or an error; no partial book is ever produced.
func (g *Generator) Generate(ctx context.Context, input book.ActivityInput) (*book.ActivityBookResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user := userPrompt(input)
	params := &openai.ChatCompletionNewParams{
		MaxCompletionTokens: openai.Int(completionBudget(masterPrompt + user)),
		ResponseFormat:      schema.StructuredOutputsResponseFormat(),
	}

	out, err := g.inf.Infer(ctx, params, masterPrompt, user)
	if err != nil {
		if IsCredentialError(err) {
			return nil, fmt.Errorf("%w: %v", ErrCredential, err)
		}
		return nil, fmt.Errorf("content generation failed: %w", err)
	}

	out = utils.CleanJSON(out)
	if ok, err := g.inf.Verify(ctx, out); err != nil || !ok {
		return nil, ErrNoContent
	}

	var content book.DestinationContent
	if err := json.Unmarshal([]byte(out), &content); err != nil {
		log.Debugf("undecodable model output: %s", utils.LimitStr(out, 200))
		return nil, fmt.Errorf("decode destination content: %w", err)
	}

	pages := book.Assemble(input, content)
	log.Info("book assembled", "destination", input.Destination(), "pages", len(pages))

	return &book.ActivityBookResponse{Meta: input, Pages: pages}, nil
}

func userPrompt(input book.ActivityInput) string {
	var b strings.Builder
	b.WriteString("Destination: ")
	if input.DestinationCity != "" {
		b.WriteString(input.DestinationCity)
		b.WriteString(", ")
	}
	b.WriteString(input.DestinationCountry)
	fmt.Fprintf(&b, "\nChild age: %d", input.Age)
	level := input.LanguageLevel
	if level == "" {
		level = book.EarlyReader
	}
	fmt.Fprintf(&b, "\nTONE: Cheerful, simple, and educational (Reading Level: %s).", level)
	if len(input.ActivityMix) > 0 {
		fmt.Fprintf(&b, "\nFavorite activity kinds: %s.", strings.Join(input.ActivityMix, ", "))
	}
	return b.String()
}

// completionBudget sizes the output allowance from the prompt's token
// count; the full content payload is usually several times the prompt.
func completionBudget(prompt string) int64 {
	tokens, err := utils.NumTokens(prompt)
	if err != nil || tokens <= 0 {
		return 8192
	}
	budget := int64(tokens) * 16
	if budget < 8192 {
		budget = 8192
	}
	return budget
}
