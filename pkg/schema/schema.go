package schema

import (
	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"

	"wanderbook/pkg/book"
)

func generateSchema[T any]() any {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return r.Reflect(v)
}

var DestinationContentSchema = generateSchema[book.DestinationContent]()

// StructuredOutputsResponseFormat constrains OpenAI-compatible providers to
// emit a DestinationContent object.
func StructuredOutputsResponseFormat() openai.ChatCompletionNewParamsResponseFormatUnion {
	p := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "destination_content",
		Description: openai.String("Cultural and geographical facts about a travel destination for a children's activity book"),
		Schema:      DestinationContentSchema,
		Strict:      openai.Bool(true),
	}
	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: p},
	}
}
