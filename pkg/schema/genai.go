package schema

import "google.golang.org/genai"

// DestinationContentGenAISchema is the response schema handed to Gemini.
// Built by hand because the Gemini API takes its own schema dialect; keep
// the required set in sync with book.DestinationContent.
func DestinationContentGenAISchema() *genai.Schema {
	str := &genai.Schema{Type: genai.TypeString}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"continent":    str,
			"catchy_title": str,
			"introduction": str,
			"fun_facts":    {Type: genai.TypeArray, Items: str},
			"landmarks": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":          str,
						"description":   str,
						"activity_type": str,
						"visual_prompt": str,
					},
					Required: []string{"name", "description"},
				},
			},
			"traditions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":          str,
						"description":   str,
						"activity_idea": str,
						"visual_prompt": str,
					},
					Required: []string{"name", "description"},
				},
			},
			"foods": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":          str,
						"description":   str,
						"visual_prompt": str,
					},
					Required: []string{"name"},
				},
			},
			"language": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"phrases": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"local":    str,
								"english":  str,
								"phonetic": str,
							},
						},
					},
					"game_idea": str,
				},
			},
			"history": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"event_or_symbol": str,
						"summary":         str,
						"activity_idea":   str,
						"visual_prompt":   str,
					},
				},
			},
			"wildlife": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":          str,
						"description":   str,
						"activity_idea": str,
						"visual_prompt": str,
					},
				},
			},
			"mascot_name": str,
			"mascot_type": str,
			"symbols": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"flag_description": str,
					"animal":           str,
					"flower":           str,
				},
			},
			"transport": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":          str,
						"type":          str,
						"visual_prompt": str,
					},
				},
			},
		},
		Required: []string{
			"continent", "catchy_title", "introduction", "fun_facts",
			"landmarks", "traditions", "foods", "language", "history",
			"wildlife", "mascot_name", "mascot_type", "symbols", "transport",
		},
	}
}
