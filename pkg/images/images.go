// Package images wraps the Gemini image model behind a stateless client.
// Each call is expected to produce a brand-new composition even for a
// repeated prompt; callers must not assume idempotence.
package images

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"

	"google.golang.org/genai"
)

type Style string

const (
	StyleColoringPage Style = "coloring_page"
	StyleIllustration Style = "illustration"
)

func (s Style) Valid() bool {
	return s == StyleColoringPage || s == StyleIllustration
}

// ErrNoImage means the model call succeeded but returned no raster.
var ErrNoImage = errors.New("no image generated")

type Config struct {
	APIKey string
	Model  string
}

type Client struct {
	client *genai.Client
	model  string
}

// NewClient builds a Gemini image client from an explicit credential.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Model == "" {
		cfg.Model = "gemini-3-pro-image-preview"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, err
	}
	return &Client{client: client, model: cfg.Model}, nil
}

// Request describes one page-art generation.
type Request struct {
	Prompt      string
	Style       Style
	AspectRatio string

	// ReferenceImage is an optional data URI used purely as a style anchor.
	ReferenceImage string

	// Instructions carries the user's custom additions for this page.
	Instructions string
}

// Generate produces a single PNG for the request.
func (c *Client) Generate(ctx context.Context, req Request) ([]byte, error) {
	prompt := visualPrompt(req)

	var parts []*genai.Part
	if req.ReferenceImage != "" {
		data, mime, err := decodeDataURI(req.ReferenceImage)
		if err != nil {
			return nil, fmt.Errorf("bad reference image: %w", err)
		}
		parts = append(parts, genai.NewPartFromBytes(data, mime))
		prompt += " Use the provided image ONLY as a style reference for artistic technique and mascot appearance. Create a completely new composition for the subject."
	}
	parts = append(parts, genai.NewPartFromText(prompt))

	aspect := req.AspectRatio
	if aspect == "" {
		aspect = "3:4"
	}
	config := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{
			AspectRatio: aspect,
			ImageSize:   "1K",
		},
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	resp, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		config,
	)
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}
	return nil, ErrNoImage
}

func visualPrompt(req Request) string {
	var prompt string
	switch req.Style {
	case StyleIllustration:
		prompt = fmt.Sprintf("Generate a BRAND NEW, unique vibrant children's book illustration. SUBJECT: %s. Bright cheerful colors, clean vector style.", req.Prompt)
	default:
		prompt = fmt.Sprintf("Generate a BRAND NEW, unique high-contrast black and white line art coloring page. SUBJECT: %s. Clean lines, white background, no shading.", req.Prompt)
	}
	if req.Instructions != "" {
		prompt += " IMPORTANT USER INSTRUCTION: " + req.Instructions
	}
	return prompt
}

var dataURIRX = regexp.MustCompile(`^data:(image/\w+);base64,`)

func decodeDataURI(uri string) ([]byte, string, error) {
	m := dataURIRX.FindStringSubmatch(uri)
	mime := "image/png"
	if m != nil {
		mime = m[1]
		uri = uri[len(m[0]):]
	}
	data, err := base64.StdEncoding.DecodeString(uri)
	if err != nil {
		return nil, "", err
	}
	return data, mime, nil
}

// DataURI wraps PNG bytes the way browser clients consume them.
func DataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
