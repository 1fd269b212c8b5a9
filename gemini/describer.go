// Package gemini provides an LLM-backed implementation of
// gcsadmin.Describer using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gcsadmin "github.com/squareinnov8/gcs-admin"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is specified.
const DefaultModel = "gemini-2.5-flash"

// maxBodyRunes caps how much of the document is sent to the model.
// Excerpts and tags don't improve past a few thousand words.
const maxBodyRunes = 24000

// Ensure Describer implements gcsadmin.Describer at compile time.
var _ gcsadmin.Describer = (*Describer)(nil)

// Describer derives publishing metadata using Google Gemini.
type Describer struct {
	client *genai.Client
	model  string
}

// NewDescriber creates a new Describer.
func NewDescriber(client *genai.Client, model string) *Describer {
	if model == "" {
		model = DefaultModel
	}
	return &Describer{client: client, model: model}
}

// Describe returns suggested metadata for the document.
func (d *Describer) Describe(ctx context.Context, title, body string) (*gcsadmin.Metadata, error) {
	if strings.TrimSpace(body) == "" {
		return nil, gcsadmin.Errorf(gcsadmin.EINVALID, "document body required")
	}

	prompt := BuildUserPrompt(title, body)
	config := BuildConfig()

	result, err := d.client.Models.GenerateContent(ctx, d.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, gcsadmin.Errorf(gcsadmin.EINTERNAL, "gemini returned nil result")
	}

	var meta gcsadmin.Metadata
	if err := json.Unmarshal([]byte(result.Text()), &meta); err != nil {
		return nil, gcsadmin.Errorf(gcsadmin.EINTERNAL, "gemini returned invalid metadata JSON: %v", err)
	}

	return &meta, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// The response is constrained to a JSON object matching
// gcsadmin.Metadata.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an editorial assistant preparing CMS metadata for an article. Derive the metadata only from the article content provided.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"excerpt": {
					Type:        genai.TypeString,
					Description: "One to two sentence summary suitable as a post excerpt.",
				},
				"tags": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"categories": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"excerpt"},
		},
	}
}

// BuildUserPrompt builds the user prompt containing the article.
func BuildUserPrompt(title, body string) string {
	if runes := []rune(body); len(runes) > maxBodyRunes {
		body = string(runes[:maxBodyRunes])
	}

	var sb strings.Builder
	sb.WriteString("<article>\n")
	if title != "" {
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
	}
	fmt.Fprintf(&sb, "<content>%s</content>\n", body)
	sb.WriteString("</article>\n\n")
	sb.WriteString("Suggest an excerpt, tags, and categories for publishing this article.")
	return sb.String()
}
