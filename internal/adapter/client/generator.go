package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"dispute-core/internal/domain/entity"

	"google.golang.org/genai"
)

var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary":           {Type: genai.TypeString},
		"analysis":          {Type: genai.TypeString},
		"eligibilityStatus": {Type: genai.TypeString},
		"recommendedAction": {Type: genai.TypeString},
		"nextSteps":         {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"summary", "analysis", "eligibilityStatus", "recommendedAction", "nextSteps"},
}

type GeminiGenerator struct {
	client *genai.Client
	model  string
	rules  *entity.RuleSet
}

func NewGeminiGenerator(c *genai.Client, model string, rules *entity.RuleSet) *GeminiGenerator {
	return &GeminiGenerator{client: c, model: model, rules: rules}
}

func (g *GeminiGenerator) instruction(classification *entity.ClassificationResult) string {
	var b strings.Builder
	b.WriteString(`You are a credit dispute education assistant.
Produce a structured decision-support response with all five fields populated:
summary, analysis, eligibilityStatus, recommendedAction and nextSteps.
You are not an attorney and must never impersonate one or give legal advice.
Never promise, predict or guarantee any outcome or score change.`)
	b.WriteString("\n\nThe following phrases are forbidden and must not appear in any field:\n")
	for _, p := range g.rules.ForbiddenPhrases {
		b.WriteString("- " + p + "\n")
	}
	if classification != nil {
		// The generator must echo the classifier's verdict verbatim.
		fmt.Fprintf(&b, "\nThe eligibilityStatus field must be exactly %q.\n", classification.Eligibility)
	}
	return b.String()
}

func (g *GeminiGenerator) Generate(ctx context.Context, input string, dctx *entity.DisputeContext, knowledge string, classification *entity.ClassificationResult) (*entity.ResponseContent, error) {
	prompt := buildPrompt(input, dctx, knowledge)
	if classification != nil {
		if b, err := json.Marshal(classification); err == nil {
			prompt += "\n\nEligibility judgment:\n" + string(b)
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(g.instruction(classification), genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    responseSchema,
		Temperature:       genai.Ptr[float32](0.3),
	})
	if err != nil {
		return nil, fmt.Errorf("response generation failed: %w", err)
	}

	var content entity.ResponseContent
	if err := json.Unmarshal([]byte(resp.Text()), &content); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrModelOutputParse, err)
	}
	return &content, nil
}
