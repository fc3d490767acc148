package client

import (
	"context"
	"encoding/json"
	"fmt"

	"dispute-core/internal/domain/entity"

	"google.golang.org/genai"
)

const classifierInstruction = `You are a credit dispute eligibility classifier.
Judge whether the described credit-report item may legitimately be disputed.
You must answer with exactly one eligibility category:
"eligible", "conditionally_eligible", "not_eligible" or "insufficient_information".
Base the judgment only on the provided input, context and reference material.
List concrete factors, any evidence still required, and any compliance concerns.
Never invent account details that were not provided.`

// classificationSchema constrains the model so it cannot return free text.
var classificationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"eligibility": {
			Type: genai.TypeString,
			Enum: []string{
				string(entity.EligibilityEligible),
				string(entity.EligibilityConditional),
				string(entity.EligibilityNotEligible),
				string(entity.EligibilityInsufficientInfo),
			},
		},
		"confidence": {Type: genai.TypeNumber},
		"reasoning": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"factors":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"requiredEvidence": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"complianceFlags":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
			Required: []string{"factors", "requiredEvidence", "complianceFlags"},
		},
	},
	Required: []string{"eligibility", "confidence", "reasoning"},
}

type GeminiClassifier struct {
	client *genai.Client
	model  string
}

func NewGeminiClassifier(c *genai.Client, model string) *GeminiClassifier {
	return &GeminiClassifier{client: c, model: model}
}

func (g *GeminiClassifier) Classify(ctx context.Context, input string, dctx *entity.DisputeContext, knowledge string) (*entity.ClassificationResult, error) {
	prompt := buildPrompt(input, dctx, knowledge)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(classifierInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    classificationSchema,
		Temperature:       genai.Ptr[float32](0.1),
	})
	if err != nil {
		return nil, fmt.Errorf("classifier generation failed: %w", err)
	}

	var result entity.ClassificationResult
	if err := json.Unmarshal([]byte(resp.Text()), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrModelOutputParse, err)
	}
	return &result, nil
}

// buildPrompt assembles the user-facing portion shared by both model stages.
func buildPrompt(input string, dctx *entity.DisputeContext, knowledge string) string {
	prompt := "User request:\n" + input
	if dctx != nil {
		if b, err := json.Marshal(dctx); err == nil {
			prompt += "\n\nDispute context:\n" + string(b)
		}
	}
	if knowledge != "" {
		prompt += "\n\nReference material:\n" + knowledge
	}
	return prompt
}
