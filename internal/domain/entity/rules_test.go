package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredFieldsFor(t *testing.T) {
	rules := DefaultRuleSet()

	assert.Equal(t, []string{"bureau", "dispute_reason"}, rules.RequiredFieldsFor("inquiry"))
	assert.Equal(t, rules.RequiredFields[rules.DefaultAccountType], rules.RequiredFieldsFor(""))
	assert.Equal(t, rules.RequiredFields[rules.DefaultAccountType], rules.RequiredFieldsFor("unknown_type"))
}

func TestCandidateDocs(t *testing.T) {
	rules := DefaultRuleSet()

	t.Run("compliance material is always included", func(t *testing.T) {
		for _, action := range []Action{ActionClassifyDispute, ActionExplainCredit, ActionGenerateLetter, ActionAnalyzeReport, ActionFullOrchestration} {
			docs := rules.CandidateDocs(action)
			assert.Contains(t, docs, "fcra_compliance_guidelines", action)
			assert.Contains(t, docs, "communication_tone_policy", action)
		}
	})

	t.Run("letter generation pulls template docs", func(t *testing.T) {
		docs := rules.CandidateDocs(ActionGenerateLetter)
		assert.Contains(t, docs, "dispute_letter_templates")
		assert.NotContains(t, docs, "bureau_score_models")
	})

	t.Run("every candidate has a summary", func(t *testing.T) {
		for _, docs := range [][]string{rules.CandidateDocs(ActionClassifyDispute), rules.CandidateDocs(ActionExplainCredit)} {
			for _, doc := range docs {
				assert.NotEmpty(t, rules.DocSummaries[doc], doc)
			}
		}
	})
}
