package usecase

import (
	"regexp"
	"strings"

	"dispute-core/internal/domain/entity"
)

var (
	guaranteeRe       = regexp.MustCompile(`(?i)\bwill\s+(definitely|certainly|always)\b`)
	scorePredictionRe = regexp.MustCompile(`(?i)increase\b[^.]{0,60}?\bby\s+\d+\s+points`)
)

// OutputValidator scans a generated response against the compliance rule set.
type OutputValidator struct {
	rules *entity.RuleSet
}

func NewOutputValidator(rules *entity.RuleSet) *OutputValidator {
	return &OutputValidator{rules: rules}
}

func (v *OutputValidator) Validate(resp *entity.ResponseContent, classification *entity.ClassificationResult) *entity.ValidationResult {
	result := &entity.ValidationResult{
		MissingSections:  []string{},
		ForbiddenPhrases: []string{},
		ComplianceFlags:  []string{},
	}

	sections := []struct {
		name  string
		value string
	}{
		{"summary", resp.Summary},
		{"analysis", resp.Analysis},
		{"eligibility_status", resp.EligibilityStatus},
		{"recommended_action", resp.RecommendedAction},
		{"next_steps", strings.Join(resp.NextSteps, " ")},
	}
	for _, s := range sections {
		if strings.TrimSpace(s.value) == "" {
			result.MissingSections = append(result.MissingSections, s.name)
		}
	}

	fullText := resp.Summary + " " + resp.Analysis + " " + resp.EligibilityStatus + " " +
		resp.RecommendedAction + " " + strings.Join(resp.NextSteps, " ")
	lowered := strings.ToLower(fullText)

	for _, phrase := range v.rules.ForbiddenPhrases {
		if strings.Contains(lowered, phrase) {
			result.ForbiddenPhrases = append(result.ForbiddenPhrases, phrase)
		}
	}

	if guaranteeRe.MatchString(fullText) {
		result.ComplianceFlags = append(result.ComplianceFlags, entity.FlagGuaranteeLanguage)
	}
	if scorePredictionRe.MatchString(fullText) {
		result.ComplianceFlags = append(result.ComplianceFlags, entity.FlagScorePrediction)
	}

	if classification != nil && resp.EligibilityStatus != string(classification.Eligibility) {
		result.OverrideAttempted = true
		result.ComplianceFlags = append(result.ComplianceFlags, entity.FlagEligibilityOverride)
	}

	switch {
	case len(result.ForbiddenPhrases) > 0:
		result.ShouldRefuse = true
		result.RefusalReason = entity.RefusalForbiddenPhrase
	case len(result.MissingSections) > 0:
		result.ShouldRefuse = true
		result.RefusalReason = entity.RefusalMissingSections
	}

	return result
}
