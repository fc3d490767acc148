package usecase

import (
	"strings"

	"dispute-core/internal/domain/entity"
)

// ScopeRefusalMessage is the fixed educational message returned for any
// request outside the credit domain.
const ScopeRefusalMessage = "I can only help with consumer credit reports, credit scores and dispute education. For topics like investing, medical, legal representation or gambling, please consult a qualified professional in that field."

type GateResult struct {
	Valid  bool
	Reason string
	Topic  string
}

// Gatekeeper runs the pre-model gates over the injected rule tables.
type Gatekeeper struct {
	rules *entity.RuleSet
}

func NewGatekeeper(rules *entity.RuleSet) *Gatekeeper {
	return &Gatekeeper{rules: rules}
}

// CheckScope scans sanitized text for off-topic keyword groups.
func (g *Gatekeeper) CheckScope(text string) GateResult {
	lowered := strings.ToLower(text)
	for topic, keywords := range g.rules.OffTopicGroups {
		for _, kw := range keywords {
			if strings.Contains(lowered, kw) {
				return GateResult{Valid: false, Reason: ScopeRefusalMessage, Topic: topic}
			}
		}
	}
	return GateResult{Valid: true}
}

// DetectInjection scans the raw, pre-sanitized text for known override
// phrases. Sanitization must not run first: stripping a "system:" prefix
// would hide the very pattern this gate exists to catch.
func (g *Gatekeeper) DetectInjection(raw string) bool {
	lowered := strings.ToLower(raw)
	for _, pattern := range g.rules.InjectionPatterns {
		if strings.Contains(lowered, pattern) {
			return true
		}
	}
	return false
}
