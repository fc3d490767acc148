package entity

import "errors"

// Standard domain errors
var (
	ErrRetrievalEmpty   = errors.New("knowledge retrieval returned no passages")
	ErrModelUnavailable = errors.New("model service unavailable")
	ErrModelOutputParse = errors.New("model output could not be parsed")
	ErrInvalidRequest   = errors.New("invalid request parameters")
	ErrStoreUnavailable = errors.New("interaction store unavailable")
)

// Refusal reasons and compliance flag identifiers shared across stages.
const (
	RefusalOutOfScope       = "out_of_scope"
	RefusalPromptInjection  = "prompt_injection_detected"
	RefusalInsufficientInfo = "insufficient_information"
	RefusalRetrievalEmpty   = "rag_empty"
	RefusalForbiddenPhrase  = "forbidden_phrase_detected"
	RefusalMissingSections  = "missing_required_sections"
	RefusalLowConfidence    = "low_confidence"

	TagDisputeCooldown = "dispute_cooldown"

	FlagClassificationError = "classification_error"
	FlagParseError          = "parse_error"
	FlagGuaranteeLanguage   = "guarantee_language_detected"
	FlagScorePrediction     = "specific_score_prediction"
	FlagEligibilityOverride = "eligibility_override_attempted"
	FlagGenerationFallback  = "generation_fallback_used"
)
