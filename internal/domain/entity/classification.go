package entity

// Eligibility is the classifier's verdict on whether a report item may be disputed.
type Eligibility string

const (
	EligibilityEligible         Eligibility = "eligible"
	EligibilityConditional      Eligibility = "conditionally_eligible"
	EligibilityNotEligible      Eligibility = "not_eligible"
	EligibilityInsufficientInfo Eligibility = "insufficient_information"
)

type ClassificationResult struct {
	Eligibility Eligibility `json:"eligibility"`
	Confidence  float64     `json:"confidence"`
	Reasoning   Reasoning   `json:"reasoning"`
}

type Reasoning struct {
	Factors          []string `json:"factors"`
	RequiredEvidence []string `json:"requiredEvidence"`
	ComplianceFlags  []string `json:"complianceFlags"`
}

// InsufficientClassification builds the conservative verdict used whenever the
// classifier cannot or must not run: missing data, model outage, parse failure.
func InsufficientClassification(confidence float64, evidence, flags []string) *ClassificationResult {
	return &ClassificationResult{
		Eligibility: EligibilityInsufficientInfo,
		Confidence:  confidence,
		Reasoning: Reasoning{
			Factors:          []string{},
			RequiredEvidence: evidence,
			ComplianceFlags:  flags,
		},
	}
}
