package entity

import "time"

// ResponseContent is the generator's structured answer. All five fields are
// mandatory once a response exists; the validator flags any empty one.
type ResponseContent struct {
	Summary           string   `json:"summary"`
	Analysis          string   `json:"analysis"`
	EligibilityStatus string   `json:"eligibilityStatus"`
	RecommendedAction string   `json:"recommendedAction"`
	NextSteps         []string `json:"nextSteps"`
}

type ValidationResult struct {
	MissingSections   []string `json:"missingSections"`
	ForbiddenPhrases  []string `json:"forbiddenPhrases"`
	ComplianceFlags   []string `json:"complianceFlags"`
	OverrideAttempted bool     `json:"overrideAttempted"`
	ShouldRefuse      bool     `json:"shouldRefuse"`
	RefusalReason     string   `json:"refusalReason,omitempty"`
}

// ResponseTags are the coarse labels attached to every outcome for routing,
// analytics and audit queries.
type ResponseTags struct {
	DisputeType      string `json:"dispute_type,omitempty"`
	EligibilityLabel string `json:"eligibility_label,omitempty"`
	ConfidenceLevel  string `json:"confidence_level"`
	RefusalReason    string `json:"refusal_reason,omitempty"`
	ComplianceRisk   string `json:"compliance_risk"`
}

type ModelVersions struct {
	Classifier string `json:"classifier"`
	Core       string `json:"core"`
	Retriever  string `json:"retriever"`
}

// OrchestratorResponse is the single unit returned to the caller and persisted
// to the interaction log. Built incrementally by the pipeline, finalized once.
type OrchestratorResponse struct {
	Success          bool                  `json:"success"`
	Classification   *ClassificationResult `json:"classification,omitempty"`
	Response         *ResponseContent      `json:"response,omitempty"`
	ConfidenceScore  float64               `json:"confidenceScore"`
	Tags             ResponseTags          `json:"tags"`
	ModelVersions    ModelVersions         `json:"modelVersions"`
	Validation       *ValidationResult     `json:"validation,omitempty"`
	ComplianceFlags  []string              `json:"complianceFlags"`
	WasRefused       bool                  `json:"wasRefused"`
	RefusalReason    string                `json:"refusalReason,omitempty"`
	ProcessingTimeMs int64                 `json:"processingTimeMs"`
}

// InteractionLog is the append-only audit row written once per request,
// refused or not.
type InteractionLog struct {
	ID              string                `json:"id"`
	UserID          string                `json:"user_id"`
	Action          Action                `json:"action"`
	Input           string                `json:"input"`
	Context         *DisputeContext       `json:"context,omitempty"`
	Classification  *ClassificationResult `json:"classification,omitempty"`
	Response        *ResponseContent      `json:"response,omitempty"`
	ComplianceFlags []string              `json:"compliance_flags"`
	WasRefused      bool                  `json:"was_refused"`
	RefusalReason   string                `json:"refusal_reason,omitempty"`
	TrainingReady   bool                  `json:"training_ready"`
	CreatedAt       time.Time             `json:"created_at"`
}

// DisputeRecord is one historical dispute attempt, read back for cooldown checks.
type DisputeRecord struct {
	ID          string      `json:"id"`
	ClientID    string      `json:"client_id"`
	Bureau      string      `json:"bureau"`
	Identity    string      `json:"identity"`
	Eligibility Eligibility `json:"eligibility"`
	CreatedAt   time.Time   `json:"created_at"`
}
