package usecase

import (
	"fmt"

	"dispute-core/internal/domain/entity"
)

// Fixed response bodies for refusals and degraded outcomes. Every body
// populates all five sections so a refusal never trips the section validator
// it exists to satisfy.

func scopeRefusalContent() *entity.ResponseContent {
	return &entity.ResponseContent{
		Summary:           "This request falls outside the credit dispute domain.",
		Analysis:          ScopeRefusalMessage,
		EligibilityStatus: string(entity.EligibilityInsufficientInfo),
		RecommendedAction: "Rephrase the request around a credit report, score or dispute question.",
		NextSteps:         []string{"Ask about a credit report item, score factor or dispute process"},
	}
}

func injectionSafeContent() *entity.ResponseContent {
	return &entity.ResponseContent{
		Summary:           "The request could not be processed as written.",
		Analysis:          "The input contained instructions that attempt to alter how this service operates. Such requests are declined and recorded.",
		EligibilityStatus: string(entity.EligibilityInsufficientInfo),
		RecommendedAction: "Resubmit the question using plain language about the credit issue.",
		NextSteps:         []string{"Describe the credit report item you want to understand or dispute"},
	}
}

func completenessContent(missing []string) *entity.ResponseContent {
	return &entity.ResponseContent{
		Summary:           "More account details are needed before an eligibility assessment can be made.",
		Analysis:          fmt.Sprintf("The dispute context is missing %d required field(s) for this account type. Each listed field must be supplied before classification can proceed.", len(missing)),
		EligibilityStatus: string(entity.EligibilityInsufficientInfo),
		RecommendedAction: "Provide the missing fields listed in the next steps.",
		NextSteps:         missing,
	}
}

func ragEmptyContent() *entity.ResponseContent {
	return &entity.ResponseContent{
		Summary:           "Reference material required for a compliant answer is currently unavailable.",
		Analysis:          "This service only answers when it can ground its response in approved compliance and workflow documentation. That material could not be retrieved.",
		EligibilityStatus: string(entity.EligibilityInsufficientInfo),
		RecommendedAction: "Retry the request shortly.",
		NextSteps:         []string{"Submit the request again in a few minutes"},
	}
}

func cooldownContent(attempts int) *entity.ResponseContent {
	return &entity.ResponseContent{
		Summary:           "This item was disputed recently and should not be re-disputed yet.",
		Analysis:          fmt.Sprintf("There are %d dispute attempts against this account within the cooldown window. Repeated disputes of the same item in quick succession can be dismissed as frivolous by the bureau and weaken the case.", attempts),
		EligibilityStatus: string(entity.EligibilityNotEligible),
		RecommendedAction: "Wait for the current dispute cycle to conclude before taking further action on this item.",
		NextSteps: []string{
			"Wait for the bureau's response to the pending dispute",
			"Gather any new supporting documentation in the meantime",
			"Revisit this item once the cooldown window has passed",
		},
	}
}

func complianceRefusalContent(cls *entity.ClassificationResult) *entity.ResponseContent {
	status := string(entity.EligibilityInsufficientInfo)
	if cls != nil {
		status = string(cls.Eligibility)
	}
	return &entity.ResponseContent{
		Summary:           "A compliant answer could not be produced for this request.",
		Analysis:          "The generated response did not meet this service's compliance requirements and was withheld. No dispute recommendation is made.",
		EligibilityStatus: status,
		RecommendedAction: "Rephrase the request or add account detail and try again.",
		NextSteps:         []string{"Resubmit the request with additional account detail"},
	}
}

func lowConfidenceContent(missingSections []string) *entity.ResponseContent {
	steps := missingSections
	if len(steps) == 0 {
		steps = []string{"Provide additional detail about the disputed account"}
	}
	return &entity.ResponseContent{
		Summary:           "Additional information is required before a reliable answer can be given.",
		Analysis:          "The available evidence did not support a confident assessment, so no recommendation is made.",
		EligibilityStatus: string(entity.EligibilityInsufficientInfo),
		RecommendedAction: "Add the detail listed in the next steps and resubmit.",
		NextSteps:         steps,
	}
}

// safeEducationalContent is the generator-outage fallback. It carries the
// classifier's verdict when one exists.
func safeEducationalContent(cls *entity.ClassificationResult) *entity.ResponseContent {
	status := string(entity.EligibilityInsufficientInfo)
	if cls != nil {
		status = string(cls.Eligibility)
	}
	return &entity.ResponseContent{
		Summary:           "A general educational overview is provided in place of a tailored analysis.",
		Analysis:          "Consumers may dispute inaccurate, incomplete or unverifiable information on their credit reports. The bureau must reinvestigate within the statutory window and correct or delete information it cannot verify. Outcomes depend on the accuracy of the reported item and the evidence provided.",
		EligibilityStatus: status,
		RecommendedAction: "Review the reported item against your own records before deciding whether to dispute.",
		NextSteps: []string{
			"Obtain a current copy of the credit report",
			"Compare the reported balance, dates and status with your records",
			"Collect documentation for any inaccuracy you find",
		},
	}
}
