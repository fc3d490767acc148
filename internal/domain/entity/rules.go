package entity

// RuleSet is the versioned, immutable rule data the gates, retriever and
// validator run on. Loaded once at process start and injected; pipeline logic
// never hard-codes a keyword or phrase.
type RuleSet struct {
	Version            string
	OffTopicGroups     map[string][]string
	InjectionPatterns  []string
	ForbiddenPhrases   []string
	RequiredFields     map[string][]string
	DefaultAccountType string
	AlwaysDocs         []string
	ActionDocs         map[Action][]string
	DocSummaries       map[string]string
}

// DefaultRuleSet returns rule tables v1. Keyword groups are matched as
// lower-cased substrings; required-field names are the canonical snake_case
// identifiers echoed back to users in refusal messages.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		Version: "rules-v1",
		OffTopicGroups: map[string][]string{
			"investment_speculation": {
				"stock market", "stock tips", "day trading", "crypto",
				"bitcoin", "forex", "options trading", "nft",
			},
			"medical": {
				"medical diagnosis", "prescription", "dosage", "symptoms of",
			},
			"legal_representation": {
				"represent me in court", "file a lawsuit for me", "be my lawyer",
			},
			"gambling": {
				"casino", "sports betting", "poker strategy", "lottery numbers",
			},
			"identity_fabrication": {
				"new credit identity", "cpn number", "synthetic identity",
			},
		},
		InjectionPatterns: []string{
			"ignore previous instructions",
			"ignore all previous instructions",
			"disregard your instructions",
			"you are now",
			"act as",
			"jailbreak",
			"developer mode",
			"system prompt",
			"pretend you are",
		},
		ForbiddenPhrases: []string{
			"guaranteed",
			"guarantee removal",
			"100% success",
			"credit sweep",
			"pay for deletion",
			"we will sue",
			"legally required to remove",
			"this is legal advice",
			"instantly boost your score",
		},
		RequiredFields: map[string][]string{
			"collection":   {"creditor_name", "bureau", "dispute_reason"},
			"charge_off":   {"creditor_name", "bureau", "dispute_reason"},
			"late_payment": {"creditor_name", "account_number", "bureau", "dispute_reason"},
			"repossession": {"creditor_name", "bureau", "dispute_reason"},
			"inquiry":      {"bureau", "dispute_reason"},
		},
		DefaultAccountType: "collection",
		AlwaysDocs: []string{
			"fcra_compliance_guidelines",
			"communication_tone_policy",
		},
		ActionDocs: map[Action][]string{
			ActionClassifyDispute:   {"dispute_eligibility_workflow", "metro2_reporting_standards"},
			ActionAnalyzeReport:     {"dispute_eligibility_workflow", "metro2_reporting_standards"},
			ActionFullOrchestration: {"dispute_eligibility_workflow", "metro2_reporting_standards"},
			ActionGenerateLetter:    {"dispute_letter_templates", "bureau_submission_formats"},
			ActionExplainCredit:     {"bureau_score_models", "score_factor_reference"},
		},
		DocSummaries: map[string]string{
			"fcra_compliance_guidelines":   "FCRA sections 609, 611 and 623: consumer dispute rights, reinvestigation duties, furnisher obligations.",
			"communication_tone_policy":    "Educational tone only. No outcome promises, no legal advice, no attorney impersonation.",
			"dispute_eligibility_workflow": "Decision tree for dispute eligibility: verify reporting accuracy, ownership, dates and balances before recommending a dispute.",
			"metro2_reporting_standards":   "Metro 2 account status and payment history codes used to spot inconsistent tradeline reporting.",
			"dispute_letter_templates":     "Approved dispute letter structures per bureau: identification block, item list, reason, enclosures.",
			"bureau_submission_formats":    "Submission channels and format requirements for Equifax, Experian and TransUnion disputes.",
			"bureau_score_models":          "How the three bureaus assemble reports and how scoring models weigh utilization, history and derogatories.",
			"score_factor_reference":       "Plain-language explanations of common score factors and reason codes.",
		},
	}
}

// RequiredFieldsFor maps a declared account type to its required-field list,
// falling back to the default account type when unknown or empty.
func (r *RuleSet) RequiredFieldsFor(accountType string) []string {
	if fields, ok := r.RequiredFields[accountType]; ok {
		return fields
	}
	return r.RequiredFields[r.DefaultAccountType]
}

// CandidateDocs returns the document names retrieval considers for an action:
// the always-included compliance material plus action-specific material.
func (r *RuleSet) CandidateDocs(action Action) []string {
	docs := make([]string, 0, len(r.AlwaysDocs)+2)
	docs = append(docs, r.AlwaysDocs...)
	docs = append(docs, r.ActionDocs[action]...)
	return docs
}
