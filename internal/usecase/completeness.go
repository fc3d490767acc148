package usecase

import "dispute-core/internal/domain/entity"

type CompletenessResult struct {
	Complete      bool
	MissingFields []string
}

// CheckCompleteness verifies that the context carries every field required
// for the declared account type. An absent context is treated as complete:
// free-text-only requests are answered educationally without item data.
func CheckCompleteness(rules *entity.RuleSet, dctx *entity.DisputeContext) CompletenessResult {
	if dctx == nil {
		return CompletenessResult{Complete: true}
	}

	required := rules.RequiredFieldsFor(dctx.AccountType)
	item := dctx.FirstItem()

	var missing []string
	for _, field := range required {
		if contextField(item, dctx, field) == "" {
			missing = append(missing, field)
		}
	}
	return CompletenessResult{Complete: len(missing) == 0, MissingFields: missing}
}

// contextField resolves a required-field name against the first dispute item,
// then against the context itself.
func contextField(item *entity.DisputeItem, dctx *entity.DisputeContext, name string) string {
	switch name {
	case "creditor_name":
		if item != nil {
			return item.CreditorName
		}
	case "account_number":
		if item != nil {
			return item.AccountNumber
		}
	case "bureau":
		if item != nil && item.Bureau != "" {
			return item.Bureau
		}
		return dctx.Bureau
	case "dispute_reason":
		if item != nil && item.DisputeReason != "" {
			return item.DisputeReason
		}
		return dctx.DisputeType
	}
	return ""
}
