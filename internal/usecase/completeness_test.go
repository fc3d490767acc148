package usecase

import (
	"testing"

	"dispute-core/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestCheckCompleteness(t *testing.T) {
	rules := entity.DefaultRuleSet()

	t.Run("absent context is complete", func(t *testing.T) {
		res := CheckCompleteness(rules, nil)
		assert.True(t, res.Complete)
		assert.Empty(t, res.MissingFields)
	})

	t.Run("collection missing creditor name", func(t *testing.T) {
		res := CheckCompleteness(rules, &entity.DisputeContext{
			AccountType: "collection",
			Bureau:      "equifax",
			DisputeItems: []entity.DisputeItem{
				{AccountNumber: "1234", DisputeReason: "not_mine"},
			},
		})
		assert.False(t, res.Complete)
		assert.Equal(t, []string{"creditor_name"}, res.MissingFields)
	})

	t.Run("inquiry only needs bureau and reason", func(t *testing.T) {
		res := CheckCompleteness(rules, &entity.DisputeContext{
			AccountType: "inquiry",
			Bureau:      "transunion",
			DisputeType: "unauthorized_inquiry",
		})
		assert.True(t, res.Complete)
	})

	t.Run("unknown account type falls back to default", func(t *testing.T) {
		res := CheckCompleteness(rules, &entity.DisputeContext{
			AccountType: "mystery",
		})
		assert.False(t, res.Complete)
		assert.ElementsMatch(t, []string{"creditor_name", "bureau", "dispute_reason"}, res.MissingFields)
	})

	t.Run("item fields satisfy context-level gaps", func(t *testing.T) {
		res := CheckCompleteness(rules, &entity.DisputeContext{
			AccountType: "charge_off",
			DisputeItems: []entity.DisputeItem{
				{CreditorName: "Acme Bank", Bureau: "experian", DisputeReason: "paid_in_full"},
			},
		})
		assert.True(t, res.Complete)
	})

	t.Run("context fields satisfy item gaps", func(t *testing.T) {
		res := CheckCompleteness(rules, &entity.DisputeContext{
			AccountType: "collection",
			Bureau:      "equifax",
			DisputeType: "not_mine",
			DisputeItems: []entity.DisputeItem{
				{CreditorName: "Midland Credit"},
			},
		})
		assert.True(t, res.Complete)
	})
}
