package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceScore(t *testing.T) {
	t.Run("reference case", func(t *testing.T) {
		// Saturated retrieval, classifier 0.9, nothing missing, no flags.
		assert.Equal(t, 0.94, ConfidenceScore(1200, 0.9, 0, 0))
		assert.Equal(t, 0.94, ConfidenceScore(5000, 0.9, 0, 0))
	})

	t.Run("zero classifier confidence counts as the default", func(t *testing.T) {
		assert.Equal(t, 0.52, ConfidenceScore(1200, 0, 0, 0))
	})

	t.Run("retrieval depth scales below saturation", func(t *testing.T) {
		assert.Equal(t, 0.74, ConfidenceScore(600, 0.9, 0, 0))
	})

	t.Run("missing sections and flags subtract", func(t *testing.T) {
		assert.Equal(t, 0.54, ConfidenceScore(1200, 0.9, 1, 0))
		assert.Equal(t, 0.74, ConfidenceScore(1200, 0.9, 0, 2))
		assert.Equal(t, 0.34, ConfidenceScore(1200, 0.9, 2, 1))
	})

	t.Run("never negative", func(t *testing.T) {
		assert.Equal(t, 0.0, ConfidenceScore(0, 0, 3, 3))
	})

	t.Run("deterministic", func(t *testing.T) {
		a := ConfidenceScore(900, 0.77, 1, 1)
		b := ConfidenceScore(900, 0.77, 1, 1)
		assert.Equal(t, a, b)
	})
}

func TestConfidenceLevel(t *testing.T) {
	assert.Equal(t, "low", ConfidenceLevel(0.49))
	assert.Equal(t, "medium", ConfidenceLevel(0.5))
	assert.Equal(t, "medium", ConfidenceLevel(0.79))
	assert.Equal(t, "high", ConfidenceLevel(0.8))
}

func TestComplianceRisk(t *testing.T) {
	assert.Equal(t, "low", ComplianceRisk(0))
	assert.Equal(t, "medium", ComplianceRisk(1))
	assert.Equal(t, "medium", ComplianceRisk(2))
	assert.Equal(t, "high", ComplianceRisk(3))
}
