package usecase

import "math"

// Weights and thresholds of the confidence formula. retrievalSaturation is the
// context length at which retrieval depth stops adding confidence.
const (
	retrievalWeight     = 0.4
	classifierWeight    = 0.6
	missingPenalty      = 0.4
	flagPenalty         = 0.2
	retrievalSaturation = 1200
	defaultConfidence   = 0.2

	// RefusalThreshold is the score below which a generated answer is
	// replaced with an additional-information refusal.
	RefusalThreshold = 0.5
)

// ConfidenceScore combines retrieval depth, classifier certainty and
// validation outcomes into one scalar in [0,1], rounded to two decimals.
// A zero classifier confidence counts as the conservative default.
func ConfidenceScore(retrievedChars int, classifierConfidence float64, missingSections, complianceFlags int) float64 {
	conf := classifierConfidence
	if conf <= 0 {
		conf = defaultConfidence
	}

	score := retrievalWeight*math.Min(1, float64(retrievedChars)/retrievalSaturation) + classifierWeight*conf
	if missingSections > 0 {
		score -= missingPenalty
	}
	if complianceFlags > 0 {
		score -= flagPenalty
	}
	if score < 0 {
		score = 0
	}
	return math.Round(score*100) / 100
}

// ConfidenceLevel buckets a score for the response tags.
func ConfidenceLevel(score float64) string {
	switch {
	case score < 0.5:
		return "low"
	case score < 0.8:
		return "medium"
	default:
		return "high"
	}
}

// ComplianceRisk buckets the compliance-flag count for the response tags.
func ComplianceRisk(flagCount int) string {
	switch {
	case flagCount == 0:
		return "low"
	case flagCount <= 2:
		return "medium"
	default:
		return "high"
	}
}
