package generate

import (
	"strings"

	"cadence/internal/enrich"
)

const (
	confidenceFloor   = 0.4
	confidenceCeiling = 0.95
	// Above this gap the model's self-reported confidence is
	// discarded as unreliable and the computed score wins outright.
	selfReportTolerance = 0.3
)

// Vocabulary that marks a value proposition as naming a concrete
// workflow rather than a vague benefit.
var workflowTerms = []string{
	"escalation", "questionnaire", "review", "on-call", "alert",
	"deploy", "pipeline", "follow-up", "backlog", "triage",
	"qualification", "report", "queue", "research",
}

// estimateConfidence scores how grounded the sequence is in the
// supplied profile. Deterministic; the model's own confidence is
// blended in separately.
func estimateConfidence(seq *Sequence, profile enrich.ProspectProfile) float64 {
	score := 0.5

	if len(profile.Skills) > 0 {
		if referencesAny(seq.Analysis.ProspectInsights, profile.Skills) {
			score += 0.2
		} else {
			score -= 0.1
		}
	} else {
		score -= 0.1
	}

	headlineKeywords := headlineTerms(profile.Headline)
	if len(headlineKeywords) > 0 && referencesAny(seq.Analysis.ProspectInsights, headlineKeywords) {
		score += 0.15
	} else {
		score -= 0.15
	}

	vp := seq.Analysis.ValueProposition
	if referencesAny(vp, workflowTerms) && referencesAny(vp, headlineKeywords) {
		score += 0.15
	} else {
		score -= 0.15
	}

	if hasGenericPhrasing(seq) {
		score -= 0.2
	}

	if score < confidenceFloor {
		return confidenceFloor
	}
	if score > confidenceCeiling {
		return confidenceCeiling
	}
	return score
}

// blendConfidence reconciles the model's self-report with the computed
// grounding score: average when they roughly agree, computed only when
// they diverge. The self-report is clamped to [0,1] first; the
// structural tier only requires it to be a number, so out-of-range
// values reach this point.
func blendConfidence(modelConfidence, computed float64) float64 {
	if modelConfidence < 0 {
		modelConfidence = 0
	}
	if modelConfidence > 1 {
		modelConfidence = 1
	}
	diff := modelConfidence - computed
	if diff < 0 {
		diff = -diff
	}
	if diff > selfReportTolerance {
		return computed
	}
	return (modelConfidence + computed) / 2
}

func headlineTerms(headline string) []string {
	var terms []string
	for _, field := range strings.Fields(strings.ToLower(headline)) {
		word := strings.Trim(field, ".,!?;:'\"()[]")
		if len(word) < 4 || stopwords[word] {
			continue
		}
		terms = append(terms, word)
	}
	return terms
}

func hasGenericPhrasing(seq *Sequence) bool {
	combined := strings.ToLower(seq.Analysis.ProspectInsights + " " + seq.Analysis.ValueProposition)
	for _, phrase := range genericPhrases {
		if strings.Contains(combined, phrase) {
			return true
		}
	}
	return false
}
