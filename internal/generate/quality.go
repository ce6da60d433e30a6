package generate

import (
	"fmt"
	"regexp"
	"strings"

	"cadence/internal/enrich"
	"cadence/internal/strategy"
)

const (
	firstStepWordLimit = 60
	restatementLimit   = 0.5
)

var inventedStat = regexp.MustCompile(`\d+(?:\.\d+)?\s*%`)

var genericPhrases = []string{
	"industry leader",
	"industry-leading",
	"cutting-edge",
	"best-in-class",
	"world-class",
	"in today's fast-paced",
	"leverage synergies",
	"revolutionize",
	"game-changing",
}

var fillerPhrases = []string{
	"just checking in",
	"just following up",
	"touching base",
	"hope this finds you well",
	"hope you're doing well",
	"quick question for you",
	"circling back",
}

// hardDomainClaims imply the sender changes systems an outbound
// product cannot plausibly touch. Sales personas are exempt because
// outbound improvement is their literal workflow.
var hardDomainClaims = []string{
	"improve backend performance",
	"reduce infrastructure costs",
	"speed up your deployments",
	"optimize your codebase",
	"reduce downtime",
	"harden your systems",
}

var stopwords = map[string]bool{
	"about": true, "after": true, "again": true, "been": true, "before": true,
	"being": true, "could": true, "doing": true, "every": true, "from": true,
	"have": true, "into": true, "just": true, "like": true, "more": true,
	"most": true, "other": true, "over": true, "some": true, "such": true,
	"than": true, "that": true, "their": true, "them": true, "then": true,
	"there": true, "these": true, "they": true, "this": true, "those": true,
	"through": true, "very": true, "well": true, "were": true, "what": true,
	"when": true, "where": true, "which": true, "while": true, "will": true,
	"with": true, "would": true, "your": true, "yours": true,
}

// assessQuality runs every content-quality check and accumulates the
// findings. It never fails and never mutates the sequence; policy on
// the findings belongs to the caller.
func assessQuality(seq *Sequence, profile enrich.ProspectProfile, targetPersona strategy.RoleCategory) []string {
	var issues []string

	if inventedStat.MatchString(seq.Analysis.ProspectInsights) ||
		inventedStat.MatchString(seq.Analysis.ValueProposition) ||
		anyMatches(inventedStat, seq.Analysis.PersonalizationHooks) {
		issues = append(issues, "analysis contains a numeric percentage with no supplied source")
	}
	for _, msg := range seq.Messages {
		if inventedStat.MatchString(msg.Message) {
			issues = append(issues, fmt.Sprintf("step %d contains a numeric percentage with no supplied source", msg.Step))
		}
	}

	if len(profile.Skills) > 0 && !referencesAny(seq.Analysis.ProspectInsights, profile.Skills) {
		issues = append(issues, "prospect_insights does not reference any known skill")
	}

	for _, phrase := range genericPhrases {
		if strings.Contains(strings.ToLower(seq.Analysis.ProspectInsights), phrase) {
			issues = append(issues, fmt.Sprintf("prospect_insights uses generic phrase %q", phrase))
		}
	}

	if len(seq.Analysis.PersonalizationHooks) != 2 {
		issues = append(issues, fmt.Sprintf("expected exactly 2 personalization hooks, got %d", len(seq.Analysis.PersonalizationHooks)))
	}

	if targetPersona != strategy.RoleSales {
		for _, claim := range hardDomainClaims {
			if strings.Contains(strings.ToLower(seq.Analysis.ValueProposition), claim) {
				issues = append(issues, fmt.Sprintf("value_proposition makes unsupported domain claim %q", claim))
			}
		}
		for _, msg := range seq.Messages {
			for _, claim := range hardDomainClaims {
				if strings.Contains(strings.ToLower(msg.Message), claim) {
					issues = append(issues, fmt.Sprintf("step %d makes unsupported domain claim %q", msg.Step, claim))
				}
			}
		}
	}

	if len(seq.Messages) > 0 {
		if words := len(strings.Fields(seq.Messages[0].Message)); words > firstStepWordLimit {
			issues = append(issues, fmt.Sprintf("step 1 runs %d words, limit is %d", words, firstStepWordLimit))
		}
	}

	for _, msg := range seq.Messages {
		for _, phrase := range fillerPhrases {
			if strings.Contains(strings.ToLower(msg.Message), phrase) {
				issues = append(issues, fmt.Sprintf("step %d uses filler phrase %q", msg.Step, phrase))
			}
		}
	}

	for _, msg := range seq.Messages {
		for _, label := range []string{"Angle:", "Workflow:", "Signal:"} {
			if !strings.Contains(msg.Reasoning, label) {
				issues = append(issues, fmt.Sprintf("step %d reasoning missing %q component", msg.Step, label))
			}
		}
	}

	if len(seq.Messages) > 1 && allEndWithQuestion(seq.Messages) {
		issues = append(issues, "every message ends with a question; sequence reads as repeated asks, not a narrative")
	}

	for i := 1; i < len(seq.Messages); i++ {
		ratio := restatementRatio(seq.Messages[i-1].Message, seq.Messages[i].Message)
		if ratio >= restatementLimit {
			issues = append(issues, fmt.Sprintf("steps %d and %d restate each other (%.0f%% content-word overlap)", i, i+1, ratio*100))
		}
	}

	return issues
}

func anyMatches(re *regexp.Regexp, values []string) bool {
	for _, v := range values {
		if re.MatchString(v) {
			return true
		}
	}
	return false
}

func allEndWithQuestion(messages []Message) bool {
	for _, msg := range messages {
		if !strings.HasSuffix(strings.TrimSpace(msg.Message), "?") {
			return false
		}
	}
	return true
}

// restatementRatio measures how much two messages repeat each other:
// shared content words over the smaller content-word set. Stopwords
// and words shorter than four characters are ignored.
func restatementRatio(a, b string) float64 {
	setA := contentWords(a)
	setB := contentWords(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	overlap := 0
	for w := range setA {
		if setB[w] {
			overlap++
		}
	}
	min := len(setA)
	if len(setB) < min {
		min = len(setB)
	}
	return float64(overlap) / float64(min)
}

func contentWords(text string) map[string]bool {
	words := make(map[string]bool)
	for _, field := range strings.Fields(strings.ToLower(text)) {
		word := strings.Trim(field, ".,!?;:'\"()[]")
		if len(word) < 4 || stopwords[word] {
			continue
		}
		words[word] = true
	}
	return words
}

func referencesAny(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" && strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
