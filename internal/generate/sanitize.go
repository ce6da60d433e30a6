package generate

import "regexp"

type rewrite struct {
	pattern *regexp.Regexp
	repl    string
}

// Ordered rewrites for banned phrasing that survives generation.
// Longer forms come before their stems so replacements stay coherent.
var rewrites = []rewrite{
	{regexp.MustCompile(`(?i)streamlining`), "reducing"},
	{regexp.MustCompile(`(?i)streamlines`), "reduces"},
	{regexp.MustCompile(`(?i)streamline`), "reduce"},
	{regexp.MustCompile(`(?i)revolutionizing`), "changing"},
	{regexp.MustCompile(`(?i)revolutionize`), "change"},
	{regexp.MustCompile(`(?i)game-changing`), "useful"},
	{regexp.MustCompile(`(?i)cutting-edge`), "current"},
	{regexp.MustCompile(`(?i)best-in-class`), "proven"},
	{regexp.MustCompile(`(?i)leverage`), "use"},
	{regexp.MustCompile(`(?i)synergies`), "overlap"},
}

// sanitize rewrites residual banned phrasing in place. It runs after
// quality assessment so logged findings describe the text the model
// actually produced, while the caller receives the cleaned version.
func sanitize(seq *Sequence) {
	seq.Analysis.ValueProposition = applyRewrites(seq.Analysis.ValueProposition)
	seq.Analysis.ProspectInsights = applyRewrites(seq.Analysis.ProspectInsights)
	for i := range seq.Messages {
		seq.Messages[i].Message = applyRewrites(seq.Messages[i].Message)
	}
}

func applyRewrites(text string) string {
	for _, r := range rewrites {
		text = r.pattern.ReplaceAllString(text, r.repl)
	}
	return text
}
