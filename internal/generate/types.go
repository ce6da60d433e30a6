package generate

import (
	"errors"

	"cadence/internal/enrich"
	"cadence/internal/strategy"
)

// PolicyVersion tags the generation policy in effect. It participates
// in the idempotency digest, so bump it whenever prompts, catalogs, or
// validation rules change in a way that should invalidate cached
// sequences.
const PolicyVersion = "2025-09-01"

// ErrGenerationFailed is the single opaque failure the pipeline
// surfaces for unparseable, malformed, or empty model output. Callers
// get no field-level detail; diagnostics go to logs only.
var ErrGenerationFailed = errors.New("generation failed")

// Request carries everything the pipeline needs for one sequence.
type Request struct {
	CompanyContext  string
	Profile         enrich.ProspectProfile
	ToneDescription string
	SequenceLength  int
}

// Analysis is the model's grounding summary for the whole sequence.
type Analysis struct {
	ProspectInsights     string   `json:"prospect_insights"`
	PersonalizationHooks []string `json:"personalization_hooks"`
	ValueProposition     string   `json:"value_proposition"`
}

// Message is one step of the generated sequence. Step is 1-based and
// strictly sequential; the validator rewrites it from array position
// regardless of what the model reported.
type Message struct {
	Step      int    `json:"step"`
	Message   string `json:"message"`
	Reasoning string `json:"reasoning"`
}

// Sequence is the validated, sanitized payload returned to callers.
type Sequence struct {
	Analysis   Analysis  `json:"analysis"`
	Messages   []Message `json:"messages"`
	Confidence float64   `json:"confidence"`
}

// Result bundles the sequence with the audit trail: the strategy that
// shaped the prompt, the raw model text, and the quality findings that
// were logged but did not block.
type Result struct {
	Sequence    Sequence                 `json:"sequence"`
	Strategy    strategy.MessageStrategy `json:"strategy"`
	RawResponse string                   `json:"-"`
	Issues      []string                 `json:"issues,omitempty"`
}
