package narrative

// Layer names the rhetorical role one message in a sequence must
// fulfill. Every position argues for the same chosen friction; the
// layer decides how it argues.
type Layer string

const (
	LayerObservationCTA  Layer = "observation_cta"
	LayerObservation     Layer = "observation"
	LayerSpotlight       Layer = "spotlight"
	LayerCausalLink      Layer = "causal_link"
	LayerImprovement     Layer = "improvement"
	LayerSocialProof     Layer = "social_proof"
	LayerExpansion       Layer = "expansion"
	LayerGenericFollowUp Layer = "generic_follow_up"
)

// Contract is the rendering contract for one layer: what the message
// must do, how it may greet, and how long it may run. Examples are
// style guidance only, never verbatim output.
type Contract struct {
	Layer     Layer
	Goal      string
	Greeting  string
	WordLimit int
	Requires  string
	Example   string
}

var layerContracts = map[Layer]Contract{
	LayerObservationCTA: {
		Layer:     LayerObservationCTA,
		Goal:      "open with one specific observation about the prospect's situation and close with a single clear ask",
		Greeting:  "greet the prospect by first name",
		WordLimit: 60,
		Requires:  "one observation, one ask, nothing else",
		Example:   "Noticed your team owns the review queue for every new vendor. Worth a short call on cutting that queue down?",
	},
	LayerObservation: {
		Layer:     LayerObservation,
		Goal:      "open with one specific observation about the prospect's situation, no pitch yet",
		Greeting:  "greet the prospect by first name",
		WordLimit: 60,
		Requires:  "reference something concrete from the prospect's profile or company",
		Example:   "Saw you took over the platform team right as the integration backlog doubled.",
	},
	LayerSpotlight: {
		Layer:    LayerSpotlight,
		Goal:     "spotlight one capability of the sender and connect it to the friction named earlier",
		Greeting: "no greeting, continue the thread",
		Requires: "name a capability drawn from the sender's own description, not an invented one",
		Example:  "The qualification layer we run sits in front of that queue, so the noise never reaches your engineers.",
	},
	LayerCausalLink: {
		Layer:    LayerCausalLink,
		Goal:     "make the causal chain explicit: capability applied leads to friction reduced",
		Greeting: "no greeting, continue the thread",
		Requires: "state cause and effect in one or two sentences, no new claims",
		Example:  "Fewer unqualified deals in the funnel means fewer questionnaires landing on your desk each quarter.",
	},
	LayerImprovement: {
		Layer:    LayerImprovement,
		Goal:     "describe the improved state of the prospect's week once the friction shrinks, then ask",
		Greeting: "no greeting, continue the thread",
		Requires: "concrete day-to-day improvement, one closing ask",
		Example:  "That is an afternoon a week back for roadmap work. Open to comparing notes next Tuesday?",
	},
	LayerSocialProof: {
		Layer:    LayerSocialProof,
		Goal:     "ground the claim in a comparable team's experience without naming invented customers",
		Greeting: "no greeting, continue the thread",
		Requires: "keep the comparison generic unless a real reference is supplied",
		Example:  "Teams with a similar review load usually see the queue thin out within the first month.",
	},
	LayerExpansion: {
		Layer:    LayerExpansion,
		Goal:     "widen the argument to an adjacent friction from the allowed list, still the same thread",
		Greeting: "no greeting, continue the thread",
		Requires: "the adjacent friction must come from the allowed workflows, never a new invention",
		Example:  "Same filter also catches the feasibility questions that pull your staff into pre-sales calls.",
	},
	LayerGenericFollowUp: {
		Layer:    LayerGenericFollowUp,
		Goal:     "brief, low-pressure follow-up that restates the ask without repeating earlier wording",
		Greeting: "no greeting, continue the thread",
		Requires: "short, direct, no recycled sentences from earlier steps",
		Example:  "Closing the loop on this. If the review queue is not a priority this quarter, happy to leave it here.",
	},
}

// BuildLayerPlan maps a requested sequence length to the ordered list
// of layers each message must fulfill. Total for any length >= 1; the
// returned plan always has exactly n entries.
func BuildLayerPlan(n int) []Contract {
	if n < 1 {
		n = 1
	}
	switch n {
	case 1:
		return plan(LayerObservationCTA)
	case 2:
		return plan(LayerObservation, LayerImprovement)
	case 3:
		return plan(LayerObservation, LayerSpotlight, LayerImprovement)
	case 4:
		return plan(LayerObservation, LayerSpotlight, LayerCausalLink, LayerImprovement)
	}

	layers := []Layer{LayerObservation, LayerSpotlight, LayerCausalLink, LayerImprovement, LayerSocialProof}
	if n >= 6 {
		layers = append(layers, LayerExpansion)
	}
	for len(layers) < n {
		layers = append(layers, LayerGenericFollowUp)
	}
	return plan(layers...)
}

func plan(layers ...Layer) []Contract {
	out := make([]Contract, len(layers))
	for i, l := range layers {
		out[i] = layerContracts[l]
	}
	return out
}
