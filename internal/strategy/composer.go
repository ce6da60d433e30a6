package strategy

import (
	"fmt"
	"math"
)

// ComputeStrategy composes the full message strategy for one request.
// Pure and deterministic: context always decides the persona, the
// enriched role is kept only for the audit note and never overrides it.
func ComputeStrategy(companyContext string, enrichedRole RoleCategory) MessageStrategy {
	persona := InferTargetRole(companyContext)
	tags := ExtractCapabilityTags(companyContext)
	allowed := AllowedWorkflows(persona)

	reachable := make(map[WorkflowTag]bool)
	for _, tag := range tags {
		for _, wf := range capabilityCatalog[tag] {
			reachable[wf] = true
		}
	}

	// Intersection keeps the allowed-list order, not set iteration
	// order, so repeated calls are bit-identical.
	var active []WorkflowTag
	for _, wf := range allowed {
		if reachable[wf] {
			active = append(active, wf)
		}
	}

	score := 0.0
	if len(allowed) > 0 {
		score = math.Round(float64(len(active))/float64(len(allowed))*100) / 100
	}

	return MessageStrategy{
		TargetPersona:    persona,
		CapabilityTags:   tags,
		AllowedWorkflows: allowed,
		ActiveWorkflows:  active,
		AlignmentScore:   score,
		AlignmentNote:    alignmentNote(enrichedRole, persona, score),
	}
}

func alignmentNote(enrichedRole, persona RoleCategory, score float64) string {
	var shift string
	if enrichedRole != persona {
		shift = fmt.Sprintf("persona shift: enriched role %s, targeting %s", enrichedRole, persona)
	} else {
		shift = fmt.Sprintf("persona matches enriched role %s", persona)
	}
	return shift + "; " + classifyAlignment(score)
}

func classifyAlignment(score float64) string {
	switch {
	case score >= 0.75:
		return "strong capability alignment"
	case score >= 0.5:
		return "moderate capability alignment"
	case score > 0:
		return "low capability alignment"
	default:
		return "no overlap between claimed capabilities and persona workflows"
	}
}
