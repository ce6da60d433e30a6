package strategy

import "strings"

type capabilityRule struct {
	tag      CapabilityTag
	keywords []string
}

// Each mapping contributes its tag at most once no matter how many of
// its keywords match. Declaration order fixes the order of the
// resulting tag list.
var capabilityRules = []capabilityRule{
	{CapQualification, []string{"qualify", "qualification", "lead scoring", "fit score"}},
	{CapFiltering, []string{"filter", "screen out", "weed out"}},
	{CapEnrichment, []string{"enrich", "firmographic", "data append"}},
	{CapSecurityReviewReduction, []string{"security review", "security questionnaire", "vendor risk"}},
	{CapPipelineAutomation, []string{"automation", "automated workflow", "sequencing"}},
	{CapPersonalization, []string{"personalize", "personalization", "tailored"}},
	{CapAnalytics, []string{"analytics", "reporting", "insight"}},
	{CapDeliverability, []string{"deliverability", "inbox placement", "bounce"}},
	{CapScheduling, []string{"scheduling", "calendar", "book meetings"}},
	{CapCRMSync, []string{"crm", "salesforce", "hubspot"}},
	{CapIntentSignals, []string{"intent", "buying signal", "in-market"}},
}

// ExtractCapabilityTags classifies the company context into the set of
// capabilities the seller claims. Never returns an empty set: fallback
// heuristics fire when no keyword matches, and qualification is the
// final default because it is the most universal capability.
func ExtractCapabilityTags(companyContext string) []CapabilityTag {
	text := strings.ToLower(companyContext)

	var tags []CapabilityTag
	for _, rule := range capabilityRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				tags = append(tags, rule.tag)
				break
			}
		}
	}
	if len(tags) > 0 {
		return tags
	}

	if strings.Contains(text, "automate") {
		tags = append(tags, CapPipelineAutomation)
	}
	if strings.Contains(text, "sales") {
		tags = append(tags, CapQualification)
	}
	if len(tags) == 0 {
		tags = []CapabilityTag{CapQualification}
	}
	return tags
}
