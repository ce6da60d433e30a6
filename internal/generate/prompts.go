package generate

import (
	"fmt"
	"strings"

	"cadence/internal/narrative"
	"cadence/internal/strategy"
)

const systemPromptBase = `You write short, grounded B2B outreach sequences.
Every claim must trace back to the prospect facts and sender capabilities supplied below. Never invent statistics, customers, or product behavior.
Each message fulfills the narrative layer assigned to its position; all messages argue for the same single workflow friction, chosen from the active workflows list.
Respond with ONLY a JSON object, no commentary, in this shape:
{
  "analysis": {
    "prospect_insights": "what the supplied facts say about this prospect",
    "personalization_hooks": ["hook 1", "hook 2"],
    "value_proposition": "one sentence naming the workflow friction addressed"
  },
  "messages": [
    {"step": 1, "message": "...", "reasoning": "Angle: ... Workflow: ... Signal: ..."}
  ],
  "confidence": 0.0
}
The reasoning field of every message must contain Angle:, Workflow:, and Signal: components.`

func buildSystemPrompt(toneDescription string) string {
	if strings.TrimSpace(toneDescription) == "" {
		return systemPromptBase
	}
	return systemPromptBase + "\n\nVoice and tone: " + strings.TrimSpace(toneDescription)
}

func buildUserPrompt(req Request, strat strategy.MessageStrategy, plan []narrative.Contract) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Prospect:\n")
	if req.Profile.Name != "" {
		fmt.Fprintf(&b, "- Name: %s\n", req.Profile.Name)
	}
	if req.Profile.Headline != "" {
		fmt.Fprintf(&b, "- Headline: %s\n", req.Profile.Headline)
	}
	if req.Profile.Company != "" {
		fmt.Fprintf(&b, "- Company: %s\n", req.Profile.Company)
	}
	fmt.Fprintf(&b, "- Role: %s", req.Profile.RoleCategory)
	if req.Profile.Seniority != "" {
		fmt.Fprintf(&b, " (%s)", req.Profile.Seniority)
	}
	b.WriteString("\n")
	if len(req.Profile.Skills) > 0 {
		fmt.Fprintf(&b, "- Skills: %s\n", strings.Join(req.Profile.Skills, ", "))
	}
	if len(req.Profile.InferredResponsibilities) > 0 {
		fmt.Fprintf(&b, "- Likely responsibilities: %s\n", strings.Join(req.Profile.InferredResponsibilities, ", "))
	}

	fmt.Fprintf(&b, "\nSender's own description of what they do:\n%s\n", strings.TrimSpace(req.CompanyContext))

	fmt.Fprintf(&b, "\nTarget persona for this sequence: %s\n", strat.TargetPersona)
	b.WriteString("Active workflows (pick ONE and argue for it in every message):\n")
	for _, wf := range strat.ActiveWorkflows {
		fmt.Fprintf(&b, "- %s: %s\n", wf, strategy.WorkflowDescription(wf))
	}
	if len(strat.ActiveWorkflows) == 0 {
		b.WriteString("Claimed capabilities reach none of this persona's workflows; fall back to these and stay conservative:\n")
		for _, wf := range strat.AllowedWorkflows {
			fmt.Fprintf(&b, "- %s: %s\n", wf, strategy.WorkflowDescription(wf))
		}
	}
	fmt.Fprintf(&b, "Claimed capabilities: %s\n", joinTags(strat.CapabilityTags))

	fmt.Fprintf(&b, "\nWrite exactly %d messages. Narrative layer per position:\n", req.SequenceLength)
	for i, contract := range plan {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, contract.Layer, contract.Goal)
		fmt.Fprintf(&b, "   Greeting: %s.\n", contract.Greeting)
		if contract.WordLimit > 0 {
			fmt.Fprintf(&b, "   Hard limit: %d words.\n", contract.WordLimit)
		}
		fmt.Fprintf(&b, "   Must: %s.\n", contract.Requires)
		fmt.Fprintf(&b, "   Style guide (do not copy): %s\n", contract.Example)
	}

	return b.String()
}

func joinTags(tags []strategy.CapabilityTag) string {
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = string(tag)
	}
	return strings.Join(parts, ", ")
}
