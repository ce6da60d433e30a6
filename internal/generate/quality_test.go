package generate

import (
	"strings"
	"testing"

	"cadence/internal/enrich"
	"cadence/internal/strategy"
)

func cleanSequence() Sequence {
	return Sequence{
		Analysis: Analysis{
			ProspectInsights:     "Owns the vendor review process and threat modeling practice at Acme",
			PersonalizationHooks: []string{"new vendor policy", "team of four"},
			ValueProposition:     "fewer security questionnaires reaching the review queue",
		},
		Messages: []Message{
			{Step: 1, Message: "Saw you own the vendor review queue at Acme.", Reasoning: "Angle: observation Workflow: security-questionnaires Signal: headline"},
			{Step: 2, Message: "Our qualification layer keeps mismatched deals out before paperwork starts.", Reasoning: "Angle: spotlight Workflow: security-questionnaires Signal: context"},
			{Step: 3, Message: "That is an afternoon a week back for actual threat modeling. Worth a short call?", Reasoning: "Angle: improvement Workflow: security-questionnaires Signal: skills"},
		},
		Confidence: 0.8,
	}
}

func securityProfile() enrich.ProspectProfile {
	return enrich.ProspectProfile{
		Identifier:   "alice-1",
		Name:         "Alice",
		Headline:     "VP Security at Acme",
		Company:      "Acme",
		RoleCategory: strategy.RoleSecurity,
		Skills:       []string{"threat modeling", "vendor review"},
	}
}

func TestAssessQuality_CleanSequence(t *testing.T) {
	seq := cleanSequence()
	issues := assessQuality(&seq, securityProfile(), strategy.RoleSecurity)
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestAssessQuality_HookCount(t *testing.T) {
	seq := cleanSequence()
	seq.Analysis.PersonalizationHooks = []string{"only one"}
	issues := assessQuality(&seq, securityProfile(), strategy.RoleSecurity)
	if !hasIssueContaining(issues, "personalization hooks") {
		t.Fatalf("expected hook-count issue, got %v", issues)
	}

	seq.Analysis.PersonalizationHooks = []string{"a", "b", "c"}
	issues = assessQuality(&seq, securityProfile(), strategy.RoleSecurity)
	if !hasIssueContaining(issues, "personalization hooks") {
		t.Fatalf("expected hook-count issue for 3 hooks, got %v", issues)
	}
}

func TestAssessQuality_InventedStatistic(t *testing.T) {
	seq := cleanSequence()
	seq.Messages[1].Message = "Teams cut their review load by 47% with us."
	issues := assessQuality(&seq, securityProfile(), strategy.RoleSecurity)
	if !hasIssueContaining(issues, "percentage") {
		t.Fatalf("expected invented-statistic issue, got %v", issues)
	}
}

func TestAssessQuality_SkillReference(t *testing.T) {
	seq := cleanSequence()
	seq.Analysis.ProspectInsights = "A busy leader at a growing company"
	issues := assessQuality(&seq, securityProfile(), strategy.RoleSecurity)
	if !hasIssueContaining(issues, "known skill") {
		t.Fatalf("expected skill-reference issue, got %v", issues)
	}

	// No skills supplied means the check cannot fire.
	profile := securityProfile()
	profile.Skills = nil
	issues = assessQuality(&seq, profile, strategy.RoleSecurity)
	if hasIssueContaining(issues, "known skill") {
		t.Fatalf("skill issue must not fire without skills, got %v", issues)
	}
}

func TestAssessQuality_HardDomainClaims(t *testing.T) {
	seq := cleanSequence()
	seq.Analysis.ValueProposition = "we improve backend performance for your team"
	issues := assessQuality(&seq, securityProfile(), strategy.RoleSecurity)
	if !hasIssueContaining(issues, "domain claim") {
		t.Fatalf("expected domain-claim issue for non-sales persona, got %v", issues)
	}

	// Sales personas are exempt: outbound is their literal workflow.
	issues = assessQuality(&seq, securityProfile(), strategy.RoleSales)
	if hasIssueContaining(issues, "domain claim") {
		t.Fatalf("sales persona must be exempt, got %v", issues)
	}
}

func TestAssessQuality_FirstStepWordLimit(t *testing.T) {
	seq := cleanSequence()
	seq.Messages[0].Message = strings.Repeat("word ", 61)
	issues := assessQuality(&seq, securityProfile(), strategy.RoleSecurity)
	if !hasIssueContaining(issues, "step 1 runs") {
		t.Fatalf("expected word-limit issue, got %v", issues)
	}
}

func TestAssessQuality_ReasoningLabels(t *testing.T) {
	seq := cleanSequence()
	seq.Messages[2].Reasoning = "just felt right"
	issues := assessQuality(&seq, securityProfile(), strategy.RoleSecurity)
	for _, label := range []string{"Angle:", "Workflow:", "Signal:"} {
		if !hasIssueContaining(issues, label) {
			t.Fatalf("expected missing %q issue, got %v", label, issues)
		}
	}
}

func TestAssessQuality_AllQuestions(t *testing.T) {
	seq := cleanSequence()
	for i := range seq.Messages {
		seq.Messages[i].Message = strings.TrimSuffix(strings.TrimSpace(seq.Messages[i].Message), ".") + "?"
	}
	issues := assessQuality(&seq, securityProfile(), strategy.RoleSecurity)
	if !hasIssueContaining(issues, "ends with a question") {
		t.Fatalf("expected all-questions issue, got %v", issues)
	}
}

func TestRestatementRatio(t *testing.T) {
	a := "The review queue keeps growing every quarter for vendor deals"
	b := "Vendor review queue growing again this quarter"
	if ratio := restatementRatio(a, b); ratio <= restatementLimit {
		t.Fatalf("expected high overlap, got %v", ratio)
	}

	if ratio := restatementRatio("alpha bravo charlie", "delta echo foxtrot"); ratio != 0 {
		t.Fatalf("disjoint messages must score 0, got %v", ratio)
	}

	if ratio := restatementRatio("", "anything here"); ratio != 0 {
		t.Fatalf("empty message must score 0, got %v", ratio)
	}
}

func TestAssessQuality_InventedStatisticInHooks(t *testing.T) {
	seq := cleanSequence()
	seq.Analysis.PersonalizationHooks = []string{"cut review load by 30%", "team of four"}
	issues := assessQuality(&seq, securityProfile(), strategy.RoleSecurity)
	if !hasIssueContaining(issues, "percentage") {
		t.Fatalf("expected invented-statistic issue for hooks, got %v", issues)
	}
}

func TestAssessQuality_ExactHalfOverlapIsFlagged(t *testing.T) {
	seq := cleanSequence()
	// Both messages carry four content words sharing exactly two:
	// overlap/min = 2/4 = 0.5, right on the threshold.
	seq.Messages[0].Message = "alpha bravo charlie delta"
	seq.Messages[1].Message = "alpha bravo echos foxtrots"
	issues := assessQuality(&seq, securityProfile(), strategy.RoleSecurity)
	if !hasIssueContaining(issues, "restate") {
		t.Fatalf("expected restatement issue at exactly 50%% overlap, got %v", issues)
	}
}

func TestAssessQuality_AdjacentRestatement(t *testing.T) {
	seq := cleanSequence()
	seq.Messages[1].Message = seq.Messages[0].Message
	issues := assessQuality(&seq, securityProfile(), strategy.RoleSecurity)
	if !hasIssueContaining(issues, "restate") {
		t.Fatalf("expected restatement issue, got %v", issues)
	}
}

func hasIssueContaining(issues []string, sub string) bool {
	for _, issue := range issues {
		if strings.Contains(issue, sub) {
			return true
		}
	}
	return false
}
