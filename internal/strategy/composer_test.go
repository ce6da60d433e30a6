package strategy

import (
	"reflect"
	"strings"
	"testing"
)

func TestComputeStrategy_SecurityPersonaShift(t *testing.T) {
	ctx := "We help sales teams qualify prospects so fewer security reviews are triggered"
	strat := ComputeStrategy(ctx, RoleEngineering)

	if strat.TargetPersona != RoleSecurity {
		t.Fatalf("expected security persona, got %s", strat.TargetPersona)
	}
	if !hasTag(strat.CapabilityTags, CapQualification) || !hasTag(strat.CapabilityTags, CapSecurityReviewReduction) {
		t.Fatalf("expected qualification and security-review-reduction tags, got %v", strat.CapabilityTags)
	}
	if strat.AlignmentScore != 1.0 {
		t.Fatalf("expected alignment 1.0, got %v", strat.AlignmentScore)
	}
	if !strings.Contains(strat.AlignmentNote, "persona shift") {
		t.Fatalf("expected persona shift note, got %q", strat.AlignmentNote)
	}
}

func TestComputeStrategy_DefaultsOnUnrecognizedContext(t *testing.T) {
	strat := ComputeStrategy("we make things better", RoleEngineering)

	if strat.TargetPersona != RoleEngineering {
		t.Fatalf("expected engineering fallback, got %s", strat.TargetPersona)
	}
	if len(strat.CapabilityTags) != 1 || strat.CapabilityTags[0] != CapQualification {
		t.Fatalf("expected default qualification tag, got %v", strat.CapabilityTags)
	}
	if strat.AlignmentScore <= 0 {
		t.Fatalf("qualification must intersect the engineering catalog, got score %v", strat.AlignmentScore)
	}
	if !strings.Contains(strat.AlignmentNote, "persona matches") {
		t.Fatalf("expected no-shift note, got %q", strat.AlignmentNote)
	}
}

func TestComputeStrategy_Deterministic(t *testing.T) {
	ctx := "automation for outbound sales teams with crm sync and analytics"
	a := ComputeStrategy(ctx, RoleSales)
	b := ComputeStrategy(ctx, RoleSales)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("strategy not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestComputeStrategy_ActiveIsOrderedSubsetOfAllowed(t *testing.T) {
	contexts := []string{
		"",
		"we make things better",
		"security questionnaires slow our vendor risk process",
		"automation, analytics, crm, enrichment, intent signals for sales teams",
		"devops incident tooling with on-call scheduling",
	}
	roles := []RoleCategory{RoleEngineering, RoleDevOps, RoleSecurity, RoleData, RoleProduct, RoleSales}

	for _, ctx := range contexts {
		for _, role := range roles {
			strat := ComputeStrategy(ctx, role)
			if strat.AlignmentScore < 0 || strat.AlignmentScore > 1 {
				t.Fatalf("score out of bounds for %q: %v", ctx, strat.AlignmentScore)
			}
			if (strat.AlignmentScore == 0) != (len(strat.ActiveWorkflows) == 0) {
				t.Fatalf("zero score must coincide with empty active set for %q", ctx)
			}
			pos := 0
			for _, wf := range strat.ActiveWorkflows {
				found := false
				for ; pos < len(strat.AllowedWorkflows); pos++ {
					if strat.AllowedWorkflows[pos] == wf {
						found = true
						pos++
						break
					}
				}
				if !found {
					t.Fatalf("active workflow %s not an ordered subset of allowed for %q", wf, ctx)
				}
			}
		}
	}
}

func TestExtractCapabilityTags_NeverEmpty(t *testing.T) {
	inputs := []string{"", "   ", "we make things better", "lorem ipsum dolor"}
	for _, in := range inputs {
		tags := ExtractCapabilityTags(in)
		if len(tags) == 0 {
			t.Fatalf("expected non-empty tags for %q", in)
		}
	}
}

func TestExtractCapabilityTags_FallbackHeuristics(t *testing.T) {
	tags := ExtractCapabilityTags("we automate the boring parts")
	if len(tags) != 1 || tags[0] != CapPipelineAutomation {
		t.Fatalf("expected pipeline-automation fallback, got %v", tags)
	}

	tags = ExtractCapabilityTags("built for modern sales orgs")
	if len(tags) != 1 || tags[0] != CapQualification {
		t.Fatalf("expected qualification fallback, got %v", tags)
	}
}

func TestInferTargetRole_Fallbacks(t *testing.T) {
	cases := []struct {
		ctx  string
		want RoleCategory
	}{
		{"everything about selling, for sales", RoleSales},
		{"we do ops stuff", RoleDevOps},
		{"no keywords here at all", RoleEngineering},
	}
	for _, tc := range cases {
		if got := InferTargetRole(tc.ctx); got != tc.want {
			t.Fatalf("InferTargetRole(%q) = %s, want %s", tc.ctx, got, tc.want)
		}
	}
}

func TestAllowedWorkflows_EveryRoleNonEmpty(t *testing.T) {
	for _, role := range []RoleCategory{RoleEngineering, RoleDevOps, RoleSecurity, RoleData, RoleProduct, RoleSales} {
		allowed := AllowedWorkflows(role)
		if len(allowed) < 3 || len(allowed) > 4 {
			t.Fatalf("role %s catalog entry has %d workflows", role, len(allowed))
		}
		for _, wf := range allowed {
			if WorkflowDescription(wf) == "" {
				t.Fatalf("workflow %s has no description", wf)
			}
		}
	}
}

func hasTag(tags []CapabilityTag, want CapabilityTag) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}

