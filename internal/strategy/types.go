package strategy

import "strings"

// RoleCategory is the closed vocabulary of roles a message can target.
// The same vocabulary describes a prospect's actual identity from
// enrichment; the two uses are never conflated.
type RoleCategory string

const (
	RoleEngineering RoleCategory = "engineering"
	RoleDevOps      RoleCategory = "devops"
	RoleSecurity    RoleCategory = "security"
	RoleData        RoleCategory = "data"
	RoleProduct     RoleCategory = "product"
	RoleSales       RoleCategory = "sales"
)

// ParseRoleCategory normalizes a free-form role string from an external
// source. Unknown values fall back to engineering, the same default the
// persona inference uses.
func ParseRoleCategory(s string) RoleCategory {
	switch role := RoleCategory(strings.ToLower(strings.TrimSpace(s))); role {
	case RoleEngineering, RoleDevOps, RoleSecurity, RoleData, RoleProduct, RoleSales:
		return role
	default:
		return RoleEngineering
	}
}

// CapabilityTag is a normalized label for one thing the seller's
// product does, extracted from the free-text company context.
type CapabilityTag string

const (
	CapQualification           CapabilityTag = "qualification"
	CapFiltering               CapabilityTag = "filtering"
	CapEnrichment              CapabilityTag = "enrichment"
	CapSecurityReviewReduction CapabilityTag = "security-review-reduction"
	CapPipelineAutomation      CapabilityTag = "pipeline-automation"
	CapPersonalization         CapabilityTag = "personalization"
	CapAnalytics               CapabilityTag = "analytics"
	CapDeliverability          CapabilityTag = "deliverability"
	CapScheduling              CapabilityTag = "scheduling"
	CapCRMSync                 CapabilityTag = "crm-sync"
	CapIntentSignals           CapabilityTag = "intent-signals"
)

// WorkflowTag names a concrete operational friction a role experiences.
type WorkflowTag string

const (
	WorkflowUnqualifiedEscalations WorkflowTag = "unqualified-escalations"
	WorkflowPreSalesFeasibility    WorkflowTag = "pre-sales-feasibility"
	WorkflowIntegrationSupportLoad WorkflowTag = "integration-support-load"
	WorkflowRoadmapDistraction     WorkflowTag = "roadmap-distraction"
	WorkflowAlertFatigue           WorkflowTag = "alert-fatigue"
	WorkflowDeployInterruptions    WorkflowTag = "deployment-interruptions"
	WorkflowOnCallNoise            WorkflowTag = "on-call-noise"
	WorkflowSecurityQuestionnaires WorkflowTag = "security-questionnaires"
	WorkflowVendorRiskReviews      WorkflowTag = "vendor-risk-reviews"
	WorkflowDataRequestQueue       WorkflowTag = "data-request-queue"
	WorkflowReportTurnaround       WorkflowTag = "report-turnaround"
	WorkflowDataQualityTriage      WorkflowTag = "data-quality-triage"
	WorkflowFeedbackNoise          WorkflowTag = "feedback-noise"
	WorkflowManualResearch         WorkflowTag = "manual-prospect-research"
	WorkflowFollowUpDiscipline     WorkflowTag = "follow-up-discipline"
	WorkflowPipelineHygiene        WorkflowTag = "pipeline-hygiene"
)

// MessageStrategy is the composed, immutable outcome of the strategy
// engine for one request. It is serialized verbatim for audit.
type MessageStrategy struct {
	TargetPersona    RoleCategory    `json:"target_persona"`
	CapabilityTags   []CapabilityTag `json:"capability_tags"`
	AllowedWorkflows []WorkflowTag   `json:"allowed_workflows"`
	ActiveWorkflows  []WorkflowTag   `json:"active_workflows"`
	AlignmentScore   float64         `json:"alignment_score"`
	AlignmentNote    string          `json:"alignment_note"`
}
