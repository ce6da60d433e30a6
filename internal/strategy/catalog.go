package strategy

// roleCatalog fixes, per persona, the frictions a message campaign may
// legitimately address. Slice order is the order activeWorkflows will
// carry, so it must stay stable.
var roleCatalog = map[RoleCategory][]WorkflowTag{
	RoleEngineering: {
		WorkflowUnqualifiedEscalations,
		WorkflowPreSalesFeasibility,
		WorkflowIntegrationSupportLoad,
		WorkflowRoadmapDistraction,
	},
	RoleDevOps: {
		WorkflowAlertFatigue,
		WorkflowDeployInterruptions,
		WorkflowOnCallNoise,
	},
	RoleSecurity: {
		WorkflowSecurityQuestionnaires,
		WorkflowVendorRiskReviews,
		WorkflowUnqualifiedEscalations,
	},
	RoleData: {
		WorkflowDataRequestQueue,
		WorkflowReportTurnaround,
		WorkflowDataQualityTriage,
	},
	RoleProduct: {
		WorkflowFeedbackNoise,
		WorkflowRoadmapDistraction,
		WorkflowPreSalesFeasibility,
	},
	RoleSales: {
		WorkflowManualResearch,
		WorkflowFollowUpDiscipline,
		WorkflowPipelineHygiene,
		WorkflowUnqualifiedEscalations,
	},
}

// capabilityCatalog bridges each claimed capability to the frictions it
// can plausibly address. A message may only claim a friction that both
// the persona owns and at least one capability reaches.
var capabilityCatalog = map[CapabilityTag][]WorkflowTag{
	CapQualification:           {WorkflowUnqualifiedEscalations, WorkflowPreSalesFeasibility, WorkflowManualResearch},
	CapFiltering:               {WorkflowUnqualifiedEscalations, WorkflowFeedbackNoise, WorkflowPipelineHygiene},
	CapEnrichment:              {WorkflowManualResearch, WorkflowDataQualityTriage},
	CapSecurityReviewReduction: {WorkflowSecurityQuestionnaires, WorkflowVendorRiskReviews},
	CapPipelineAutomation:      {WorkflowPipelineHygiene, WorkflowFollowUpDiscipline, WorkflowManualResearch},
	CapPersonalization:         {WorkflowFollowUpDiscipline, WorkflowFeedbackNoise},
	CapAnalytics:               {WorkflowReportTurnaround, WorkflowDataRequestQueue, WorkflowPipelineHygiene},
	CapDeliverability:          {WorkflowFollowUpDiscipline, WorkflowPipelineHygiene},
	CapScheduling:              {WorkflowFollowUpDiscipline},
	CapCRMSync:                 {WorkflowPipelineHygiene, WorkflowDataQualityTriage},
	CapIntentSignals:           {WorkflowManualResearch, WorkflowUnqualifiedEscalations, WorkflowPreSalesFeasibility},
}

var workflowDescriptions = map[WorkflowTag]string{
	WorkflowUnqualifiedEscalations: "escalations from unqualified or poorly matched prospects that land on the wrong desk",
	WorkflowPreSalesFeasibility:    "pre-sales feasibility and integration questions pulled onto technical staff",
	WorkflowIntegrationSupportLoad: "support load from integration questions raised by prospects who were never a fit",
	WorkflowRoadmapDistraction:     "roadmap time lost to one-off requests from deals that should have been filtered earlier",
	WorkflowAlertFatigue:           "alert fatigue from noise that drowns out the incidents that matter",
	WorkflowDeployInterruptions:    "deployments interrupted by ad-hoc requests and context switches",
	WorkflowOnCallNoise:            "on-call rotations burdened by pages that should never have fired",
	WorkflowSecurityQuestionnaires: "security questionnaires triggered by deals that were never going to close",
	WorkflowVendorRiskReviews:      "vendor risk reviews queued for tools nobody ends up buying",
	WorkflowDataRequestQueue:       "a backlog of ad-hoc data pulls from teams that cannot self-serve",
	WorkflowReportTurnaround:       "slow turnaround on recurring reports assembled by hand",
	WorkflowDataQualityTriage:      "time spent triaging stale or duplicate records before any analysis can start",
	WorkflowFeedbackNoise:          "user feedback channels too noisy to mine for real signal",
	WorkflowManualResearch:         "hours of manual prospect research before the first touch",
	WorkflowFollowUpDiscipline:     "follow-ups that slip because sequencing is tracked by hand",
	WorkflowPipelineHygiene:        "pipeline records that decay without constant manual upkeep",
}

// AllowedWorkflows returns the fixed, ordered friction list for a
// persona. Every role has a non-empty catalog entry.
func AllowedWorkflows(role RoleCategory) []WorkflowTag {
	allowed := roleCatalog[role]
	out := make([]WorkflowTag, len(allowed))
	copy(out, allowed)
	return out
}

// WorkflowDescription returns the fixed human-readable description used
// for prompt rendering.
func WorkflowDescription(tag WorkflowTag) string {
	return workflowDescriptions[tag]
}
