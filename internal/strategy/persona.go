package strategy

import "strings"

type personaRule struct {
	keywords []string
	role     RoleCategory
	weight   int
}

// personaRules is evaluated in declaration order. A rule fires when any
// of its keywords appears as a case-insensitive substring of the
// context; ties between nonzero scores resolve to the role whose rule
// fired first, so the order here is part of the contract.
var personaRules = []personaRule{
	{keywords: []string{"security review", "security questionnaire", "vendor risk", "compliance"}, role: RoleSecurity, weight: 3},
	{keywords: []string{"security", "soc 2", "penetration", "threat"}, role: RoleSecurity, weight: 2},
	{keywords: []string{"devops", "site reliability", "on-call", "incident"}, role: RoleDevOps, weight: 3},
	{keywords: []string{"deploy", "kubernetes", "infrastructure"}, role: RoleDevOps, weight: 2},
	{keywords: []string{"data team", "data engineer", "warehouse", "analytics"}, role: RoleData, weight: 3},
	{keywords: []string{"dashboard", "etl", "reporting"}, role: RoleData, weight: 2},
	{keywords: []string{"product manager", "product team", "roadmap"}, role: RoleProduct, weight: 3},
	{keywords: []string{"feature request", "user feedback"}, role: RoleProduct, weight: 2},
	{keywords: []string{"sales team", "sales rep", "account executive", "quota"}, role: RoleSales, weight: 2},
	{keywords: []string{"prospect", "outbound", "cold email", "crm"}, role: RoleSales, weight: 1},
	{keywords: []string{"engineering team", "developer", "backend", "sdk"}, role: RoleEngineering, weight: 2},
	{keywords: []string{"technical", "integration"}, role: RoleEngineering, weight: 1},
}

type personaFallback struct {
	keyword string
	role    RoleCategory
}

// Coarse checks applied only when no weighted rule fired at all.
var personaFallbacks = []personaFallback{
	{"sales", RoleSales},
	{"security", RoleSecurity},
	{"data", RoleData},
	{"product", RoleProduct},
	{"ops", RoleDevOps},
}

// InferTargetRole classifies free-text company context into the role
// category the message campaign should target. Pure and total; rules
// are inspectable on purpose so classifications stay explainable for
// audit.
func InferTargetRole(companyContext string) RoleCategory {
	text := strings.ToLower(companyContext)

	scores := make(map[RoleCategory]int)
	var best RoleCategory
	bestScore := 0
	for _, rule := range personaRules {
		matched := false
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		scores[rule.role] += rule.weight
		// Strict inequality keeps earlier-declared roles on ties.
		if scores[rule.role] > bestScore {
			bestScore = scores[rule.role]
			best = rule.role
		}
	}
	if bestScore > 0 {
		return best
	}

	for _, fb := range personaFallbacks {
		if strings.Contains(text, fb.keyword) {
			return fb.role
		}
	}
	return RoleEngineering
}
