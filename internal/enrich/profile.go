package enrich

import "cadence/internal/strategy"

// ProspectProfile is the structured identity an enrichment provider
// returns for a prospect. The strategy engine reads it but never
// mutates it; RoleCategory here is who the prospect actually is, which
// may differ from the persona a campaign targets.
type ProspectProfile struct {
	Identifier               string                `json:"identifier"`
	Name                     string                `json:"name"`
	Headline                 string                `json:"headline"`
	Company                  string                `json:"company"`
	RoleCategory             strategy.RoleCategory `json:"role_category"`
	Seniority                string                `json:"seniority"`
	Skills                   []string              `json:"skills"`
	InferredResponsibilities []string              `json:"inferred_responsibilities"`
}
