package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"

	"cadence/internal/strategy"
	"cadence/pkg/logging"
)

// Provider supplies structured prospect profiles. The generation
// pipeline never calls this itself; the handler resolves the profile
// first and passes the finished value down.
type Provider interface {
	Enrich(ctx context.Context, identifier string) (ProspectProfile, error)
}

type HTTPConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Logger  logging.Logger
}

// HTTPProvider fetches profiles from an external enrichment API.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  logging.Logger
}

func NewHTTPProvider(cfg HTTPConfig) *HTTPProvider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &HTTPProvider{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		logger:  cfg.Logger,
	}
}

func (p *HTTPProvider) Enrich(ctx context.Context, identifier string) (ProspectProfile, error) {
	if p == nil || p.baseURL == "" {
		return ProspectProfile{}, fmt.Errorf("enrichment provider not configured")
	}

	url := fmt.Sprintf("%s/v1/profiles/%s", p.baseURL, identifier)

	policy := retrypolicy.NewBuilder[*http.Response]().
		WithBackoff(200*time.Millisecond, 2*time.Second).
		WithMaxRetries(2).
		HandleIf(func(resp *http.Response, err error) bool {
			if err != nil || resp == nil {
				return true
			}
			return resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		}).
		Build()

	resp, err := failsafe.With(policy).WithContext(ctx).Get(func() (*http.Response, error) {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if reqErr != nil {
			return nil, reqErr
		}
		if p.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+p.apiKey)
		}
		r, doErr := p.client.Do(req)
		if doErr != nil {
			return nil, doErr
		}
		if r.StatusCode >= 500 || r.StatusCode == http.StatusTooManyRequests {
			_ = r.Body.Close()
		}
		return r, nil
	})
	if err != nil {
		return ProspectProfile{}, fmt.Errorf("enrich %s: %w", identifier, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return ProspectProfile{}, fmt.Errorf("enrich %s: unexpected status %d", identifier, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ProspectProfile{}, fmt.Errorf("enrich %s: read response: %w", identifier, err)
	}

	var raw struct {
		Identifier               string   `json:"identifier"`
		Name                     string   `json:"name"`
		Headline                 string   `json:"headline"`
		Company                  string   `json:"company"`
		RoleCategory             string   `json:"role_category"`
		Seniority                string   `json:"seniority"`
		Skills                   []string `json:"skills"`
		InferredResponsibilities []string `json:"inferred_responsibilities"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return ProspectProfile{}, fmt.Errorf("enrich %s: decode response: %w", identifier, err)
	}

	profile := ProspectProfile{
		Identifier:               raw.Identifier,
		Name:                     raw.Name,
		Headline:                 raw.Headline,
		Company:                  raw.Company,
		RoleCategory:             strategy.ParseRoleCategory(raw.RoleCategory),
		Seniority:                raw.Seniority,
		Skills:                   raw.Skills,
		InferredResponsibilities: raw.InferredResponsibilities,
	}
	if profile.Identifier == "" {
		profile.Identifier = identifier
	}
	return profile, nil
}
