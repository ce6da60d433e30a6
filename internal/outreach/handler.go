package outreach

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cadence/internal/enrich"
	"cadence/internal/generate"
	"cadence/pkg/logging"
	"cadence/pkg/middleware"
)

// Generator runs the generation pipeline for one request.
type Generator interface {
	Generate(ctx context.Context, req generate.Request) (*generate.Result, error)
}

// UsagePublisher receives a best-effort usage event per generation.
type UsagePublisher interface {
	PublishGeneration(prospectID string, alignmentScore float64, issueCount int, outcome string) error
}

type HandlerConfig struct {
	Generator Generator
	Store     *SequenceStore
	Enricher  enrich.Provider
	Usage     UsagePublisher
	Logger    logging.Logger
}

// Handler is the thin HTTP surface over the pipeline: request binding,
// profile resolution, idempotency lookup, audit persistence.
type Handler struct {
	generator Generator
	store     *SequenceStore
	enricher  enrich.Provider
	usage     UsagePublisher
	logger    logging.Logger
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		generator: cfg.Generator,
		store:     cfg.Store,
		enricher:  cfg.Enricher,
		usage:     cfg.Usage,
		logger:    cfg.Logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/cadence/sequences", h.CreateSequence)
}

type createSequenceRequest struct {
	ProspectID      string                  `json:"prospect_id"`
	ProspectProfile *enrich.ProspectProfile `json:"prospect_profile"`
	CompanyContext  string                  `json:"company_context" binding:"required"`
	ToneDescription string                  `json:"tone_description"`
	SequenceLength  int                     `json:"sequence_length" binding:"required,min=1,max=10"`
}

type createSequenceResponse struct {
	SequenceID string          `json:"sequence_id"`
	Cached     bool            `json:"cached"`
	Sequence   json.RawMessage `json:"sequence,omitempty"`
	Strategy   json.RawMessage `json:"strategy,omitempty"`
	Issues     []string        `json:"issues,omitempty"`
}

func (h *Handler) CreateSequence(c *gin.Context) {
	logger := middleware.GetContextLogger(c, h.logger)

	var req createSequenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ProspectID == "" && req.ProspectProfile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prospect_id or prospect_profile required"})
		return
	}

	profile, err := h.resolveProfile(c.Request.Context(), req)
	if err != nil {
		logger.WithError(err).Warn("Prospect enrichment failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "prospect enrichment failed"})
		return
	}

	// Idempotency pre-check: a cache hit never reaches the strategy
	// engine or the model.
	digest := RequestDigest(profile.Identifier, req.ToneDescription, req.CompanyContext, req.SequenceLength, generate.PolicyVersion)
	if cached, lookupErr := h.store.FindByDigest(c.Request.Context(), digest); lookupErr != nil {
		logger.WithError(lookupErr).Warn("Idempotency lookup failed, generating fresh")
	} else if cached != nil {
		c.JSON(http.StatusOK, createSequenceResponse{
			SequenceID: cached.ID,
			Cached:     true,
			Sequence:   cached.Payload,
			Strategy:   cached.Strategy,
		})
		return
	}

	result, err := h.generator.Generate(c.Request.Context(), generate.Request{
		CompanyContext:  req.CompanyContext,
		Profile:         profile,
		ToneDescription: req.ToneDescription,
		SequenceLength:  req.SequenceLength,
	})
	if err != nil {
		if errors.Is(err, generate.ErrGenerationFailed) {
			h.publishUsage(profile.Identifier, 0, 0, "failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "generation failed"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, err := json.Marshal(result.Sequence)
	if err != nil {
		logger.WithError(err).Error("Failed to marshal sequence payload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	strategyJSON, err := json.Marshal(result.Strategy)
	if err != nil {
		logger.WithError(err).Error("Failed to marshal strategy")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	id, err := h.store.Save(c.Request.Context(), StoredSequence{
		Digest:      digest,
		ProspectID:  profile.Identifier,
		Payload:     payload,
		Strategy:    strategyJSON,
		RawResponse: result.RawResponse,
	})
	if err != nil {
		// Audit persistence is best-effort; the caller still gets
		// the sequence.
		logger.WithError(err).Error("Failed to persist sequence audit record")
	}

	h.publishUsage(profile.Identifier, result.Strategy.AlignmentScore, len(result.Issues), "ok")

	c.JSON(http.StatusOK, createSequenceResponse{
		SequenceID: id,
		Cached:     false,
		Sequence:   payload,
		Strategy:   strategyJSON,
		Issues:     result.Issues,
	})
}

func (h *Handler) resolveProfile(ctx context.Context, req createSequenceRequest) (enrich.ProspectProfile, error) {
	if req.ProspectProfile != nil {
		profile := *req.ProspectProfile
		if profile.Identifier == "" {
			profile.Identifier = req.ProspectID
		}
		return profile, nil
	}
	if h.enricher == nil {
		return enrich.ProspectProfile{}, errors.New("enrichment provider not configured")
	}
	return h.enricher.Enrich(ctx, req.ProspectID)
}

func (h *Handler) publishUsage(prospectID string, alignmentScore float64, issueCount int, outcome string) {
	if h.usage == nil {
		return
	}
	if err := h.usage.PublishGeneration(prospectID, alignmentScore, issueCount, outcome); err != nil {
		h.logger.WithError(err).Warn("Failed to publish usage event")
	}
}
