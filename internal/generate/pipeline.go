package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cadence/internal/narrative"
	"cadence/internal/strategy"
	"cadence/pkg/llm"
	"cadence/pkg/logging"
)

const (
	defaultGenerateTimeout = 60 * time.Second
	lowAlignmentThreshold  = 0.25
	maxSequenceLength      = 10
)

// QualityPolicy decides what happens with accumulated content-quality
// findings. The default logs and proceeds; an alternate deployment
// could block or trigger a bounded repair instead.
type QualityPolicy interface {
	Apply(issues []string) error
}

// LogPolicy accepts every sequence and logs its findings.
type LogPolicy struct {
	Logger logging.Logger
}

func (p LogPolicy) Apply(issues []string) error {
	for _, issue := range issues {
		p.Logger.WithField("issue", issue).Warn("Sequence quality finding")
	}
	return nil
}

type PipelineConfig struct {
	LLM     llm.Provider
	Logger  logging.Logger
	Policy  QualityPolicy
	Timeout time.Duration
}

// Pipeline runs the whole generation flow for one request: strategy,
// layer plan, prompt assembly, model call, validation, sanitization,
// confidence blending. Stateless across requests.
type Pipeline struct {
	llm     llm.Provider
	logger  logging.Logger
	policy  QualityPolicy
	timeout time.Duration
}

func NewPipeline(cfg PipelineConfig) *Pipeline {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultGenerateTimeout
	}
	policy := cfg.Policy
	if policy == nil {
		policy = LogPolicy{Logger: cfg.Logger}
	}
	return &Pipeline{
		llm:     cfg.LLM,
		logger:  cfg.Logger,
		policy:  policy,
		timeout: timeout,
	}
}

func (p *Pipeline) Generate(ctx context.Context, req Request) (*Result, error) {
	if p == nil || p.llm == nil {
		return nil, errors.New("LLM provider not configured")
	}
	if req.SequenceLength < 1 || req.SequenceLength > maxSequenceLength {
		return nil, fmt.Errorf("sequence length must be between 1 and %d", maxSequenceLength)
	}

	start := time.Now()

	strat := strategy.ComputeStrategy(req.CompanyContext, req.Profile.RoleCategory)
	alignmentScores.Observe(strat.AlignmentScore)
	if strat.AlignmentScore < lowAlignmentThreshold {
		p.logger.WithFields(logging.Fields{
			"alignment_score": strat.AlignmentScore,
			"alignment_note":  strat.AlignmentNote,
		}).Warn("Low capability alignment for generation request")
	}

	plan := narrative.BuildLayerPlan(req.SequenceLength)

	raw, err := p.complete(ctx, buildSystemPrompt(req.ToneDescription), buildUserPrompt(req, strat, plan))
	if err != nil {
		p.logger.WithError(err).Error("Model call failed")
		generationsTotal.WithLabelValues("failed").Inc()
		return nil, ErrGenerationFailed
	}
	if strings.TrimSpace(raw) == "" {
		p.logger.Error("Model returned empty content")
		generationsTotal.WithLabelValues("failed").Inc()
		return nil, ErrGenerationFailed
	}

	data, ok := extractJSON(raw)
	if !ok {
		p.logger.WithField("snippet", snippet(raw)).Error("Model output is not parseable JSON")
		generationsTotal.WithLabelValues("failed").Inc()
		return nil, ErrGenerationFailed
	}
	seq, err := decodeSequence(data, req.SequenceLength)
	if err != nil {
		p.logger.WithError(err).WithField("snippet", snippet(raw)).Error("Model output failed structural validation")
		generationsTotal.WithLabelValues("failed").Inc()
		return nil, ErrGenerationFailed
	}

	issues := assessQuality(&seq, req.Profile, strat.TargetPersona)
	qualityIssuesTotal.Add(float64(len(issues)))
	if err := p.policy.Apply(issues); err != nil {
		generationsTotal.WithLabelValues("failed").Inc()
		return nil, ErrGenerationFailed
	}

	sanitize(&seq)

	computed := estimateConfidence(&seq, req.Profile)
	seq.Confidence = blendConfidence(seq.Confidence, computed)

	generationsTotal.WithLabelValues("ok").Inc()
	generationDuration.Observe(time.Since(start).Seconds())

	return &Result{
		Sequence:    seq,
		Strategy:    strat,
		RawResponse: raw,
		Issues:      issues,
	}, nil
}

// complete drains the model stream to completion. The pipeline never
// consumes partial output; a cancelled or broken stream surfaces as a
// failure, not a truncated sequence.
func (p *Pipeline) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	stream, err := p.llm.Complete(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = stream.Close() }()

	var content strings.Builder
	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			return "", recvErr
		}
		content.WriteString(chunk.Content)
	}
	return strings.TrimSpace(content.String()), nil
}

func snippet(raw string) string {
	if len(raw) > 300 {
		return raw[:300]
	}
	return raw
}
