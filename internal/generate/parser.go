package generate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)```")

// extractJSON locates the JSON document in raw model text. Two stages:
// the whole text as-is, then the contents of the first fenced code
// block. No further fallbacks; anything else is a generation failure.
func extractJSON(raw string) ([]byte, bool) {
	trimmed := strings.TrimSpace(raw)
	if json.Valid([]byte(trimmed)) {
		return []byte(trimmed), true
	}
	if m := fencedBlock.FindStringSubmatch(raw); m != nil {
		inner := strings.TrimSpace(m[1])
		if json.Valid([]byte(inner)) {
			return []byte(inner), true
		}
	}
	return nil, false
}

// decodeSequence validates the structural tier: root shape, exact
// message count, non-empty message and reasoning per step. Step values
// are normalized to array position rather than rejected. The returned
// error is diagnostic detail for logging only; callers of the pipeline
// never see it.
func decodeSequence(data []byte, sequenceLength int) (Sequence, error) {
	var root struct {
		Analysis   *Analysis         `json:"analysis"`
		Messages   []json.RawMessage `json:"messages"`
		Confidence *float64          `json:"confidence"`
	}
	if err := json.Unmarshal(data, &root); err != nil {
		return Sequence{}, fmt.Errorf("decode root: %w", err)
	}
	if root.Analysis == nil {
		return Sequence{}, fmt.Errorf("missing analysis object")
	}
	if root.Confidence == nil {
		return Sequence{}, fmt.Errorf("missing confidence")
	}
	if root.Messages == nil {
		return Sequence{}, fmt.Errorf("missing messages array")
	}
	if len(root.Messages) != sequenceLength {
		return Sequence{}, fmt.Errorf("expected %d messages, got %d", sequenceLength, len(root.Messages))
	}

	seq := Sequence{
		Analysis:   *root.Analysis,
		Messages:   make([]Message, 0, len(root.Messages)),
		Confidence: *root.Confidence,
	}
	for i, rawMsg := range root.Messages {
		var msg Message
		if err := json.Unmarshal(rawMsg, &msg); err != nil {
			return Sequence{}, fmt.Errorf("decode message %d: %w", i+1, err)
		}
		if strings.TrimSpace(msg.Message) == "" {
			return Sequence{}, fmt.Errorf("message %d has empty body", i+1)
		}
		if strings.TrimSpace(msg.Reasoning) == "" {
			return Sequence{}, fmt.Errorf("message %d has empty reasoning", i+1)
		}
		msg.Step = i + 1
		seq.Messages = append(seq.Messages, msg)
	}
	return seq, nil
}
