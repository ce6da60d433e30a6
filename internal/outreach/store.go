package outreach

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cadence/pkg/logging"
)

// StoredSequence is the audit record for one generated sequence: the
// payload returned to the caller plus the strategy and raw model text
// that produced it.
type StoredSequence struct {
	ID          string          `json:"id"`
	Digest      string          `json:"digest"`
	ProspectID  string          `json:"prospect_id"`
	Payload     json.RawMessage `json:"payload"`
	Strategy    json.RawMessage `json:"strategy"`
	RawResponse string          `json:"-"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RequestDigest keys the idempotency lookup: identical inputs under
// the same generation policy always hash to the same digest.
func RequestDigest(prospectID, toneDescription, companyContext string, sequenceLength int, policyVersion string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%s\x00%d\x00%s", prospectID, toneDescription, companyContext, sequenceLength, policyVersion)
	return hex.EncodeToString(h.Sum(nil))
}

// SequenceStore persists generated sequences and answers idempotency
// lookups. The lookup runs before the pipeline; a hit means the
// strategy engine is never invoked.
type SequenceStore struct {
	db     *sql.DB
	logger logging.Logger
}

func NewSequenceStore(db *sql.DB, logger logging.Logger) *SequenceStore {
	return &SequenceStore{db: db, logger: logger}
}

// FindByDigest returns the stored sequence for a digest, or nil when
// none exists.
func (s *SequenceStore) FindByDigest(ctx context.Context, digest string) (*StoredSequence, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sequence store not configured")
	}

	var rec StoredSequence
	err := s.db.QueryRowContext(ctx, `
		SELECT id, digest, prospect_id, payload, strategy, created_at
		FROM outreach_sequences
		WHERE digest = $1
		ORDER BY created_at DESC
		LIMIT 1`, digest,
	).Scan(&rec.ID, &rec.Digest, &rec.ProspectID, &rec.Payload, &rec.Strategy, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup sequence by digest: %w", err)
	}
	return &rec, nil
}

// Save writes the audit record and returns its id.
func (s *SequenceStore) Save(ctx context.Context, rec StoredSequence) (string, error) {
	if s == nil || s.db == nil {
		return "", fmt.Errorf("sequence store not configured")
	}

	id := rec.ID
	if id == "" {
		id = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO outreach_sequences (id, digest, prospect_id, payload, strategy, raw_response, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
		id, rec.Digest, rec.ProspectID, rec.Payload, rec.Strategy, rec.RawResponse,
	)
	if err != nil {
		return "", fmt.Errorf("save sequence: %w", err)
	}
	return id, nil
}
