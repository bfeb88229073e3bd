package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/offers"
)

// Archiver is the object-storage side of the sink. Nil-able in tests.
type Archiver interface {
	Put(ctx context.Context, key string, payload []byte) (string, error)
}

// Recorder is the audit sink: one Postgres row plus one archived JSON object
// per offer calculation. Implements offers.AuditRecorder.
type Recorder struct {
	repo    Repository
	archive Archiver // nil disables object archiving
}

func NewRecorder(repo Repository, archive Archiver) *Recorder {
	return &Recorder{repo: repo, archive: archive}
}

var _ offers.AuditRecorder = (*Recorder)(nil)

func (r *Recorder) Record(
	ctx context.Context,
	org string,
	req offers.OfferRequest,
	b *offers.OfferBreakdown,
) error {

	payload, err := json.Marshal(struct {
		Request   offers.OfferRequest    `json:"request"`
		Breakdown *offers.OfferBreakdown `json:"breakdown"`
	}{Request: req, Breakdown: b})
	if err != nil {
		return fmt.Errorf("failed to encode audit payload: %w", err)
	}

	rec := &Record{
		ID:             uuid.New().String(),
		OrganizationID: org,
		FinalTotal:     b.FinalTotal,
		Payload:        payload,
		CreatedAt:      time.Now(),
	}

	if r.archive != nil {
		key := fmt.Sprintf("offer-audits/%s/%s.json", time.Now().Format("2006-01-02"), rec.ID)
		url, err := r.archive.Put(ctx, key, payload)
		if err != nil {
			// Archive failure never blocks the priced answer.
			log.Printf("[AUDIT] archive upload failed for %s: %v", rec.ID, err)
		} else {
			rec.ArchiveURL = url
		}
	}

	if err := r.repo.Insert(ctx, rec); err != nil {
		log.Printf("[AUDIT] failed to persist record %s: %v", rec.ID, err)
		return err
	}

	return nil
}
