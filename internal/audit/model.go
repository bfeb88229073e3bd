package audit

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one immutable audit row: the request and breakdown of a single
// offer calculation, associated with an order by the caller later.
type Record struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	FinalTotal     decimal.Decimal `json:"final_total"`
	Payload        []byte          `json:"payload"` // full request + breakdown JSON
	ArchiveURL     string          `json:"archive_url,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
