package audit

import "context"

// Repository persists audit records. Records are insert-only.
type Repository interface {
	Insert(ctx context.Context, r *Record) error
}
