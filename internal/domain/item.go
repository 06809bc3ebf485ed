package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is a delivery item owned by exactly one tenant.
//
// ComputedDeadline is always derived from SourceDate plus the tenant's
// turnaround days, pinned to 23:59 in the tenant's timezone. CustomDeadline
// is a user override; on creation without an override it equals
// ComputedDeadline, and any write that changes SourceDate resets it back to
// the freshly computed value.
type Item struct {
	ID       uuid.UUID `db:"id"`
	TenantID uuid.UUID `db:"tenant_id"`
	Label    string    `db:"label"`
	// SourceDate is a calendar date in "YYYY-MM-DD" form with no time
	// component; its meaning depends on the tenant's timezone.
	SourceDate       string     `db:"source_date"`
	ComputedDeadline time.Time  `db:"computed_deadline"`
	CustomDeadline   *time.Time `db:"custom_deadline"`
	Notes            *string    `db:"notes"`
	Status           ItemStatus `db:"status"`
	DeliveredAt      *time.Time `db:"delivered_at"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

// EffectiveDeadline returns the deadline shown to the tenant:
// the custom override when present, otherwise the computed one.
func (i *Item) EffectiveDeadline() time.Time {
	if i.CustomDeadline != nil {
		return *i.CustomDeadline
	}
	return i.ComputedDeadline
}

// IsDelivered reports whether the item has been delivered at least once.
func (i *Item) IsDelivered() bool {
	return i.DeliveredAt != nil
}
