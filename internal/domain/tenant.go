package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is an isolated owner of delivery items and settings.
// A tenant row is provisioned on the first successful authentication of its
// principal; the core never authenticates anyone itself.
type Tenant struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Name      *string   `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// TenantSettings holds the tenant's deadline preferences.
// TurnaroundDays is added to an item's source date to derive its deadline;
// Timezone is the IANA zone the deadline is pinned to (23:59 local).
type TenantSettings struct {
	TenantID       uuid.UUID `db:"tenant_id"`
	TurnaroundDays int       `db:"turnaround_days"`
	Timezone       string    `db:"timezone"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// DefaultTenantSettings returns the settings a freshly provisioned tenant
// starts with.
func DefaultTenantSettings(tenantID uuid.UUID) TenantSettings {
	return TenantSettings{
		TenantID:       tenantID,
		TurnaroundDays: 30,
		Timezone:       "UTC",
	}
}
