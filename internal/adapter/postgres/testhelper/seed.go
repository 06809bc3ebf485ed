package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/deliverydesk/backend/internal/adapter/postgres"
	"github.com/deliverydesk/backend/internal/deadline"
	"github.com/deliverydesk/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedTenant creates a tenant with default settings. The insert runs inside a
// transaction scoped to the new tenant's own identity, which is the only way
// the forced row-level security policies admit it. Returns a filled domain.Tenant.
func SeedTenant(t *testing.T, pool *pgxpool.Pool) domain.Tenant {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	tenant := domain.Tenant{
		ID:        uuid.New(),
		Email:     "tenant-" + suffix + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}

	Scoped(t, pool, tenant.ID, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)

		if _, err := q.Exec(ctx,
			`INSERT INTO tenants (id, email, name, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			tenant.ID, tenant.Email, tenant.Name, tenant.CreatedAt, tenant.UpdatedAt,
		); err != nil {
			t.Fatalf("testhelper: SeedTenant insert tenant: %v", err)
		}

		settings := domain.DefaultTenantSettings(tenant.ID)
		settings.CreatedAt = now
		settings.UpdatedAt = now

		if _, err := q.Exec(ctx,
			`INSERT INTO tenant_settings (tenant_id, turnaround_days, timezone, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			settings.TenantID, settings.TurnaroundDays, settings.Timezone, settings.CreatedAt, settings.UpdatedAt,
		); err != nil {
			t.Fatalf("testhelper: SeedTenant insert tenant_settings: %v", err)
		}
		return nil
	})

	return tenant
}

// SeedItem creates a delivery item for the tenant with the given source date
// and status. Deadlines are computed with the tenant's default settings
// (30 days, UTC). Returns a filled domain.Item.
func SeedItem(t *testing.T, pool *pgxpool.Pool, tenantID uuid.UUID, sourceDate string, status domain.ItemStatus) domain.Item {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	computed, err := deadline.Compute(sourceDate, 30, "UTC")
	if err != nil {
		t.Fatalf("testhelper: SeedItem compute deadline: %v", err)
	}

	item := domain.Item{
		ID:               uuid.New(),
		TenantID:         tenantID,
		Label:            "Item " + suffix,
		SourceDate:       sourceDate,
		ComputedDeadline: computed,
		CustomDeadline:   &computed,
		Status:           status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if status == domain.ItemStatusDelivered {
		deliveredAt := now
		item.DeliveredAt = &deliveredAt
	}

	Scoped(t, pool, tenantID, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)

		if _, err := q.Exec(ctx,
			`INSERT INTO delivery_items
			 (id, tenant_id, label, notes, source_date, computed_deadline, custom_deadline, status, delivered_at, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5::date, $6, $7, $8, $9, $10, $11)`,
			item.ID, item.TenantID, item.Label, item.Notes, item.SourceDate,
			item.ComputedDeadline, item.CustomDeadline, item.Status, item.DeliveredAt,
			item.CreatedAt, item.UpdatedAt,
		); err != nil {
			t.Fatalf("testhelper: SeedItem insert item: %v", err)
		}
		return nil
	})

	return item
}
