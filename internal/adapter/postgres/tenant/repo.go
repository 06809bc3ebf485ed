// Package tenant implements tenant and tenant-settings persistence using
// PostgreSQL.
package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/deliverydesk/backend/internal/adapter/postgres"
	"github.com/deliverydesk/backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var tenantColumns = []string{"id", "email", "name", "created_at", "updated_at"}

var settingsColumns = []string{"tenant_id", "turnaround_days", "timezone", "created_at", "updated_at"}

// Repo provides tenant and tenant-settings persistence backed by PostgreSQL.
// All row access is additionally constrained by the row-level security
// policies bound to the transaction's tenant identity.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tenant repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns the tenant by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(tenantColumns...).
		From("tenants").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var t domain.Tenant
	if err := pgxscan.Get(ctx, q, &t, sql, args...); err != nil {
		return nil, postgres.MapError(err, "tenant", id)
	}
	return &t, nil
}

// Create inserts a new tenant row.
func (r *Repo) Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("tenants").
		Columns(tenantColumns...).
		Values(t.ID, t.Email, t.Name, t.CreatedAt, t.UpdatedAt).
		Suffix("RETURNING " + columnList(tenantColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var created domain.Tenant
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "tenant", t.ID)
	}
	return &created, nil
}

// GetSettings returns the settings row for the given tenant.
// A missing row is a data-integrity failure: settings are created together
// with the tenant, so this maps to domain.ErrSettingsNotFound, not plain
// not-found.
func (r *Repo) GetSettings(ctx context.Context, tenantID uuid.UUID) (*domain.TenantSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(settingsColumns...).
		From("tenant_settings").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var s domain.TenantSettings
	if err := pgxscan.Get(ctx, q, &s, sql, args...); err != nil {
		mapped := postgres.MapError(err, "tenant_settings", tenantID)
		if errors.Is(mapped, domain.ErrNotFound) {
			return nil, fmt.Errorf("tenant_settings %s: %w", tenantID, domain.ErrSettingsNotFound)
		}
		return nil, mapped
	}
	return &s, nil
}

// CreateSettings inserts the settings row for a freshly provisioned tenant.
func (r *Repo) CreateSettings(ctx context.Context, s domain.TenantSettings) (*domain.TenantSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("tenant_settings").
		Columns(settingsColumns...).
		Values(s.TenantID, s.TurnaroundDays, s.Timezone, s.CreatedAt, s.UpdatedAt).
		Suffix("RETURNING " + columnList(settingsColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var created domain.TenantSettings
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "tenant_settings", s.TenantID)
	}
	return &created, nil
}

// UpdateSettings overwrites turnaround_days and timezone for the tenant.
func (r *Repo) UpdateSettings(ctx context.Context, s domain.TenantSettings) (*domain.TenantSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("tenant_settings").
		Set("turnaround_days", s.TurnaroundDays).
		Set("timezone", s.Timezone).
		Set("updated_at", s.UpdatedAt).
		Where(squirrel.Eq{"tenant_id": s.TenantID}).
		Suffix("RETURNING " + columnList(settingsColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var updated domain.TenantSettings
	if err := pgxscan.Get(ctx, q, &updated, sql, args...); err != nil {
		mapped := postgres.MapError(err, "tenant_settings", s.TenantID)
		if errors.Is(mapped, domain.ErrNotFound) {
			return nil, fmt.Errorf("tenant_settings %s: %w", s.TenantID, domain.ErrSettingsNotFound)
		}
		return nil, mapped
	}
	return &updated, nil
}

func columnList(cols []string) string {
	out := cols[0]
	for _, c := range cols[1:] {
		out += ", " + c
	}
	return out
}
