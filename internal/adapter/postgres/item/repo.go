// Package item implements delivery-item persistence using PostgreSQL.
package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/deliverydesk/backend/internal/adapter/postgres"
	"github.com/deliverydesk/backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var insertColumns = []string{
	"id", "tenant_id", "label", "notes", "source_date",
	"computed_deadline", "custom_deadline", "status", "delivered_at",
	"created_at", "updated_at",
}

// source_date is a DATE column; it crosses the wire as its ISO-8601 text form.
var selectColumns = []string{
	"id", "tenant_id", "label", "notes", "source_date::text AS source_date",
	"computed_deadline", "custom_deadline", "status", "delivered_at",
	"created_at", "updated_at",
}

var sortColumns = map[domain.ItemSortKey]string{
	domain.ItemSortDeadline:   "COALESCE(custom_deadline, computed_deadline)",
	domain.ItemSortSourceDate: "source_date",
	domain.ItemSortCreatedAt:  "created_at",
}

// Repo provides delivery-item persistence backed by PostgreSQL. Every query
// carries an explicit tenant_id predicate on top of the row-level security
// policy, so a row belonging to another tenant is indistinguishable from a
// row that does not exist.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new item row and returns the stored state.
func (r *Repo) Create(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("delivery_items").
		Columns(insertColumns...).
		Values(
			it.ID, it.TenantID, it.Label, it.Notes,
			squirrel.Expr("?::date", it.SourceDate),
			it.ComputedDeadline, it.CustomDeadline, it.Status, it.DeliveredAt,
			it.CreatedAt, it.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(selectColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var created domain.Item
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "item", it.ID)
	}
	return &created, nil
}

// GetByID returns the item with the given id for the given tenant.
func (r *Repo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(selectColumns...).
		From("delivery_items").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var it domain.Item
	if err := pgxscan.Get(ctx, q, &it, sql, args...); err != nil {
		return nil, postgres.MapError(err, "item", id)
	}
	return &it, nil
}

// List returns the tenant's items matching the filter, sorted as requested.
func (r *Repo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ItemFilter) ([]domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := qb.Select(selectColumns...).
		From("delivery_items").
		Where(squirrel.Eq{"tenant_id": tenantID})

	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"status": *filter.Status})
	}

	sortKey := filter.SortBy
	if sortKey == "" {
		sortKey = domain.ItemSortDeadline
	}
	order := filter.SortOrder
	if order == "" {
		order = domain.SortAsc
	}
	col, ok := sortColumns[sortKey]
	if !ok {
		return nil, fmt.Errorf("unknown sort key %q: %w", sortKey, domain.ErrValidation)
	}
	b = b.OrderBy(col + " " + strings.ToUpper(order.String()))

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := []domain.Item{}
	if err := pgxscan.Select(ctx, q, &items, sql, args...); err != nil {
		return nil, postgres.MapError(err, "item", tenantID)
	}
	return items, nil
}

// ListActive returns every item of the tenant that is not archived.
// Used by the bulk deadline recalculation.
func (r *Repo) ListActive(ctx context.Context, tenantID uuid.UUID) ([]domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(selectColumns...).
		From("delivery_items").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.NotEq{"status": domain.ItemStatusArchived}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := []domain.Item{}
	if err := pgxscan.Select(ctx, q, &items, sql, args...); err != nil {
		return nil, postgres.MapError(err, "item", tenantID)
	}
	return items, nil
}

// Update overwrites the mutable fields of an existing item and returns the
// stored state. A zero-row update means the item does not exist for this
// tenant and maps to domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("delivery_items").
		Set("label", it.Label).
		Set("notes", it.Notes).
		Set("source_date", squirrel.Expr("?::date", it.SourceDate)).
		Set("computed_deadline", it.ComputedDeadline).
		Set("custom_deadline", it.CustomDeadline).
		Set("status", it.Status).
		Set("delivered_at", it.DeliveredAt).
		Set("updated_at", it.UpdatedAt).
		Where(squirrel.Eq{"id": it.ID, "tenant_id": it.TenantID}).
		Suffix("RETURNING " + strings.Join(selectColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var updated domain.Item
	if err := pgxscan.Get(ctx, q, &updated, sql, args...); err != nil {
		return nil, postgres.MapError(err, "item", it.ID)
	}
	return &updated, nil
}

// UpdateDeadlines rewrites both deadline columns of a single item. Used by
// the bulk recalculation, which aligns custom_deadline with the recomputed
// value.
func (r *Repo) UpdateDeadlines(ctx context.Context, tenantID, id uuid.UUID, deadline, updatedAt time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("delivery_items").
		Set("computed_deadline", deadline).
		Set("custom_deadline", deadline).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the item permanently.
func (r *Repo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("delivery_items").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
