package item

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/deliverydesk/backend/internal/deadline"
	"github.com/deliverydesk/backend/internal/domain"
	"github.com/deliverydesk/backend/pkg/ctxutil"
)

// Update applies a partial update to an item of the authenticated tenant.
//
// Deadline rules:
//   - a changed source date recomputes the deadline from the tenant's
//     current settings and resets the custom deadline to it, discarding any
//     CustomDeadline passed in the same call;
//   - with the source date unchanged, a given CustomDeadline is stored
//     exactly as provided and the computed deadline is left alone.
//
// The first transition into DELIVERED stamps DeliveredAt; later transitions
// in or out of DELIVERED leave the stamp untouched.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.Item

	err := s.tx.RunScoped(ctx, tenantID, func(txCtx context.Context) error {
		current, err := s.items.GetByID(txCtx, tenantID, id)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		next := *current

		if input.Label != nil {
			next.Label = *input.Label
		}
		if input.Notes != nil {
			if *input.Notes == "" {
				next.Notes = nil
			} else {
				next.Notes = input.Notes
			}
		}

		if input.SourceDate != nil && *input.SourceDate != current.SourceDate {
			settings, err := s.settings.GetSettings(txCtx, tenantID)
			if err != nil {
				return fmt.Errorf("get settings: %w", err)
			}
			computed, err := deadline.Compute(*input.SourceDate, settings.TurnaroundDays, settings.Timezone)
			if err != nil {
				return fmt.Errorf("compute deadline: %w", err)
			}
			next.SourceDate = *input.SourceDate
			next.ComputedDeadline = computed
			next.CustomDeadline = &computed
		} else if input.CustomDeadline != nil {
			custom := *input.CustomDeadline
			next.CustomDeadline = &custom
		}

		if input.Status != nil {
			applyStatus(&next, *input.Status)
		}

		next.UpdatedAt = time.Now().UTC()

		updated, err = s.items.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("item.Update: %w", err)
	}

	s.log.InfoContext(ctx, "item updated",
		slog.String("tenant_id", tenantID.String()),
		slog.String("item_id", id.String()))

	return updated, nil
}

// SetStatus moves an item to the given status. All statuses are mutually
// reachable.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) (*domain.Item, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.Item

	err := s.tx.RunScoped(ctx, tenantID, func(txCtx context.Context) error {
		current, err := s.items.GetByID(txCtx, tenantID, id)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		next := *current
		applyStatus(&next, status)
		next.UpdatedAt = time.Now().UTC()

		updated, err = s.items.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("item.SetStatus: %w", err)
	}

	s.log.InfoContext(ctx, "item status changed",
		slog.String("tenant_id", tenantID.String()),
		slog.String("item_id", id.String()),
		slog.String("status", status.String()))

	return updated, nil
}

// SetDelivered marks the item delivered. The first call stamps DeliveredAt;
// the stamp survives later status changes.
func (s *Service) SetDelivered(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	return s.SetStatus(ctx, id, domain.ItemStatusDelivered)
}

// SetArchived archives the item. Archived items keep their deadlines frozen
// through bulk recalculations.
func (s *Service) SetArchived(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	return s.SetStatus(ctx, id, domain.ItemStatusArchived)
}

// applyStatus sets the status and stamps DeliveredAt on the first transition
// into DELIVERED. The stamp survives later status changes.
func applyStatus(it *domain.Item, status domain.ItemStatus) {
	it.Status = status
	if status == domain.ItemStatusDelivered && it.DeliveredAt == nil {
		now := time.Now().UTC()
		it.DeliveredAt = &now
	}
}
