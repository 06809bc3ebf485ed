package settings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/deliverydesk/backend/internal/deadline"
	"github.com/deliverydesk/backend/internal/domain"
	"github.com/deliverydesk/backend/pkg/ctxutil"
)

// UpdateResult reports the outcome of an Update call.
type UpdateResult struct {
	Settings *domain.TenantSettings
	// Recalculated is the number of items whose deadlines were rewritten.
	// Zero when ApplyToExisting was false.
	Recalculated int
}

// Get returns the authenticated tenant's settings.
func (s *Service) Get(ctx context.Context) (*domain.TenantSettings, error) {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var settings *domain.TenantSettings

	err := s.tx.RunScoped(ctx, tenantID, func(txCtx context.Context) error {
		var err error
		settings, err = s.settings.GetSettings(txCtx, tenantID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("settings.Get: %w", err)
	}

	return settings, nil
}

// Update changes the tenant's settings and, when ApplyToExisting is set,
// rewrites the deadlines of every non-archived item from the new values in
// the same transaction. Each rewritten item gets its custom deadline aligned
// with the recomputed one. Settings write and recalculation commit or roll
// back together.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*UpdateResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	result := &UpdateResult{}

	err := s.tx.RunScoped(ctx, tenantID, func(txCtx context.Context) error {
		current, err := s.settings.GetSettings(txCtx, tenantID)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}

		next := *current
		if input.TurnaroundDays != nil {
			next.TurnaroundDays = *input.TurnaroundDays
		}
		if input.Timezone != nil {
			next.Timezone = *input.Timezone
		}
		next.UpdatedAt = time.Now().UTC()

		updated, err := s.settings.UpdateSettings(txCtx, next)
		if err != nil {
			return fmt.Errorf("update settings: %w", err)
		}
		result.Settings = updated

		if !input.ApplyToExisting {
			return nil
		}

		items, err := s.items.ListActive(txCtx, tenantID)
		if err != nil {
			return fmt.Errorf("list active items: %w", err)
		}

		now := time.Now().UTC()
		for _, it := range items {
			computed, err := deadline.Compute(it.SourceDate, updated.TurnaroundDays, updated.Timezone)
			if err != nil {
				return fmt.Errorf("recompute deadline for item %s: %w", it.ID, err)
			}
			if err := s.items.UpdateDeadlines(txCtx, tenantID, it.ID, computed, now); err != nil {
				return fmt.Errorf("rewrite deadlines for item %s: %w", it.ID, err)
			}
			result.Recalculated++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("settings.Update: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("tenant_id", tenantID.String()),
		slog.Int("recalculated", result.Recalculated))

	return result, nil
}
