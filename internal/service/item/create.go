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

// Create creates a delivery item for the authenticated tenant.
// The computed deadline is derived from the source date and the tenant's
// current settings. Without an explicit CustomDeadline, the custom deadline
// starts out equal to the computed one.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var created *domain.Item

	err := s.tx.RunScoped(ctx, tenantID, func(txCtx context.Context) error {
		settings, err := s.settings.GetSettings(txCtx, tenantID)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}

		computed, err := deadline.Compute(input.SourceDate, settings.TurnaroundDays, settings.Timezone)
		if err != nil {
			return fmt.Errorf("compute deadline: %w", err)
		}

		custom := computed
		if input.CustomDeadline != nil {
			custom = *input.CustomDeadline
		}

		now := time.Now().UTC()
		it := &domain.Item{
			ID:               uuid.New(),
			TenantID:         tenantID,
			Label:            input.Label,
			SourceDate:       input.SourceDate,
			ComputedDeadline: computed,
			CustomDeadline:   &custom,
			Notes:            input.Notes,
			Status:           domain.ItemStatusTodo,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		created, err = s.items.Create(txCtx, it)
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("item.Create: %w", err)
	}

	s.log.InfoContext(ctx, "item created",
		slog.String("tenant_id", tenantID.String()),
		slog.String("item_id", created.ID.String()))

	return created, nil
}
