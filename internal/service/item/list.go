package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/deliverydesk/backend/internal/domain"
	"github.com/deliverydesk/backend/pkg/ctxutil"
)

// Get returns a single item of the authenticated tenant.
// An item owned by another tenant is reported as not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var it *domain.Item

	err := s.tx.RunScoped(ctx, tenantID, func(txCtx context.Context) error {
		var err error
		it, err = s.items.GetByID(txCtx, tenantID, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("item.Get: %w", err)
	}

	return it, nil
}

// List returns the authenticated tenant's items matching the filter.
// Default order is by effective deadline, ascending.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var items []domain.Item

	err := s.tx.RunScoped(ctx, tenantID, func(txCtx context.Context) error {
		var err error
		items, err = s.items.List(txCtx, tenantID, input.filter())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("item.List: %w", err)
	}

	return items, nil
}
