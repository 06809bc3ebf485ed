package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/deliverydesk/backend/internal/domain"
	"github.com/deliverydesk/backend/pkg/ctxutil"
)

// Delete permanently removes an item of the authenticated tenant.
// There is no soft-delete or tombstone; ARCHIVED is the reversible
// alternative.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunScoped(ctx, tenantID, func(txCtx context.Context) error {
		return s.items.Delete(txCtx, tenantID, id)
	})
	if err != nil {
		return fmt.Errorf("item.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("tenant_id", tenantID.String()),
		slog.String("item_id", id.String()))

	return nil
}
