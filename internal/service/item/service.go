// Package item implements delivery-item operations. It is the sole write
// path for items: every mutation recomputes or preserves deadlines according
// to the tenant's settings, and every database access runs inside a
// tenant-scoped transaction.
package item

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/deliverydesk/backend/internal/domain"
)

// itemRepo defines the item repository interface needed by item service.
type itemRepo interface {
	Create(ctx context.Context, it *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ItemFilter) ([]domain.Item, error)
	Update(ctx context.Context, it *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// settingsRepo defines the settings repository interface needed by item service.
type settingsRepo interface {
	GetSettings(ctx context.Context, tenantID uuid.UUID) (*domain.TenantSettings, error)
}

// txManager defines the transaction manager interface needed by item service.
type txManager interface {
	RunScoped(ctx context.Context, tenantID uuid.UUID, fn func(ctx context.Context) error) error
}

// Service implements delivery-item operations.
type Service struct {
	log      *slog.Logger
	items    itemRepo
	settings settingsRepo
	tx       txManager
}

// NewService creates a new item service instance.
func NewService(
	logger *slog.Logger,
	items itemRepo,
	settings settingsRepo,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "item"),
		items:    items,
		settings: settings,
		tx:       tx,
	}
}
