// Package settings implements tenant settings operations, including the bulk
// deadline recalculation that keeps existing items consistent with changed
// turnaround or timezone preferences.
package settings

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/deliverydesk/backend/internal/domain"
)

// itemRepo defines the item repository interface needed by settings service.
type itemRepo interface {
	ListActive(ctx context.Context, tenantID uuid.UUID) ([]domain.Item, error)
	UpdateDeadlines(ctx context.Context, tenantID, id uuid.UUID, deadline, updatedAt time.Time) error
}

// settingsRepo defines the settings repository interface needed by settings service.
type settingsRepo interface {
	GetSettings(ctx context.Context, tenantID uuid.UUID) (*domain.TenantSettings, error)
	UpdateSettings(ctx context.Context, s domain.TenantSettings) (*domain.TenantSettings, error)
}

// txManager defines the transaction manager interface needed by settings service.
type txManager interface {
	RunScoped(ctx context.Context, tenantID uuid.UUID, fn func(ctx context.Context) error) error
}

// Service implements tenant settings operations.
type Service struct {
	log      *slog.Logger
	items    itemRepo
	settings settingsRepo
	tx       txManager
}

// NewService creates a new settings service instance.
func NewService(
	logger *slog.Logger,
	items itemRepo,
	settings settingsRepo,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "settings"),
		items:    items,
		settings: settings,
		tx:       tx,
	}
}
