// Package session resolves bearer tokens into tenant identities and
// provisions a tenant row with default settings on first authentication.
// Token issuance lives outside this backend; only validation happens here.
package session

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/deliverydesk/backend/internal/auth"
	"github.com/deliverydesk/backend/internal/domain"
)

// jwtManager defines the token verification interface needed by session service.
type jwtManager interface {
	ValidateAccessToken(token string) (auth.Principal, error)
}

// tenantRepo defines the tenant repository interface needed by session service.
type tenantRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error)
	CreateSettings(ctx context.Context, s domain.TenantSettings) (*domain.TenantSettings, error)
}

// txManager defines the transaction manager interface needed by session service.
type txManager interface {
	RunScoped(ctx context.Context, tenantID uuid.UUID, fn func(ctx context.Context) error) error
}

// Service implements session resolution.
type Service struct {
	log     *slog.Logger
	jwt     jwtManager
	tenants tenantRepo
	tx      txManager
}

// NewService creates a new session service instance.
func NewService(
	logger *slog.Logger,
	jwt jwtManager,
	tenants tenantRepo,
	tx txManager,
) *Service {
	return &Service{
		log:     logger.With("service", "session"),
		jwt:     jwt,
		tenants: tenants,
		tx:      tx,
	}
}
