package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/deliverydesk/backend/internal/domain"
)

// Authenticate verifies the bearer token and returns the tenant ID it
// resolves to. The tenant ID equals the token's subject, so a tenant can be
// provisioned inside a transaction scoped to its own identity the first time
// its principal shows up. Any verification failure maps to ErrUnauthorized.
func (s *Service) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	principal, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	if err := s.ensureTenant(ctx, principal.ID, principal.Email); err != nil {
		return uuid.Nil, fmt.Errorf("session.Authenticate: %w", err)
	}

	return principal.ID, nil
}

// ensureTenant provisions the tenant row and its default settings if this is
// the principal's first visit.
func (s *Service) ensureTenant(ctx context.Context, tenantID uuid.UUID, email string) error {
	return s.tx.RunScoped(ctx, tenantID, func(txCtx context.Context) error {
		_, err := s.tenants.GetByID(txCtx, tenantID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get tenant: %w", err)
		}

		now := time.Now().UTC()
		tenant := &domain.Tenant{
			ID:        tenantID,
			Email:     email,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := s.tenants.Create(txCtx, tenant); err != nil {
			// Two first requests can race; the loser finds the row in place.
			if errors.Is(err, domain.ErrAlreadyExists) {
				return nil
			}
			return fmt.Errorf("create tenant: %w", err)
		}

		settings := domain.DefaultTenantSettings(tenantID)
		settings.CreatedAt = now
		settings.UpdatedAt = now
		if _, err := s.tenants.CreateSettings(txCtx, settings); err != nil {
			return fmt.Errorf("create settings: %w", err)
		}

		s.log.InfoContext(txCtx, "tenant provisioned",
			slog.String("tenant_id", tenantID.String()))
		return nil
	})
}
