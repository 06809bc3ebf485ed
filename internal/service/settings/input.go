package settings

import (
	"time"

	"github.com/deliverydesk/backend/internal/domain"
)

// UpdateInput holds parameters for settings update operation.
// Nil fields are left unchanged. ApplyToExisting triggers the bulk deadline
// recalculation over the tenant's non-archived items.
type UpdateInput struct {
	TurnaroundDays  *int
	Timezone        *string
	ApplyToExisting bool
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.TurnaroundDays != nil {
		if *i.TurnaroundDays < 1 {
			errs = append(errs, domain.FieldError{Field: "turnaround_days", Message: "must be at least 1"})
		} else if *i.TurnaroundDays > 365 {
			errs = append(errs, domain.FieldError{Field: "turnaround_days", Message: "must be at most 365"})
		}
	}

	if i.Timezone != nil {
		if *i.Timezone == "" {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "cannot be empty"})
		} else if len(*i.Timezone) > 64 {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "too long"})
		} else if _, err := time.LoadLocation(*i.Timezone); err != nil {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "invalid IANA timezone"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
