package item

import (
	"time"

	"github.com/deliverydesk/backend/internal/domain"
)

const dateLayout = "2006-01-02"

// CreateInput holds parameters for item creation.
type CreateInput struct {
	Label          string
	SourceDate     string
	Notes          *string
	CustomDeadline *time.Time
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateLabel(i.Label)...)
	errs = append(errs, validateSourceDate(i.SourceDate)...)
	if i.Notes != nil {
		errs = append(errs, validateNotes(*i.Notes)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for item update operation.
// All fields are optional (nil = don't change). An empty Notes string clears
// the notes. A SourceDate change resets CustomDeadline even if one is given
// in the same call.
type UpdateInput struct {
	Label          *string
	SourceDate     *string
	Notes          *string
	CustomDeadline *time.Time
	Status         *domain.ItemStatus
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Label != nil {
		errs = append(errs, validateLabel(*i.Label)...)
	}
	if i.SourceDate != nil {
		errs = append(errs, validateSourceDate(*i.SourceDate)...)
	}
	if i.Notes != nil && *i.Notes != "" {
		errs = append(errs, validateNotes(*i.Notes)...)
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds filtering and sorting parameters for item listings.
type ListInput struct {
	Status    *domain.ItemStatus
	SortBy    domain.ItemSortKey
	SortOrder domain.SortOrder
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.SortBy != "" && !i.SortBy.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort_by", Message: "unknown sort key"})
	}
	if i.SortOrder != "" && !i.SortOrder.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort_order", Message: "must be asc or desc"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) filter() domain.ItemFilter {
	return domain.ItemFilter{
		Status:    i.Status,
		SortBy:    i.SortBy,
		SortOrder: i.SortOrder,
	}
}

func validateLabel(label string) []domain.FieldError {
	if label == "" {
		return []domain.FieldError{{Field: "label", Message: "required"}}
	}
	if len([]rune(label)) > 200 {
		return []domain.FieldError{{Field: "label", Message: "must be at most 200 characters"}}
	}
	return nil
}

func validateSourceDate(sourceDate string) []domain.FieldError {
	if sourceDate == "" {
		return []domain.FieldError{{Field: "source_date", Message: "required"}}
	}
	parsed, err := time.Parse(dateLayout, sourceDate)
	if err != nil || parsed.Format(dateLayout) != sourceDate {
		return []domain.FieldError{{Field: "source_date", Message: "must be a YYYY-MM-DD calendar date"}}
	}
	return nil
}

func validateNotes(notes string) []domain.FieldError {
	if len([]rune(notes)) > 1000 {
		return []domain.FieldError{{Field: "notes", Message: "must be at most 1000 characters"}}
	}
	return nil
}
