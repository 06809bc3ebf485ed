package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/deliverydesk/backend/internal/domain"
	"github.com/deliverydesk/backend/internal/service/item"
)

// itemService defines the minimal interface needed by ItemHandler.
type itemService interface {
	Create(ctx context.Context, input item.CreateInput) (*domain.Item, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, input item.ListInput) ([]domain.Item, error)
	Update(ctx context.Context, id uuid.UUID, input item.UpdateInput) (*domain.Item, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) (*domain.Item, error)
	SetDelivered(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	SetArchived(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItemHandler serves delivery-item REST endpoints.
type ItemHandler struct {
	svc itemService
	log *slog.Logger
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(svc itemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, log: logger.With("handler", "items")}
}

type createItemRequest struct {
	Label          string     `json:"label"`
	SourceDate     string     `json:"sourceDate"`
	Notes          *string    `json:"notes,omitempty"`
	CustomDeadline *time.Time `json:"customDeadline,omitempty"`
}

type updateItemRequest struct {
	Label          *string    `json:"label,omitempty"`
	SourceDate     *string    `json:"sourceDate,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	CustomDeadline *time.Time `json:"customDeadline,omitempty"`
	Status         *string    `json:"status,omitempty"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type itemResponse struct {
	ID                string     `json:"id"`
	Label             string     `json:"label"`
	SourceDate        string     `json:"sourceDate"`
	ComputedDeadline  time.Time  `json:"computedDeadline"`
	CustomDeadline    *time.Time `json:"customDeadline,omitempty"`
	EffectiveDeadline time.Time  `json:"effectiveDeadline"`
	Notes             *string    `json:"notes,omitempty"`
	Status            string     `json:"status"`
	DeliveredAt       *time.Time `json:"deliveredAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type itemListResponse struct {
	Items []itemResponse `json:"items"`
}

// Create handles POST /api/items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), item.CreateInput{
		Label:          req.Label,
		SourceDate:     req.SourceDate,
		Notes:          req.Notes,
		CustomDeadline: req.CustomDeadline,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(created))
}

// Get handles GET /api/items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	it, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// List handles GET /api/items.
// Query parameters: status, sortBy (deadline|source_date|created_at),
// sortOrder (asc|desc).
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := item.ListInput{
		SortBy:    domain.ItemSortKey(q.Get("sortBy")),
		SortOrder: domain.SortOrder(q.Get("sortOrder")),
	}
	if raw := q.Get("status"); raw != "" {
		status := domain.ItemStatus(raw)
		input.Status = &status
	}

	items, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := itemListResponse{Items: make([]itemResponse, 0, len(items))}
	for i := range items {
		resp.Items = append(resp.Items, toItemResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PATCH /api/items/{id}.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := item.UpdateInput{
		Label:          req.Label,
		SourceDate:     req.SourceDate,
		Notes:          req.Notes,
		CustomDeadline: req.CustomDeadline,
	}
	if req.Status != nil {
		status := domain.ItemStatus(*req.Status)
		input.Status = &status
	}

	updated, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(updated))
}

// SetStatus handles POST /api/items/{id}/status.
func (h *ItemHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.SetStatus(r.Context(), id, domain.ItemStatus(req.Status))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(updated))
}

// Deliver handles POST /api/items/{id}/deliver.
func (h *ItemHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	updated, err := h.svc.SetDelivered(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(updated))
}

// Archive handles POST /api/items/{id}/archive.
func (h *ItemHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	updated, err := h.svc.SetArchived(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(updated))
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return uuid.Nil, false
	}
	return id, true
}

func toItemResponse(it *domain.Item) itemResponse {
	return itemResponse{
		ID:                it.ID.String(),
		Label:             it.Label,
		SourceDate:        it.SourceDate,
		ComputedDeadline:  it.ComputedDeadline,
		CustomDeadline:    it.CustomDeadline,
		EffectiveDeadline: it.EffectiveDeadline(),
		Notes:             it.Notes,
		Status:            it.Status.String(),
		DeliveredAt:       it.DeliveredAt,
		CreatedAt:         it.CreatedAt,
		UpdatedAt:         it.UpdatedAt,
	}
}
