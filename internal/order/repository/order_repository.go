package repository

import (
	"context"
	"fmt"

	"kintacos/internal/domain"
	"kintacos/internal/dto"
	"kintacos/internal/errors"
)

// Provider is the document store the repository persists orders into. The
// store is opaque: records are flat maps keyed by a store-assigned string id.
//
// FindByID returns (nil, nil) when no record exists; absence is not an error
// at this level. FindAll returns records sorted by createdAt descending.
// Update overwrites the given fields of an existing record and never changes
// its id.
type Provider interface {
	Create(ctx context.Context, doc map[string]any) (map[string]any, error)
	FindByID(ctx context.Context, id string) (map[string]any, error)
	FindAll(ctx context.Context, filters dto.ListFilters) ([]map[string]any, error)
	Update(ctx context.Context, id string, doc map[string]any) error
	Delete(ctx context.Context, id string) error
}

// OrderRepository mediates between raw provider documents and validated
// Order entities. It owns validation timing and not-found semantics; the
// provider underneath only stores and retrieves flat documents.
type OrderRepository struct {
	provider Provider
}

func NewOrderRepository(provider Provider) *OrderRepository {
	return &OrderRepository{provider: provider}
}

// Create builds an order from the incoming fields, applies creation
// defaults, validates it, and persists it. The returned order carries the
// store-assigned id.
func (r *OrderRepository) Create(ctx context.Context, data map[string]any) (*domain.Order, error) {
	o := domain.NewOrder(data)
	if err := o.Validate(); err != nil {
		return nil, err
	}

	saved, err := r.provider.Create(ctx, o.Document())
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	return domain.NewOrder(saved), nil
}

// FindByID returns (nil, nil) when the order does not exist; callers decide
// how to surface absence.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	doc, err := r.provider.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	return domain.NewOrder(doc), nil
}

// FindAll delegates filter semantics to the provider and wraps each result.
func (r *OrderRepository) FindAll(ctx context.Context, filters dto.ListFilters) ([]*domain.Order, error) {
	docs, err := r.provider.FindAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	orders := make([]*domain.Order, len(docs))
	for i, doc := range docs {
		orders[i] = domain.NewOrder(doc)
	}
	return orders, nil
}

// Update merges the incoming fields over the stored order, keeps the id,
// re-validates the merged whole and persists it. Fields omitted from data
// retain their stored values; explicitly clearing a required field fails
// validation.
func (r *OrderRepository) Update(ctx context.Context, id string, data map[string]any) (*domain.Order, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}

	merged := existing.Document()
	for k, v := range data {
		merged[k] = v
	}
	merged["id"] = id

	updated := domain.NewOrder(merged)
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := r.provider.Update(ctx, id, updated.Document()); err != nil {
		return nil, fmt.Errorf("updating order: %w", err)
	}
	return updated, nil
}

// UpdateStatus replaces only the status of an existing order. Full
// validation is deliberately skipped: any status label the caller sends is
// stored as-is.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}

	existing.Status = status
	if err := r.provider.Update(ctx, id, existing.Document()); err != nil {
		return nil, fmt.Errorf("updating order status: %w", err)
	}
	return existing, nil
}

// Delete removes the order after re-checking it exists.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}

	if err := r.provider.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}
	return nil
}
