package provider

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"kintacos/internal/dto"
)

// MemoryProvider keeps documents in a process-local map. It backs unit
// tests and local development; semantics mirror the real stores, including
// the createdAt-descending listing order.
type MemoryProvider struct {
	mu   sync.RWMutex
	docs map[string]map[string]any
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{docs: make(map[string]map[string]any)}
}

func (p *MemoryProvider) Create(_ context.Context, doc map[string]any) (map[string]any, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := uuid.New().String()
	stored := cloneDoc(doc)
	stored["id"] = id
	p.docs[id] = stored

	return cloneDoc(stored), nil
}

func (p *MemoryProvider) FindByID(_ context.Context, id string) (map[string]any, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	doc, ok := p.docs[id]
	if !ok {
		return nil, nil
	}
	return cloneDoc(doc), nil
}

func (p *MemoryProvider) FindAll(_ context.Context, filters dto.ListFilters) ([]map[string]any, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var results []map[string]any
	for _, doc := range p.docs {
		if !matchesFilters(doc, filters) {
			continue
		}
		results = append(results, cloneDoc(doc))
	}

	// RFC3339 timestamps sort correctly as strings.
	sort.Slice(results, func(i, j int) bool {
		ci, _ := results[i]["createdAt"].(string)
		cj, _ := results[j]["createdAt"].(string)
		return ci > cj
	})

	return results, nil
}

func (p *MemoryProvider) Update(_ context.Context, id string, doc map[string]any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	existing, ok := p.docs[id]
	if !ok {
		return nil
	}
	for k, v := range doc {
		if k == "id" {
			continue
		}
		existing[k] = v
	}
	return nil
}

func (p *MemoryProvider) Delete(_ context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.docs, id)
	return nil
}

func matchesFilters(doc map[string]any, filters dto.ListFilters) bool {
	createdAt, _ := doc["createdAt"].(string)

	if filters.Status != "" && doc["status"] != filters.Status {
		return false
	}
	if filters.DeliveryOption != "" && doc["deliveryOption"] != filters.DeliveryOption {
		return false
	}
	if filters.StartDate != "" && createdAt < filters.StartDate {
		return false
	}
	if filters.EndDate != "" && createdAt > filters.EndDate {
		return false
	}
	return true
}

func cloneDoc(doc map[string]any) map[string]any {
	clone := make(map[string]any, len(doc))
	for k, v := range doc {
		clone[k] = v
	}
	return clone
}
