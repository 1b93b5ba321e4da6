package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kintacos/internal/domain"
	"kintacos/internal/dto"
	"kintacos/internal/testutil"
)

func seedDoc(status, deliveryOption, createdAt string) map[string]any {
	return testutil.PickupOrderDoc(map[string]any{
		"status":         status,
		"deliveryOption": deliveryOption,
		"createdAt":      createdAt,
	})
}

func TestMemoryProvider_CreateAssignsID(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider()

	stored, err := p.Create(ctx, seedDoc(domain.StatusPending, "pickup", "2025-03-01T10:00:00Z"))
	require.NoError(t, err)

	id, _ := stored["id"].(string)
	assert.NotEmpty(t, id)

	found, err := p.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "John", found["firstName"])
}

func TestMemoryProvider_FindByID_Absent(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider()

	found, err := p.FindByID(ctx, "no-such-id")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryProvider_FindAll_SortsByCreatedAtDescending(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider()

	for _, createdAt := range []string{
		"2025-03-01T10:00:00Z",
		"2025-03-03T10:00:00Z",
		"2025-03-02T10:00:00Z",
	} {
		_, err := p.Create(ctx, seedDoc(domain.StatusPending, "pickup", createdAt))
		require.NoError(t, err)
	}

	docs, err := p.FindAll(ctx, dto.ListFilters{})
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, "2025-03-03T10:00:00Z", docs[0]["createdAt"])
	assert.Equal(t, "2025-03-02T10:00:00Z", docs[1]["createdAt"])
	assert.Equal(t, "2025-03-01T10:00:00Z", docs[2]["createdAt"])
}

func TestMemoryProvider_FindAll_Filters(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider()

	_, err := p.Create(ctx, seedDoc(domain.StatusPending, "pickup", "2025-03-01T10:00:00Z"))
	require.NoError(t, err)
	_, err = p.Create(ctx, seedDoc(domain.StatusConfirmed, "delivery", "2025-03-02T10:00:00Z"))
	require.NoError(t, err)
	_, err = p.Create(ctx, seedDoc(domain.StatusPending, "delivery", "2025-03-03T10:00:00Z"))
	require.NoError(t, err)

	pending, err := p.FindAll(ctx, dto.ListFilters{Status: domain.StatusPending})
	require.NoError(t, err)
	assert.Len(t, pending, 2)
	for _, doc := range pending {
		assert.Equal(t, domain.StatusPending, doc["status"])
	}

	delivery, err := p.FindAll(ctx, dto.ListFilters{DeliveryOption: "delivery"})
	require.NoError(t, err)
	assert.Len(t, delivery, 2)

	both, err := p.FindAll(ctx, dto.ListFilters{Status: domain.StatusPending, DeliveryOption: "delivery"})
	require.NoError(t, err)
	assert.Len(t, both, 1)
}

func TestMemoryProvider_FindAll_DateRangeInclusive(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider()

	for _, createdAt := range []string{
		"2025-03-01T10:00:00Z",
		"2025-03-02T10:00:00Z",
		"2025-03-03T10:00:00Z",
	} {
		_, err := p.Create(ctx, seedDoc(domain.StatusPending, "pickup", createdAt))
		require.NoError(t, err)
	}

	docs, err := p.FindAll(ctx, dto.ListFilters{
		StartDate: "2025-03-01T10:00:00Z",
		EndDate:   "2025-03-02T10:00:00Z",
	})
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	fromOnly, err := p.FindAll(ctx, dto.ListFilters{StartDate: "2025-03-02T00:00:00Z"})
	require.NoError(t, err)
	assert.Len(t, fromOnly, 2)
}

func TestMemoryProvider_Update_KeepsID(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider()

	stored, err := p.Create(ctx, seedDoc(domain.StatusPending, "pickup", "2025-03-01T10:00:00Z"))
	require.NoError(t, err)
	id := stored["id"].(string)

	err = p.Update(ctx, id, map[string]any{"status": domain.StatusReady, "id": "other"})
	require.NoError(t, err)

	found, err := p.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, domain.StatusReady, found["status"])
	assert.Equal(t, id, found["id"])
}

func TestMemoryProvider_Delete_Idempotent(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider()

	stored, err := p.Create(ctx, seedDoc(domain.StatusPending, "pickup", "2025-03-01T10:00:00Z"))
	require.NoError(t, err)
	id := stored["id"].(string)

	require.NoError(t, p.Delete(ctx, id))
	require.NoError(t, p.Delete(ctx, id))

	found, err := p.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryProvider_ReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider()

	stored, err := p.Create(ctx, seedDoc(domain.StatusPending, "pickup", "2025-03-01T10:00:00Z"))
	require.NoError(t, err)
	id := stored["id"].(string)

	stored["status"] = "tampered"

	found, err := p.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, found["status"])
}
