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

// Integration tests; skipped when the local test database is unavailable.

func TestMySQLProvider_CreateAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	p := NewMySQLProvider(db)
	ctx := context.Background()

	stored, err := p.Create(ctx, seedDoc(domain.StatusPending, "pickup", "2025-03-01T10:00:00Z"))
	require.NoError(t, err)

	id, _ := stored["id"].(string)
	require.NotEmpty(t, id)

	found, err := p.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "John", found["firstName"])
	assert.Equal(t, "2 Tacos", found["orderDescription"])
	assert.Equal(t, "2025-03-01T10:00:00Z", found["createdAt"])
}

func TestMySQLProvider_FindByID_Absent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	p := NewMySQLProvider(db)

	found, err := p.FindByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestMySQLProvider_FindAll_FiltersAndOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	p := NewMySQLProvider(db)
	ctx := context.Background()

	_, err := p.Create(ctx, seedDoc(domain.StatusPending, "pickup", "2025-03-01T10:00:00Z"))
	require.NoError(t, err)
	_, err = p.Create(ctx, seedDoc(domain.StatusConfirmed, "delivery", "2025-03-02T10:00:00Z"))
	require.NoError(t, err)
	_, err = p.Create(ctx, seedDoc(domain.StatusPending, "delivery", "2025-03-03T10:00:00Z"))
	require.NoError(t, err)

	all, err := p.FindAll(ctx, dto.ListFilters{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2025-03-03T10:00:00Z", all[0]["createdAt"])
	assert.Equal(t, "2025-03-01T10:00:00Z", all[2]["createdAt"])

	pending, err := p.FindAll(ctx, dto.ListFilters{Status: domain.StatusPending})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	ranged, err := p.FindAll(ctx, dto.ListFilters{
		StartDate: "2025-03-02T10:00:00Z",
		EndDate:   "2025-03-03T10:00:00Z",
	})
	require.NoError(t, err)
	assert.Len(t, ranged, 2)
}

func TestMySQLProvider_UpdatePartial(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	p := NewMySQLProvider(db)
	ctx := context.Background()

	stored, err := p.Create(ctx, seedDoc(domain.StatusPending, "pickup", "2025-03-01T10:00:00Z"))
	require.NoError(t, err)
	id := stored["id"].(string)

	err = p.Update(ctx, id, map[string]any{"status": domain.StatusReady})
	require.NoError(t, err)

	found, err := p.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, domain.StatusReady, found["status"])
	assert.Equal(t, "John", found["firstName"])
	assert.Equal(t, id, found["id"])
}

func TestMySQLProvider_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	p := NewMySQLProvider(db)
	ctx := context.Background()

	stored, err := p.Create(ctx, seedDoc(domain.StatusPending, "pickup", "2025-03-01T10:00:00Z"))
	require.NoError(t, err)
	id := stored["id"].(string)

	require.NoError(t, p.Delete(ctx, id))

	found, err := p.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, found)
}
