package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/cakeshop/internal/common"
	"github.com/dmitrijs2005/cakeshop/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubIDs(t *testing.T) {
	t.Helper()
	origID, origNow := newID, now
	n := 0
	newID = func() string { n++; return fmt.Sprintf("id-%d", n) }
	now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { newID, now = origID, origNow })
}

func TestCatalog_AddAndListPreservesOrder(t *testing.T) {
	stubIDs(t)
	f := newFixture(t)
	ctx := context.Background()

	for _, name := range []string{"Chocolate", "Vanilla", "Red Velvet"} {
		_, err := f.catalog.Add(ctx, "alice", models.Listing{Name: name, Price: "10"})
		require.NoError(t, err)
	}

	got, err := f.catalog.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Chocolate", "Vanilla", "Red Velvet"}, []string{got[0].Name, got[1].Name, got[2].Name})
	assert.Equal(t, "id-1", got[0].ID)
	assert.Equal(t, "id-3", got[2].ID)
}

func TestCatalog_AddAssignsIDAndTimestamp(t *testing.T) {
	stubIDs(t)
	f := newFixture(t)

	l, err := f.catalog.Add(context.Background(), "alice", models.Listing{
		Name: " Lemon ", Price: "12.50", Description: "zesty", Image: "data:image/png;base64,AA==",
	})
	require.NoError(t, err)

	want := models.Listing{
		ID: "id-1", Name: "Lemon", Price: "12.50", Description: "zesty",
		Image: "data:image/png;base64,AA==", CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, l); diff != "" {
		t.Fatalf("listing mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_InvalidListingLeavesCountUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.catalog.Add(ctx, "alice", models.Listing{Name: "Ok", Price: "5"})
	require.NoError(t, err)

	_, err = f.catalog.Add(ctx, "alice", models.Listing{Name: "", Price: "10"})
	require.ErrorIs(t, err, common.ErrInvalidListing)
	_, err = f.catalog.Add(ctx, "alice", models.Listing{Name: "Cake", Price: ""})
	require.ErrorIs(t, err, common.ErrInvalidListing)

	got, err := f.catalog.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCatalog_VendorsArePartitioned(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.catalog.Add(ctx, "alice", models.Listing{Name: "A", Price: "1"})
	require.NoError(t, err)

	bob, err := f.catalog.List(ctx, "bob")
	require.NoError(t, err)
	assert.NotNil(t, bob)
	assert.Empty(t, bob)

	raw, err := f.store.Get(ctx, "cakes_alice")
	require.NoError(t, err)
	assert.NotNil(t, raw)
	raw, err = f.store.Get(ctx, "cakes")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestCatalog_Search(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, name := range []string{"Chocolate Fudge", "Vanilla", "White Chocolate"} {
		_, err := f.catalog.Add(ctx, "alice", models.Listing{Name: name, Price: "1"})
		require.NoError(t, err)
	}

	got, err := f.catalog.Search(ctx, "alice", "CHOC")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Chocolate Fudge", got[0].Name)
	assert.Equal(t, "White Chocolate", got[1].Name)

	got, err = f.catalog.Search(ctx, "alice", "")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = f.catalog.Search(ctx, "alice", "carrot")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalog_Get(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	l, err := f.catalog.Add(ctx, "alice", models.Listing{Name: "A", Price: "1"})
	require.NoError(t, err)

	got, err := f.catalog.Get(ctx, "alice", l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.Name, got.Name)

	_, err = f.catalog.Get(ctx, "alice", "missing")
	require.ErrorIs(t, err, common.ErrListingNotFound)
}
