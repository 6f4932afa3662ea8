package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/cakeshop/internal/common"
	"github.com/dmitrijs2005/cakeshop/internal/logging"
	"github.com/dmitrijs2005/cakeshop/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listings(ids ...string) []models.Listing {
	out := make([]models.Listing, len(ids))
	for i, id := range ids {
		out[i] = models.Listing{ID: id, Name: "cake " + id, Price: "1"}
	}
	return out
}

func TestRatings_UnratedIsZero(t *testing.T) {
	f := newFixture(t)
	got, err := f.ratings.Get(context.Background(), "l2")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestRatings_OutOfRangeIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, stars := range []int{0, 6, -1} {
		err := f.ratings.Set(ctx, "l2", stars)
		require.ErrorIs(t, err, common.ErrInvalidRating)
	}

	got, err := f.ratings.Get(ctx, "l2")
	require.NoError(t, err)
	assert.Zero(t, got)

	raw, err := f.store.Get(ctx, "cakeRatings")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestRatings_SetOverwrites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.ratings.Set(ctx, "l1", 2))
	require.NoError(t, f.ratings.Set(ctx, "l1", 4))

	got, err := f.ratings.Get(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	raw, err := f.store.Get(ctx, "cakeRatings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"l1":4}`, string(raw))
}

func TestRatings_MostPopularReturnsAllTies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.ratings.Set(ctx, "l0", 3))
	require.NoError(t, f.ratings.Set(ctx, "l1", 5))
	require.NoError(t, f.ratings.Set(ctx, "l3", 5))

	top, err := f.ratings.MostPopular(ctx, listings("l0", "l1", "l2", "l3"))
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "l1", top[0].ID)
	assert.Equal(t, "l3", top[1].ID)
	for _, l := range top {
		assert.Equal(t, 5, l.Rating)
	}
}

func TestRatings_MostPopularEmptyWhenNothingRated(t *testing.T) {
	f := newFixture(t)
	top, err := f.ratings.MostPopular(context.Background(), listings("a", "b"))
	require.NoError(t, err)
	assert.NotNil(t, top)
	assert.Empty(t, top)
}

func TestRatings_IdentitySurvivesReordering(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.ratings.Set(ctx, "b", 4))

	rated, err := f.ratings.Annotate(ctx, listings("c", "b", "a"))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 0}, []int{rated[0].Rating, rated[1].Rating, rated[2].Rating})
}

func TestRatings_CorruptMapReadsAsEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Put(ctx, "cakeRatings", []byte(`[1,2`)))

	got, err := f.ratings.Get(ctx, "a")
	require.NoError(t, err)
	assert.Zero(t, got)

	require.NoError(t, f.ratings.Set(ctx, "a", 1))
	got, err = f.ratings.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestRatings_BackendError(t *testing.T) {
	r := NewRatings(brokenStore{}, logging.Discard())
	err := r.Set(context.Background(), "a", 3)
	require.ErrorIs(t, err, errBackend)
}
