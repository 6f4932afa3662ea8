package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cakeshop/internal/common"
	"github.com/dmitrijs2005/cakeshop/internal/logging"
	"github.com/dmitrijs2005/cakeshop/internal/models"
	"github.com/dmitrijs2005/cakeshop/internal/repositories/kv"
)

// Ratings maps listing ids to 1..5 stars under "cakeRatings". A missing
// entry means unrated and reads as 0.
type Ratings struct {
	store kv.Store
	log   logging.Logger
}

func NewRatings(store kv.Store, log logging.Logger) *Ratings {
	return &Ratings{store: store, log: log}
}

func (r *Ratings) load(ctx context.Context, s kv.Store) (map[string]int, error) {
	ratings := map[string]int{}
	if _, err := loadJSON(ctx, s, r.log, keyRatings, &ratings); err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}
	if ratings == nil {
		ratings = map[string]int{}
	}
	return ratings, nil
}

func (r *Ratings) Get(ctx context.Context, listingID string) (int, error) {
	ratings, err := r.load(ctx, r.store)
	if err != nil {
		return 0, err
	}
	return ratings[listingID], nil
}

// Set records stars for a listing, replacing any earlier rating.
func (r *Ratings) Set(ctx context.Context, listingID string, stars int) error {
	if stars < 1 || stars > models.MaxRating {
		return fmt.Errorf("%w: got %d", common.ErrInvalidRating, stars)
	}
	return r.store.Update(ctx, func(ctx context.Context, tx kv.Store) error {
		ratings, err := r.load(ctx, tx)
		if err != nil {
			return err
		}
		ratings[listingID] = stars
		return saveJSON(ctx, tx, keyRatings, ratings)
	})
}

// Annotate pairs every listing with its rating, keeping order.
func (r *Ratings) Annotate(ctx context.Context, listings []models.Listing) ([]models.RatedListing, error) {
	ratings, err := r.load(ctx, r.store)
	if err != nil {
		return nil, err
	}
	out := make([]models.RatedListing, len(listings))
	for i, l := range listings {
		out[i] = models.RatedListing{Listing: l, Rating: ratings[l.ID]}
	}
	return out, nil
}

// MostPopular returns every listing that shares the highest rating, in input
// order. Nothing is returned until at least one listing is rated.
func (r *Ratings) MostPopular(ctx context.Context, listings []models.Listing) ([]models.RatedListing, error) {
	rated, err := r.Annotate(ctx, listings)
	if err != nil {
		return nil, err
	}

	best := 0
	for _, l := range rated {
		best = max(best, l.Rating)
	}

	top := []models.RatedListing{}
	if best == 0 {
		return top, nil
	}
	for _, l := range rated {
		if l.Rating == best {
			top = append(top, l)
		}
	}
	return top, nil
}
