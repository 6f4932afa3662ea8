package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/cakeshop/internal/common"
	"github.com/dmitrijs2005/cakeshop/internal/logging"
	"github.com/dmitrijs2005/cakeshop/internal/models"
	"github.com/dmitrijs2005/cakeshop/internal/repositories/kv"
	"github.com/google/uuid"
)

var (
	now   = time.Now
	newID = uuid.NewString
)

// Catalog keeps one ordered listing collection per vendor under
// "cakes_<vendor>". Listings are append-only.
type Catalog struct {
	store kv.Store
	log   logging.Logger
}

func NewCatalog(store kv.Store, log logging.Logger) *Catalog {
	return &Catalog{store: store, log: log}
}

func (c *Catalog) load(ctx context.Context, s kv.Store, vendor string) ([]models.Listing, error) {
	var listings []models.Listing
	if _, err := loadJSON(ctx, s, c.log, catalogKey(vendor), &listings); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", vendor, err)
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	return listings, nil
}

// List returns vendor's listings in insertion order.
func (c *Catalog) List(ctx context.Context, vendor string) ([]models.Listing, error) {
	return c.load(ctx, c.store, vendor)
}

// Add validates l, assigns it an id and appends it to vendor's catalog.
func (c *Catalog) Add(ctx context.Context, vendor string, l models.Listing) (models.Listing, error) {
	l.Name = strings.TrimSpace(l.Name)
	l.Price = strings.TrimSpace(l.Price)
	if l.Name == "" || l.Price == "" {
		return models.Listing{}, common.ErrInvalidListing
	}
	l.ID = newID()
	l.CreatedAt = now().UTC()

	err := c.store.Update(ctx, func(ctx context.Context, tx kv.Store) error {
		listings, err := c.load(ctx, tx, vendor)
		if err != nil {
			return err
		}
		return saveJSON(ctx, tx, catalogKey(vendor), append(listings, l))
	})
	if err != nil {
		return models.Listing{}, err
	}

	c.log.Info(ctx, "listing added", "vendor", vendor, "id", l.ID, "name", l.Name)
	return l, nil
}

// Search returns the listings whose name contains filter, ignoring case.
// An empty filter matches everything.
func (c *Catalog) Search(ctx context.Context, vendor, filter string) ([]models.Listing, error) {
	listings, err := c.List(ctx, vendor)
	if err != nil {
		return nil, err
	}
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return listings, nil
	}
	matched := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if strings.Contains(strings.ToLower(l.Name), filter) {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

func (c *Catalog) Get(ctx context.Context, vendor, id string) (models.Listing, error) {
	listings, err := c.List(ctx, vendor)
	if err != nil {
		return models.Listing{}, err
	}
	for _, l := range listings {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Listing{}, common.ErrListingNotFound
}
