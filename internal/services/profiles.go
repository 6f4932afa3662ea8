package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cakeshop/internal/logging"
	"github.com/dmitrijs2005/cakeshop/internal/models"
	"github.com/dmitrijs2005/cakeshop/internal/repositories/kv"
)

// demoBusinesses fill the customer directory until a vendor publishes a
// profile.
var demoBusinesses = []models.Business{
	{Name: "Sweet Treats Bakery", Location: "Cape Town", Owner: "Alice Smith", Profile: "Alice is a master baker with 10 years of experience.", Demo: true},
	{Name: "Cake Heaven", Location: "Johannesburg", Owner: "Bob Johnson", Profile: "Bob specializes in wedding cakes and custom designs.", Demo: true},
	{Name: "Pastry Palace", Location: "Durban", Owner: "Carol Lee", Profile: "Carol brings French pastry expertise to Durban.", Demo: true},
}

// Profiles stores one vendor profile per username.
type Profiles struct {
	store    kv.Store
	accounts *Accounts
	log      logging.Logger
}

func NewProfiles(store kv.Store, accounts *Accounts, log logging.Logger) *Profiles {
	return &Profiles{store: store, accounts: accounts, log: log}
}

// Get returns vendor's profile, or an empty one if nothing was saved.
func (p *Profiles) Get(ctx context.Context, vendor string) (models.Profile, error) {
	var profile models.Profile
	if _, err := loadJSON(ctx, p.store, p.log, profileKey(vendor), &profile); err != nil {
		return models.Profile{}, fmt.Errorf("load profile %s: %w", vendor, err)
	}
	return profile, nil
}

func (p *Profiles) Save(ctx context.Context, vendor string, profile models.Profile) error {
	if err := saveJSON(ctx, p.store, profileKey(vendor), profile); err != nil {
		return fmt.Errorf("save profile %s: %w", vendor, err)
	}
	p.log.Info(ctx, "profile saved", "vendor", vendor)
	return nil
}

// Businesses lists every vendor that has named its business, in signup
// order. When there are none the demo businesses are returned instead.
func (p *Profiles) Businesses(ctx context.Context) ([]models.Business, error) {
	vendors, err := p.accounts.Vendors(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Business, 0, len(vendors))
	for _, v := range vendors {
		profile, err := p.Get(ctx, v.Username)
		if err != nil {
			return nil, err
		}
		if profile.BusinessName == "" {
			continue
		}
		out = append(out, models.Business{
			Vendor:   v.Username,
			Name:     profile.BusinessName,
			Location: profile.Location,
			Owner:    profile.OwnerName,
			Profile:  profile.Description,
			Logo:     profile.Logo,
		})
	}

	if len(out) == 0 {
		return append(out, demoBusinesses...), nil
	}
	return out, nil
}
