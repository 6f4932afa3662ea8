package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cakeshop/internal/media"
	"github.com/dmitrijs2005/cakeshop/internal/models"
	"github.com/dmitrijs2005/cakeshop/internal/services"
)

// encodeFile is swapped in tests.
var encodeFile = media.EncodeFile

func (a *App) requireVendor(ctx context.Context) (models.User, error) {
	return a.session.Require(ctx, models.RoleAdmin, models.RoleOwner)
}

// Listings prints the signed-in vendor's catalog with ratings.
func (a *App) Listings(ctx context.Context, _ []string) error {
	u, err := a.requireVendor(ctx)
	if err != nil {
		return err
	}
	listings, err := a.catalog.List(ctx, u.Username)
	if err != nil {
		return err
	}
	rated, err := a.ratings.Annotate(ctx, listings)
	if err != nil {
		return err
	}
	color, err := a.theme.Color(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Your cakes: %d (card color %s)\n", len(rated), color)
	writeListings(a.out, rated)
	return nil
}

// Add prompts for a new listing. Image and video are optional file paths.
func (a *App) Add(ctx context.Context, _ []string) error {
	u, err := a.requireVendor(ctx)
	if err != nil {
		return err
	}

	var l models.Listing
	if l.Name, err = getSimpleText(a.reader, "Cake name", a.out); err != nil {
		return err
	}
	if l.Price, err = getSimpleText(a.reader, "Price", a.out); err != nil {
		return err
	}
	if l.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
		return err
	}
	if l.Image, err = a.promptMedia("Image file (optional)"); err != nil {
		return err
	}
	if l.Video, err = a.promptMedia("Video file (optional)"); err != nil {
		return err
	}

	added, err := a.catalog.Add(ctx, u.Username, l)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %q.\n", added.Name)
	return nil
}

// promptMedia asks for a file path and returns its data URL, or "" when the
// answer is empty.
func (a *App) promptMedia(prompt string) (string, error) {
	path, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil || path == "" {
		return "", err
	}
	return encodeFile(path)
}

func (a *App) Popular(ctx context.Context, _ []string) error {
	u, err := a.requireVendor(ctx)
	if err != nil {
		return err
	}
	listings, err := a.catalog.List(ctx, u.Username)
	if err != nil {
		return err
	}
	top, err := a.ratings.MostPopular(ctx, listings)
	if err != nil {
		return err
	}
	if len(top) == 0 {
		fmt.Fprintln(a.out, "No ratings yet.")
		return nil
	}
	fmt.Fprintf(a.out, "Most popular (%s):\n", models.Stars(top[0].Rating))
	writeListings(a.out, top)
	return nil
}

func (a *App) Profile(ctx context.Context, _ []string) error {
	u, err := a.requireVendor(ctx)
	if err != nil {
		return err
	}
	p, err := a.profiles.Get(ctx, u.Username)
	if err != nil {
		return err
	}
	writeProfile(a.out, p)
	return nil
}

// EditProfile walks through each field; an empty answer keeps the current
// value.
func (a *App) EditProfile(ctx context.Context, _ []string) error {
	u, err := a.requireVendor(ctx)
	if err != nil {
		return err
	}
	p, err := a.profiles.Get(ctx, u.Username)
	if err != nil {
		return err
	}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Business name", &p.BusinessName},
		{"Location", &p.Location},
		{"Owner name", &p.OwnerName},
		{"Description", &p.Description},
	}
	for _, f := range fields {
		if *f.dst, err = GetWithDefault(a.reader, f.prompt, *f.dst, a.out); err != nil {
			return err
		}
	}
	logo, err := a.promptMedia("Logo file (optional, empty keeps current)")
	if err != nil {
		return err
	}
	if logo != "" {
		p.Logo = logo
	}

	if err := a.profiles.Save(ctx, u.Username, p); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile saved.")
	return nil
}

// Color shows the card palette, or sets the card color when given one.
func (a *App) Color(ctx context.Context, args []string) error {
	if _, err := a.requireVendor(ctx); err != nil {
		return err
	}
	if len(args) == 0 {
		current, err := a.theme.Color(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Card color: %s\nAvailable: %s\n", current, strings.Join(services.Colors, ", "))
		return nil
	}
	if err := a.theme.SetColor(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Card color set to %s.\n", args[0])
	return nil
}
