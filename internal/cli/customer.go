package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/cakeshop/internal/media"
	"github.com/dmitrijs2005/cakeshop/internal/models"
)

var (
	errNoBusiness  = errors.New("no business selected; use 'businesses' then 'select <n>'")
	errNoListings  = errors.New("nothing to pick from; use 'browse' first")
	errNoSuchMedia = errors.New("this cake has no such media")
)

func (a *App) requireCustomer(ctx context.Context) (models.User, error) {
	return a.session.Require(ctx, models.RoleCustomer)
}

// Businesses prints the business directory and remembers it for select.
func (a *App) Businesses(ctx context.Context, _ []string) error {
	if _, err := a.requireCustomer(ctx); err != nil {
		return err
	}
	list, err := a.profiles.Businesses(ctx)
	if err != nil {
		return err
	}
	a.businesses = list

	fmt.Fprintf(a.out, "Number of businesses: %d\n", len(list))
	for i, b := range list {
		fmt.Fprintf(a.out, "%d. %s (%s), owner %s\n", i+1, b.Name, b.Location, b.Owner)
	}
	return nil
}

// Select picks a business by its number in the directory.
func (a *App) Select(ctx context.Context, args []string) error {
	if _, err := a.requireCustomer(ctx); err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: select <n>")
	}
	if a.businesses == nil {
		list, err := a.profiles.Businesses(ctx)
		if err != nil {
			return err
		}
		a.businesses = list
	}
	n, err := pick(args[0], len(a.businesses))
	if err != nil {
		return err
	}

	b := a.businesses[n]
	a.selected = &b
	a.shown = nil

	fmt.Fprintf(a.out, "%s\nLocation: %s\nOwner: %s\n", b.Name, b.Location, b.Owner)
	if b.Profile != "" {
		fmt.Fprintln(a.out, b.Profile)
	}
	if b.Demo {
		fmt.Fprintln(a.out, "This business has no cakes listed yet.")
	}
	return nil
}

// Browse lists the selected business's cakes, optionally filtered by name.
func (a *App) Browse(ctx context.Context, args []string) error {
	if _, err := a.requireCustomer(ctx); err != nil {
		return err
	}
	if a.selected == nil {
		return errNoBusiness
	}

	var listings []models.Listing
	if !a.selected.Demo {
		var err error
		listings, err = a.catalog.Search(ctx, a.selected.Vendor, strings.Join(args, " "))
		if err != nil {
			return err
		}
	}
	rated, err := a.ratings.Annotate(ctx, listings)
	if err != nil {
		return err
	}
	a.shown = rated

	if len(rated) == 0 {
		fmt.Fprintln(a.out, "No cakes found.")
		return nil
	}
	writeListings(a.out, rated)
	return nil
}

// Rate sets the stars for a cake from the last browse.
func (a *App) Rate(ctx context.Context, args []string) error {
	if _, err := a.requireCustomer(ctx); err != nil {
		return err
	}
	if len(args) != 2 {
		return errors.New("usage: rate <n> <stars>")
	}
	n, err := a.pickShown(args[0])
	if err != nil {
		return err
	}
	stars, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("stars must be a number: %q", args[1])
	}

	l := &a.shown[n]
	if err := a.ratings.Set(ctx, l.ID, stars); err != nil {
		return err
	}
	l.Rating = stars
	fmt.Fprintf(a.out, "Rated %s %s\n", l.Name, models.Stars(stars))
	return nil
}

// Download exports a cake's image or video through the configured sink.
func (a *App) Download(ctx context.Context, args []string) error {
	if _, err := a.requireCustomer(ctx); err != nil {
		return err
	}
	if len(args) != 2 {
		return errors.New("usage: download <n> image|video")
	}
	n, err := a.pickShown(args[0])
	if err != nil {
		return err
	}
	l := a.shown[n]

	var kind media.Kind
	var dataURL string
	switch strings.ToLower(args[1]) {
	case "image":
		kind, dataURL = media.KindImage, l.Image
	case "video":
		kind, dataURL = media.KindVideo, l.Video
	default:
		return errors.New("usage: download <n> image|video")
	}
	if dataURL == "" {
		return errNoSuchMedia
	}

	blob, err := media.Decode(dataURL)
	if err != nil {
		return err
	}
	loc, err := a.sink.Put(ctx, media.DownloadName(l.Name, kind, blob.MIME), blob)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Saved", loc)
	return nil
}

func (a *App) pickShown(arg string) (int, error) {
	if len(a.shown) == 0 {
		return 0, errNoListings
	}
	return pick(arg, len(a.shown))
}

// pick turns a 1-based menu number into an index.
func pick(arg string, size int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > size {
		return 0, fmt.Errorf("pick a number between 1 and %d", size)
	}
	return n - 1, nil
}
