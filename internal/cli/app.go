package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/cakeshop/internal/config"
	"github.com/dmitrijs2005/cakeshop/internal/logging"
	"github.com/dmitrijs2005/cakeshop/internal/media"
	"github.com/dmitrijs2005/cakeshop/internal/models"
	"github.com/dmitrijs2005/cakeshop/internal/repositories/kv"
	"github.com/dmitrijs2005/cakeshop/internal/services"
)

type sessionService interface {
	Current(ctx context.Context) (models.User, bool, error)
	Signup(ctx context.Context, username string, password []byte, role models.Role) (models.User, error)
	Login(ctx context.Context, username string, password []byte) (models.User, error)
	Require(ctx context.Context, roles ...models.Role) (models.User, error)
	Clear(ctx context.Context) error
}

type catalogService interface {
	List(ctx context.Context, vendor string) ([]models.Listing, error)
	Add(ctx context.Context, vendor string, l models.Listing) (models.Listing, error)
	Search(ctx context.Context, vendor, filter string) ([]models.Listing, error)
}

type ratingService interface {
	Set(ctx context.Context, listingID string, stars int) error
	Annotate(ctx context.Context, listings []models.Listing) ([]models.RatedListing, error)
	MostPopular(ctx context.Context, listings []models.Listing) ([]models.RatedListing, error)
}

type profileService interface {
	Get(ctx context.Context, vendor string) (models.Profile, error)
	Save(ctx context.Context, vendor string, p models.Profile) error
	Businesses(ctx context.Context) ([]models.Business, error)
}

type themeService interface {
	Color(ctx context.Context) (string, error)
	SetColor(ctx context.Context, token string) error
}

// App is the terminal client. It keeps the customer's current business and
// the last listing page shown so numbered commands can refer to them.
type App struct {
	session  sessionService
	catalog  catalogService
	ratings  ratingService
	profiles profileService
	theme    themeService
	sink     media.Sink
	log      logging.Logger

	reader *bufio.Reader
	out    io.Writer

	businesses []models.Business
	selected   *models.Business
	shown      []models.RatedListing
}

// NewApp wires the services over store.
func NewApp(store kv.Store, cfg *config.Config, sink media.Sink, log logging.Logger, in io.Reader, out io.Writer) *App {
	accounts := services.NewAccounts(store, log, cfg.PasswordCost)
	return &App{
		session:  services.NewSession(store, accounts, log),
		catalog:  services.NewCatalog(store, log),
		ratings:  services.NewRatings(store, log),
		profiles: services.NewProfiles(store, accounts, log),
		theme:    services.NewTheme(store),
		sink:     sink,
		log:      log,
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Open connects to the store named in cfg and builds an App on it. The
// returned function closes the store.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, func() error, error) {
	store, closeFn, err := kv.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	log.Info(ctx, "store opened", "backend", kv.Backend(cfg.DatabaseDSN))

	sink, err := newSink(ctx, cfg)
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}

	return NewApp(kv.WithTimeout(store, cfg.StoreTimeout), cfg, sink, log, in, out), closeFn, nil
}

func newSink(ctx context.Context, cfg *config.Config) (media.Sink, error) {
	if !cfg.S3Enabled() {
		return media.NewDirSink(cfg.DownloadDir), nil
	}
	return media.NewS3Sink(ctx, media.S3Config{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Prefix:    "downloads",
	})
}

// Run greets the user and blocks in the REPL until exit, EOF or ctx is done.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the Cake Store (type 'help' for commands)")
	runREPL(ctx, a, a.reader, a.out)
}

// currentView returns the dashboard for the signed-in role ("login" when
// nobody is signed in) and a short prompt label.
func (a *App) currentView(ctx context.Context) (string, string) {
	u, ok, err := a.session.Current(ctx)
	if err != nil {
		a.log.Warn(ctx, "session lookup failed", "error", err)
	}
	if !ok || u.Role.View() == "" {
		return viewLogin, ""
	}
	return u.Role.View(), fmt.Sprintf("%s/%s", u.Username, u.Role)
}

func (a *App) resetCustomerState() {
	a.businesses = nil
	a.selected = nil
	a.shown = nil
}
