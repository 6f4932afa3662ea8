package services

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/cakeshop/internal/logging"
	"github.com/dmitrijs2005/cakeshop/internal/repositories/kv"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	store    kv.Store
	logs     *bytes.Buffer
	accounts *Accounts
	session  *Session
	catalog  *Catalog
	ratings  *Ratings
	profiles *Profiles
	theme    *Theme
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureOver(t, kv.NewMemoryStore())
}

// newSQLiteFixture runs the services over a migrated SQLite file.
func newSQLiteFixture(t *testing.T) *fixture {
	t.Helper()
	store, closeFn, err := kv.Open(context.Background(), filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })
	return newFixtureOver(t, store)
}

func newFixtureOver(t *testing.T, store kv.Store) *fixture {
	t.Helper()
	var buf bytes.Buffer
	log := logging.New("debug", &buf)

	accounts := NewAccounts(store, log, bcrypt.MinCost)
	return &fixture{
		store:    store,
		logs:     &buf,
		accounts: accounts,
		session:  NewSession(store, accounts, log),
		catalog:  NewCatalog(store, log),
		ratings:  NewRatings(store, log),
		profiles: NewProfiles(store, accounts, log),
		theme:    NewTheme(store),
	}
}

var errBackend = errors.New("backend down")

// brokenStore fails every call.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, error) { return nil, errBackend }
func (brokenStore) Put(context.Context, string, []byte) error   { return errBackend }
func (brokenStore) Delete(context.Context, string) error        { return errBackend }
func (brokenStore) List(context.Context) (map[string][]byte, error) {
	return nil, errBackend
}
func (brokenStore) Clear(context.Context) error { return errBackend }
func (b brokenStore) Update(ctx context.Context, fn func(context.Context, kv.Store) error) error {
	return fn(ctx, b)
}
