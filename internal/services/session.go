package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/cakeshop/internal/common"
	"github.com/dmitrijs2005/cakeshop/internal/logging"
	"github.com/dmitrijs2005/cakeshop/internal/models"
	"github.com/dmitrijs2005/cakeshop/internal/repositories/kv"
)

// Session holds the single signed-in identity under the "user" key. It is
// read from the store on every call.
type Session struct {
	store    kv.Store
	accounts *Accounts
	log      logging.Logger
}

func NewSession(store kv.Store, accounts *Accounts, log logging.Logger) *Session {
	return &Session{store: store, accounts: accounts, log: log}
}

// sessionRecord is u as kept under "user": the password hash stays in the
// account directory only.
func sessionRecord(u models.User) models.User {
	u.Password = ""
	return u
}

func (s *Session) Establish(ctx context.Context, u models.User) error {
	if err := saveJSON(ctx, s.store, keyUser, sessionRecord(u)); err != nil {
		return fmt.Errorf("establish session: %w", err)
	}
	return nil
}

// Current returns the signed-in user. ok is false when nobody is signed in.
func (s *Session) Current(ctx context.Context) (u models.User, ok bool, err error) {
	ok, err = loadJSON(ctx, s.store, s.log, keyUser, &u)
	if err != nil {
		return models.User{}, false, fmt.Errorf("read session: %w", err)
	}
	if ok && u.Username == "" {
		return models.User{}, false, nil
	}
	return u, ok, nil
}

func (s *Session) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, keyUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Signup registers a new account and signs it in. Both writes land together
// or not at all. The returned user is the session record.
func (s *Session) Signup(ctx context.Context, username string, password []byte, role models.Role) (models.User, error) {
	var u models.User
	err := s.store.Update(ctx, func(ctx context.Context, tx kv.Store) error {
		var err error
		u, err = s.accounts.withStore(tx).Register(ctx, username, password, role)
		if err != nil {
			return err
		}
		u = sessionRecord(u)
		return saveJSON(ctx, tx, keyUser, u)
	})
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Login authenticates and signs the account in. The returned user is the
// session record.
func (s *Session) Login(ctx context.Context, username string, password []byte) (models.User, error) {
	u, err := s.accounts.Authenticate(ctx, username, password)
	if err != nil {
		return models.User{}, err
	}
	u = sessionRecord(u)
	if err := s.Establish(ctx, u); err != nil {
		return models.User{}, err
	}
	s.log.Info(ctx, "signed in", "username", u.Username, "role", u.Role)
	return u, nil
}

// Require returns the signed-in user if their role is one of roles. With no
// roles any signed-in user passes.
func (s *Session) Require(ctx context.Context, roles ...models.Role) (models.User, error) {
	u, ok, err := s.Current(ctx)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, common.ErrNotAuthenticated
	}
	if len(roles) > 0 && !slices.Contains(roles, u.Role) {
		return models.User{}, common.ErrForbidden
	}
	return u, nil
}
