package services

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cakeshop/internal/common"
	"github.com/dmitrijs2005/cakeshop/internal/logging"
	"github.com/dmitrijs2005/cakeshop/internal/models"
	"github.com/dmitrijs2005/cakeshop/internal/repositories/kv"
	"golang.org/x/crypto/bcrypt"
)

// Accounts is the account directory. Usernames are unique; the whole
// collection is rewritten under "users" on every successful registration.
type Accounts struct {
	store kv.Store
	log   logging.Logger
	cost  int
}

func NewAccounts(store kv.Store, log logging.Logger, cost int) *Accounts {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Accounts{store: store, log: log, cost: cost}
}

// withStore returns a copy of a that reads and writes through s. Used to run
// registration inside a larger Update.
func (a *Accounts) withStore(s kv.Store) *Accounts {
	c := *a
	c.store = s
	return &c
}

// bcryptInput returns the bytes handed to bcrypt. bcrypt reads at most 72
// bytes, so longer passwords are digested first.
func bcryptInput(password []byte) []byte {
	if len(password) <= 72 {
		return password
	}
	sum := sha256.Sum256(password)
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func (a *Accounts) users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := loadJSON(ctx, a.store, a.log, keyUsers, &users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

// Register adds a new account and returns the stored record.
func (a *Accounts) Register(ctx context.Context, username string, password []byte, role models.Role) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) == 0 {
		return models.User{}, common.ErrEmptyCredentials
	}
	if !models.ValidRole(role) {
		return models.User{}, fmt.Errorf("%w: %q", common.ErrInvalidRole, role)
	}

	var created models.User
	err := a.store.Update(ctx, func(ctx context.Context, tx kv.Store) error {
		directory := a.withStore(tx)
		users, err := directory.users(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			if u.Username == username {
				return common.ErrDuplicateUsername
			}
		}

		hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), a.cost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		created = models.User{Username: username, Password: string(hash), Role: role}
		return saveJSON(ctx, tx, keyUsers, append(users, created))
	})
	if err != nil {
		return models.User{}, err
	}

	a.log.Info(ctx, "account registered", "username", username, "role", role)
	return created, nil
}

// Authenticate returns the account matching username if password is right.
func (a *Accounts) Authenticate(ctx context.Context, username string, password []byte) (models.User, error) {
	username = strings.TrimSpace(username)

	users, err := a.users(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if u.Username != username {
			continue
		}
		err := bcrypt.CompareHashAndPassword([]byte(u.Password), bcryptInput(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return models.User{}, common.ErrInvalidCredentials
		}
		if err != nil {
			a.log.Warn(ctx, "stored password hash unusable", "username", username, "error", err)
			return models.User{}, common.ErrInvalidCredentials
		}
		return u, nil
	}
	return models.User{}, common.ErrUserNotFound
}

// Count returns the number of registered accounts.
func (a *Accounts) Count(ctx context.Context) (int, error) {
	users, err := a.users(ctx)
	if err != nil {
		return 0, err
	}
	return len(users), nil
}

// Vendors returns the admin and owner accounts in signup order.
func (a *Accounts) Vendors(ctx context.Context) ([]models.User, error) {
	users, err := a.users(ctx)
	if err != nil {
		return nil, err
	}
	vendors := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role.IsVendor() {
			vendors = append(vendors, u)
		}
	}
	return vendors, nil
}
