package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cakeshop/internal/common"
	"github.com/dmitrijs2005/cakeshop/internal/models"
)

// getSimpleText and getPassword are swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Signup creates an account and signs it in. An empty role answer means
// customer.
func (a *App) Signup(ctx context.Context, _ []string) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	roleText, err := getSimpleText(a.reader, "Role (customer, owner, admin)", a.out)
	if err != nil {
		return err
	}
	role := models.RoleCustomer
	if roleText != "" {
		role = models.Role(strings.ToLower(roleText))
	}

	u, err := a.session.Signup(ctx, username, password, role)
	if err != nil {
		return err
	}
	a.resetCustomerState()
	fmt.Fprintf(a.out, "Welcome, %s! Opening the %s dashboard.\n", u.Username, u.Role.View())
	return nil
}

func (a *App) Login(ctx context.Context, _ []string) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.session.Login(ctx, username, password)
	if err != nil {
		return err
	}
	a.resetCustomerState()
	fmt.Fprintf(a.out, "Signed in as %s. Opening the %s dashboard.\n", u.Username, u.Role.View())
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.session.Clear(ctx); err != nil {
		return err
	}
	a.resetCustomerState()
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
