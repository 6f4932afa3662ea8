package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	view  string
	calls []string
	args  [][]string
	err   error
}

func (f *fakeExec) currentView(context.Context) (string, string) {
	if f.view == viewLogin {
		return viewLogin, ""
	}
	return f.view, "alice/" + f.view
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) Signup(_ context.Context, a []string) error {
	f.view = viewCustomer
	return f.record("signup", a)
}
func (f *fakeExec) Login(_ context.Context, a []string) error {
	f.view = viewAdmin
	return f.record("login", a)
}
func (f *fakeExec) Logout(_ context.Context, a []string) error {
	f.view = viewLogin
	return f.record("logout", a)
}
func (f *fakeExec) Listings(_ context.Context, a []string) error { return f.record("listings", a) }
func (f *fakeExec) Add(_ context.Context, a []string) error      { return f.record("add", a) }
func (f *fakeExec) Popular(_ context.Context, a []string) error  { return f.record("popular", a) }
func (f *fakeExec) Profile(_ context.Context, a []string) error  { return f.record("profile", a) }
func (f *fakeExec) EditProfile(_ context.Context, a []string) error {
	return f.record("editprofile", a)
}
func (f *fakeExec) Color(_ context.Context, a []string) error { return f.record("color", a) }
func (f *fakeExec) Businesses(_ context.Context, a []string) error {
	return f.record("businesses", a)
}
func (f *fakeExec) Select(_ context.Context, a []string) error   { return f.record("select", a) }
func (f *fakeExec) Browse(_ context.Context, a []string) error   { return f.record("browse", a) }
func (f *fakeExec) Rate(_ context.Context, a []string) error     { return f.record("rate", a) }
func (f *fakeExec) Download(_ context.Context, a []string) error { return f.record("download", a) }

func run(t *testing.T, f *fakeExec, input string) string {
	t.Helper()
	var out bytes.Buffer
	runREPL(context.Background(), f, rdr(input), &out)
	return out.String()
}

func TestRunREPL_RoutesByRole(t *testing.T) {
	f := &fakeExec{view: viewLogin}
	input := strings.Join([]string{
		"listings",
		"login",
		"listings",
		"color bg-pink-100",
		"browse",
		"logout",
		"signup",
		"browse choc",
		"rate 2 5",
		"exit",
	}, "\n")

	out := run(t, f, input)

	assert.Equal(t, []string{"login", "listings", "color", "logout", "signup", "browse", "rate"}, f.calls)
	assert.Equal(t, []string{"bg-pink-100"}, f.args[2])
	assert.Equal(t, []string{"choc"}, f.args[5])
	assert.Equal(t, []string{"2", "5"}, f.args[6])
	assert.Contains(t, out, `"listings" is not available here`)
	assert.Contains(t, out, `"browse" is not available here`)
	assert.Contains(t, out, "cakeshop (alice/admin)> ")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_HelpFollowsView(t *testing.T) {
	out := run(t, &fakeExec{view: viewLogin}, "help\nquit\n")
	assert.Contains(t, out, "Available commands: signup, login, help, exit")

	out = run(t, &fakeExec{view: viewCustomer}, "HELP\n")
	assert.Contains(t, out, "Available commands: businesses, select, browse, rate, download, logout, help, exit")
}

func TestRunREPL_ErrorsDoNotStopTheLoop(t *testing.T) {
	f := &fakeExec{view: viewAdmin, err: errors.New("listing requires a name and a price")}
	out := run(t, f, "add\nadd\nexit\n")

	assert.Equal(t, []string{"add", "add"}, f.calls)
	assert.Equal(t, 2, strings.Count(out, "Error: listing requires a name and a price"))
}

func TestRunREPL_UnknownAndBlank(t *testing.T) {
	f := &fakeExec{view: viewLogin}
	out := run(t, f, "\n   \nfoobar\n")

	assert.Empty(t, f.calls)
	assert.Contains(t, out, "Unknown command: foobar")
}

func TestRunREPL_EOFInsideCommandEnds(t *testing.T) {
	f := &fakeExec{view: viewAdmin, err: io.EOF}
	out := run(t, f, "add\nlistings\n")

	assert.Equal(t, []string{"add"}, f.calls)
	assert.NotContains(t, out, "Error:")
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &fakeExec{view: viewAdmin}
	var out bytes.Buffer
	runREPL(ctx, f, rdr("listings\n"), &out)
	assert.Empty(t, f.calls)
}
