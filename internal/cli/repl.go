package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

const (
	viewLogin    = "login"
	viewAdmin    = "admin"
	viewCustomer = "customer"
)

// viewCommands lists what each view accepts, in help order.
var viewCommands = map[string][]string{
	viewLogin:    {"signup", "login", "help", "exit"},
	viewAdmin:    {"listings", "add", "popular", "profile", "editprofile", "color", "logout", "help", "exit"},
	viewCustomer: {"businesses", "select", "browse", "rate", "download", "logout", "help", "exit"},
}

// execIface is the command surface the REPL drives. App satisfies it; tests
// use a stub.
type execIface interface {
	currentView(ctx context.Context) (view, label string)

	Signup(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error

	Listings(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Popular(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	EditProfile(ctx context.Context, args []string) error
	Color(ctx context.Context, args []string) error

	Businesses(ctx context.Context, args []string) error
	Select(ctx context.Context, args []string) error
	Browse(ctx context.Context, args []string) error
	Rate(ctx context.Context, args []string) error
	Download(ctx context.Context, args []string) error
}

// runREPL reads commands from in until EOF, "exit"/"quit" or ctx is done.
// The first token selects the command and the rest are its arguments.
// Commands outside the current view are refused; errors from handlers are
// printed and the loop continues.
func runREPL(ctx context.Context, a execIface, in *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		view, label := a.currentView(ctx)
		if label != "" {
			fmt.Fprintf(w, "cakeshop (%s)> ", label)
		} else {
			fmt.Fprint(w, "cakeshop> ")
		}

		line, err := readLine(in)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if cmd == "quit" {
			cmd = "exit"
		}
		if !slices.Contains(viewCommands[view], cmd) {
			if isKnown(cmd) {
				fmt.Fprintf(w, "%q is not available here; type 'help'\n", cmd)
			} else {
				fmt.Fprintln(w, "Unknown command:", cmd)
			}
			continue
		}

		var handler func(context.Context, []string) error
		switch cmd {
		case "help":
			fmt.Fprintln(w, "Available commands:", strings.Join(viewCommands[view], ", "))
			continue
		case "exit":
			fmt.Fprintln(w, "Bye!")
			return
		case "signup":
			handler = a.Signup
		case "login":
			handler = a.Login
		case "logout":
			handler = a.Logout
		case "listings":
			handler = a.Listings
		case "add":
			handler = a.Add
		case "popular":
			handler = a.Popular
		case "profile":
			handler = a.Profile
		case "editprofile":
			handler = a.EditProfile
		case "color":
			handler = a.Color
		case "businesses":
			handler = a.Businesses
		case "select":
			handler = a.Select
		case "browse":
			handler = a.Browse
		case "rate":
			handler = a.Rate
		case "download":
			handler = a.Download
		}

		if err := handler(ctx, args); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Fprintln(w, "Error:", err)
		}
	}
}

func isKnown(cmd string) bool {
	for _, cmds := range viewCommands {
		if slices.Contains(cmds, cmd) {
			return true
		}
	}
	return false
}
