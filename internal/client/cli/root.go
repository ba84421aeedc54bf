package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the loop needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isAuthenticated() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context) error
}

// Run restores the session once, opens the dashboard if a persisted token
// proved valid, and enters the interactive loop. It returns on EOF or
// when the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "DevClimate CLI (type 'help' for commands)")

	if err := a.session.Restore(ctx); err != nil {
		a.log.Error(ctx, "session restore failed", "error", err.Error())
	}
	if a.isAuthenticated() {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", a.session.User().Username)
		a.openDashboard(ctx)
	}

	scanner := bufio.NewScanner(a.in)
	runLoop(ctx, a, a.status, scanner, a.out)
}

func (a *App) status() string {
	if u := a.session.User(); u != nil {
		return "(" + u.Username + ") "
	}
	return ""
}

// runLoop reads a line, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or
// "quit". Errors returned by command handlers are ignored here; handlers
// report their own failures.
func runLoop(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "devclimate %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isAuthenticated() {
				fmt.Fprintln(out, "Available commands: (s)earch <city>, (l)ist, next, prev, delete <id>, whoami, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: login, register, search <city>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "s", "search":
			_ = a.Search(ctx, args)

		case "l", "list":
			if !a.isAuthenticated() {
				fmt.Fprintln(out, "Please log in first.")
				continue
			}
			_ = a.List(ctx)

		case "next":
			if !a.isAuthenticated() {
				fmt.Fprintln(out, "Please log in first.")
				continue
			}
			_ = a.Next(ctx)

		case "prev":
			if !a.isAuthenticated() {
				fmt.Fprintln(out, "Please log in first.")
				continue
			}
			_ = a.Prev(ctx)

		case "delete":
			if !a.isAuthenticated() {
				fmt.Fprintln(out, "Please log in first.")
				continue
			}
			_ = a.Delete(ctx, args)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
