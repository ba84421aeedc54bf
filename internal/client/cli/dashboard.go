package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/raghhhava7/devclimate/internal/client/api"
	"github.com/raghhhava7/devclimate/internal/client/repositories/state"
)

// openDashboard runs the single-pass activation sequence: fetch page 1,
// then replay at most one deferred search as a continuation of that fetch.
// It runs after every successful restore, login, or registration.
func (a *App) openDashboard(ctx context.Context) {
	a.fetchAndRender(ctx, 1)

	if term := a.takeDeferredSearch(ctx); term != "" {
		fmt.Fprintf(a.out, "Searching for %q...\n", term)
		a.runSearch(ctx, term)
	}
}

// takeDeferredSearch consumes both deferred-search sources and returns at
// most one term. The launch-time term wins over the pending slot; both
// are cleared so neither can fire twice.
func (a *App) takeDeferredSearch(ctx context.Context) string {
	launch := strings.TrimSpace(a.deferredSearch)
	a.deferredSearch = ""

	pending, err := a.states.Get(ctx, state.KeyPendingSearch)
	if err != nil {
		a.log.Warn(ctx, "failed to read pending search", "error", err.Error())
		pending = ""
	}
	if pending != "" {
		if err := a.states.Delete(ctx, state.KeyPendingSearch); err != nil {
			a.log.Warn(ctx, "failed to clear pending search", "error", err.Error())
		}
	}

	if launch != "" {
		return launch
	}
	return strings.TrimSpace(pending)
}

// Search handles the user-level search command. While unauthenticated the
// term is captured into the pending slot instead of hitting the network;
// it replays once on the next dashboard activation.
func (a *App) Search(ctx context.Context, args []string) error {
	city := strings.TrimSpace(strings.Join(args, " "))

	if city == "" && a.isAuthenticated() {
		var err error
		city, err = getSimpleText(a.reader, "Enter city name", a.out)
		if err != nil {
			return err
		}
		city = strings.TrimSpace(city)
	}
	if city == "" {
		return nil
	}

	if !a.isAuthenticated() {
		if err := a.states.Set(ctx, state.KeyPendingSearch, city); err != nil {
			a.log.Warn(ctx, "failed to store pending search", "error", err.Error())
			return err
		}
		fmt.Fprintln(a.out, "Sign in to search weather for any city worldwide. Your search will run right after.")
		return nil
	}

	a.runSearch(ctx, city)
	return nil
}

// runSearch issues the search and, on success, refreshes page 1 so the
// new record becomes visible (the search endpoint does not return it).
func (a *App) runSearch(ctx context.Context, city string) {
	if err := a.history.SearchCity(ctx, city); err != nil {
		var lookupErr *api.LookupError
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			a.expireSession(ctx)
		case errors.As(err, &lookupErr):
			fmt.Fprintln(a.out, lookupErr.Message)
		default:
			fmt.Fprintf(a.out, "Failed to fetch weather data: %s\n", err.Error())
		}
		return
	}
	a.fetchAndRender(ctx, 1)
}

// List re-fetches and renders the page the user is on (page 1 at first).
func (a *App) List(ctx context.Context) error {
	n := 1
	if a.page != nil {
		n = a.page.CurrentPage
	}
	a.fetchAndRender(ctx, n)
	return nil
}

// Next moves one page forward. Out-of-range moves are refused, mirroring
// a disabled pagination button.
func (a *App) Next(ctx context.Context) error {
	if a.page == nil {
		a.fetchAndRender(ctx, 1)
		return nil
	}
	if a.page.CurrentPage >= a.page.TotalPages {
		fmt.Fprintln(a.out, "Already on the last page.")
		return nil
	}
	a.fetchAndRender(ctx, a.page.CurrentPage+1)
	return nil
}

// Prev moves one page back.
func (a *App) Prev(ctx context.Context) error {
	if a.page == nil || a.page.CurrentPage <= 1 {
		fmt.Fprintln(a.out, "Already on the first page.")
		return nil
	}
	a.fetchAndRender(ctx, a.page.CurrentPage-1)
	return nil
}

// Delete removes one history entry and re-fetches the page the user was
// on, clamped to the last page that still exists after the removal.
func (a *App) Delete(ctx context.Context, args []string) error {
	var id string
	if len(args) > 0 {
		id = args[0]
	} else {
		var err error
		id, err = getSimpleText(a.reader, "Enter record id to delete", a.out)
		if err != nil {
			return err
		}
	}
	if id == "" {
		return nil
	}

	if err := a.history.DeleteRecord(ctx, id); err != nil {
		var delErr *api.DeletionError
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			a.expireSession(ctx)
		case errors.As(err, &delErr):
			fmt.Fprintln(a.out, delErr.Message)
		default:
			fmt.Fprintf(a.out, "Failed to delete weather search: %s\n", err.Error())
		}
		return err
	}

	cur := 1
	if a.page != nil {
		cur = a.page.CurrentPage
	}
	page, err := a.history.FetchPage(ctx, cur, a.pageSize)
	if err != nil {
		a.reportFetchError(ctx, err)
		return nil
	}
	if cur > page.TotalPages && page.TotalPages >= 1 {
		page, err = a.history.FetchPage(ctx, page.TotalPages, a.pageSize)
		if err != nil {
			a.reportFetchError(ctx, err)
			return nil
		}
	}
	a.page = page
	renderPage(a.out, page)
	return nil
}

// fetchAndRender loads page n and renders it. Fetch failures never stop
// the loop; an expired token drops the session.
func (a *App) fetchAndRender(ctx context.Context, n int) {
	page, err := a.history.FetchPage(ctx, n, a.pageSize)
	if err != nil {
		a.reportFetchError(ctx, err)
		return
	}
	a.page = page
	renderPage(a.out, page)
}

func (a *App) reportFetchError(ctx context.Context, err error) {
	if errors.Is(err, api.ErrUnauthorized) {
		a.expireSession(ctx)
		return
	}
	fmt.Fprintf(a.out, "Failed to load search history: %s\n", err.Error())
}

// expireSession handles a rejected token on an authorized call: the
// session and the persisted token are cleared and the user is sent back
// to the login prompt.
func (a *App) expireSession(ctx context.Context) {
	a.session.Logout(ctx)
	a.page = nil
	fmt.Fprintln(a.out, "Your session has expired. Please log in again.")
}
