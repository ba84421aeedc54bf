package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghhhava7/devclimate/internal/client/api"
	"github.com/raghhhava7/devclimate/internal/client/models"
	"github.com/raghhhava7/devclimate/internal/client/repositories/state"
)

func authed(fs *fakeSession) {
	fs.user = &models.User{ID: "u1", Username: "alice", Email: "a@b.c"}
}

func TestOpenDashboard_FetchesFirstPage(t *testing.T) {
	app, fs, fh, _, _ := newTestApp(t)
	authed(fs)

	app.openDashboard(context.Background())

	assert.Equal(t, []int{1}, fh.fetchCalls)
	assert.Empty(t, fh.searchCalls)
}

func TestOpenDashboard_LaunchTermWinsOverPendingSlot(t *testing.T) {
	app, fs, fh, ms, _ := newTestApp(t)
	authed(fs)
	app.deferredSearch = "Tokyo"
	ms.m[state.KeyPendingSearch] = "Paris"

	app.openDashboard(context.Background())

	// exactly one search, for the launch term; both sources consumed
	assert.Equal(t, []string{"Tokyo"}, fh.searchCalls)
	assert.Empty(t, app.deferredSearch)
	assert.Empty(t, ms.m[state.KeyPendingSearch])
	// initial fetch, then refresh of page 1 after the search
	assert.Equal(t, []int{1, 1}, fh.fetchCalls)
}

func TestOpenDashboard_ConsumesPendingSlot(t *testing.T) {
	app, fs, fh, ms, _ := newTestApp(t)
	authed(fs)
	ms.m[state.KeyPendingSearch] = "Paris"

	app.openDashboard(context.Background())

	assert.Equal(t, []string{"Paris"}, fh.searchCalls)
	assert.Empty(t, ms.m[state.KeyPendingSearch])
}

func TestOpenDashboard_SearchRunsAfterInitialFetch(t *testing.T) {
	app, fs, fh, _, _ := newTestApp(t)
	authed(fs)
	app.deferredSearch = "Tokyo"

	app.openDashboard(context.Background())

	// the fetch of page 1 precedes the search: no timer, no race
	require.Equal(t, []int{1, 1}, fh.fetchCalls)
	require.Equal(t, []string{"Tokyo"}, fh.searchCalls)
}

func TestSearch_UnauthenticatedStoresPendingAndSkipsNetwork(t *testing.T) {
	app, _, fh, ms, out := newTestApp(t)

	require.NoError(t, app.Search(context.Background(), []string{"Paris"}))

	assert.Empty(t, fh.searchCalls, "no search call before authentication")
	assert.Empty(t, fh.fetchCalls, "no list fetch before authentication")
	assert.Equal(t, "Paris", ms.m[state.KeyPendingSearch])
	assert.Contains(t, out.String(), "Sign in")
}

func TestSearch_PendingReplayedOnceAfterLogin(t *testing.T) {
	app, _, fh, ms, _ := newTestApp(t)
	stubPrompts(t, []string{"a@b.c"}, "pw")

	// user searches before authenticating
	require.NoError(t, app.Search(context.Background(), []string{"Paris"}))
	require.Empty(t, fh.searchCalls)

	// then logs in; the dashboard activation replays the pending search
	require.NoError(t, app.Login(context.Background()))

	assert.Equal(t, []string{"Paris"}, fh.searchCalls)
	assert.Empty(t, ms.m[state.KeyPendingSearch])

	// a second activation must not replay it again
	app.openDashboard(context.Background())
	assert.Equal(t, []string{"Paris"}, fh.searchCalls)
}

func TestSearch_BlankInputIsNoop(t *testing.T) {
	app, fs, fh, _, _ := newTestApp(t)
	authed(fs)
	stubPrompts(t, []string{"   ", ""}, "")

	require.NoError(t, app.Search(context.Background(), nil))
	require.NoError(t, app.Search(context.Background(), []string{"  ", ""}))

	assert.Empty(t, fh.searchCalls)
	assert.Empty(t, fh.fetchCalls)
}

func TestSearch_SuccessRefreshesFirstPage(t *testing.T) {
	app, fs, fh, _, _ := newTestApp(t)
	authed(fs)
	app.page = &models.HistoryPage{CurrentPage: 3, TotalPages: 3}

	require.NoError(t, app.Search(context.Background(), []string{"New", "York"}))

	assert.Equal(t, []string{"New York"}, fh.searchCalls)
	assert.Equal(t, []int{1}, fh.fetchCalls)
}

func TestSearch_LookupErrorSurfacedInputPreserved(t *testing.T) {
	app, fs, fh, _, out := newTestApp(t)
	authed(fs)
	fh.searchErr = &api.LookupError{Message: "City not found"}

	require.NoError(t, app.Search(context.Background(), []string{"Nowhereville"}))

	assert.Contains(t, out.String(), "City not found")
	assert.Empty(t, fh.fetchCalls, "no refresh after a failed search")
}

func TestFetch_UnauthorizedDropsSession(t *testing.T) {
	app, fs, fh, _, out := newTestApp(t)
	authed(fs)
	fh.fetchErr = api.ErrUnauthorized

	require.NoError(t, app.List(context.Background()))

	assert.Equal(t, 1, fs.logoutCalls)
	assert.Nil(t, app.page)
	assert.Contains(t, out.String(), "session has expired")
}

func TestNext_RefusedOnLastPage(t *testing.T) {
	app, fs, fh, _, out := newTestApp(t)
	authed(fs)
	app.page = &models.HistoryPage{CurrentPage: 2, TotalPages: 2}

	require.NoError(t, app.Next(context.Background()))

	assert.Empty(t, fh.fetchCalls)
	assert.Contains(t, out.String(), "last page")
}

func TestPrev_RefusedOnFirstPage(t *testing.T) {
	app, fs, fh, _, out := newTestApp(t)
	authed(fs)
	app.page = &models.HistoryPage{CurrentPage: 1, TotalPages: 2}

	require.NoError(t, app.Prev(context.Background()))

	assert.Empty(t, fh.fetchCalls)
	assert.Contains(t, out.String(), "first page")
}

func TestNextPrev_MoveWithinBounds(t *testing.T) {
	app, fs, fh, _, _ := newTestApp(t)
	authed(fs)
	app.page = &models.HistoryPage{CurrentPage: 1, TotalPages: 3}
	fh.pages[2] = &models.HistoryPage{CurrentPage: 2, TotalPages: 3}

	require.NoError(t, app.Next(context.Background()))
	require.Equal(t, 2, app.page.CurrentPage)

	fh.pages[1] = &models.HistoryPage{CurrentPage: 1, TotalPages: 3}
	require.NoError(t, app.Prev(context.Background()))
	assert.Equal(t, []int{2, 1}, fh.fetchCalls)
}

func TestDelete_RefetchesCurrentPage(t *testing.T) {
	app, fs, fh, _, _ := newTestApp(t)
	authed(fs)
	app.page = &models.HistoryPage{CurrentPage: 2, TotalPages: 3}
	fh.pages[2] = &models.HistoryPage{
		Records:     []models.WeatherRecord{{ID: "s9", City: "Oslo"}},
		CurrentPage: 2, TotalPages: 3, TotalCount: 11,
	}

	require.NoError(t, app.Delete(context.Background(), []string{"s1"}))

	assert.Equal(t, []string{"s1"}, fh.deleted)
	assert.Equal(t, []int{2}, fh.fetchCalls)
	assert.Equal(t, 2, app.page.CurrentPage)
}

func TestDelete_ClampsWhenPageVanishes(t *testing.T) {
	app, fs, fh, _, _ := newTestApp(t)
	authed(fs)
	// user sits on page 3; the delete leaves only 2 pages
	app.page = &models.HistoryPage{CurrentPage: 3, TotalPages: 3}
	fh.pages[3] = &models.HistoryPage{CurrentPage: 3, TotalPages: 2, TotalCount: 10}
	fh.pages[2] = &models.HistoryPage{
		Records:     []models.WeatherRecord{{ID: "s5", City: "Lima"}},
		CurrentPage: 2, TotalPages: 2, TotalCount: 10,
	}

	require.NoError(t, app.Delete(context.Background(), []string{"s1"}))

	assert.Equal(t, []int{3, 2}, fh.fetchCalls)
	assert.Equal(t, 2, app.page.CurrentPage)
	assert.NotEmpty(t, app.page.Records)
}

func TestDelete_FailureSurfaced(t *testing.T) {
	app, fs, fh, _, out := newTestApp(t)
	authed(fs)
	fh.deleteErr = &api.DeletionError{Message: "Failed to delete weather search"}

	err := app.Delete(context.Background(), []string{"s1"})
	require.Error(t, err)
	assert.Contains(t, out.String(), "Failed to delete weather search")
	assert.Empty(t, fh.fetchCalls, "no refetch after a failed delete")
}
