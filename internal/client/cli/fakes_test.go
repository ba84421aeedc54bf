package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/raghhhava7/devclimate/internal/client/models"
	"github.com/raghhhava7/devclimate/internal/logging"
)

// fakeSession implements services.Session.
type fakeSession struct {
	user        *models.User
	restoreUser *models.User
	loginErr    error
	registerErr error

	restoreCalls int
	logoutCalls  int
}

func (f *fakeSession) Restore(ctx context.Context) error {
	f.restoreCalls++
	if f.restoreUser != nil {
		f.user = f.restoreUser
	}
	return nil
}

func (f *fakeSession) Login(ctx context.Context, email, password string) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	f.user = &models.User{ID: "u1", Username: "alice", Email: email}
	return nil
}

func (f *fakeSession) Register(ctx context.Context, username, email, password string) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	f.user = &models.User{ID: "u2", Username: username, Email: email}
	return nil
}

func (f *fakeSession) Logout(ctx context.Context) {
	f.logoutCalls++
	f.user = nil
}

func (f *fakeSession) IsAuthenticated() bool { return f.user != nil }
func (f *fakeSession) User() *models.User    { return f.user }
func (f *fakeSession) Loading() bool         { return false }

// fakeHistory implements services.History.
type fakeHistory struct {
	pages     map[int]*models.HistoryPage
	fetchErr  error
	searchErr error
	deleteErr error

	fetchCalls  []int
	searchCalls []string
	deleted     []string
}

func (f *fakeHistory) FetchPage(ctx context.Context, page, limit int) (*models.HistoryPage, error) {
	f.fetchCalls = append(f.fetchCalls, page)
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	if p, ok := f.pages[page]; ok {
		return p, nil
	}
	return &models.HistoryPage{CurrentPage: page, TotalPages: 1}, nil
}

func (f *fakeHistory) SearchCity(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	f.searchCalls = append(f.searchCalls, name)
	return f.searchErr
}

func (f *fakeHistory) DeleteRecord(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// memStates implements state.Repository in memory.
type memStates struct {
	m map[string]string
}

func newMemStates() *memStates { return &memStates{m: map[string]string{}} }

func (s *memStates) Get(ctx context.Context, key string) (string, error) { return s.m[key], nil }
func (s *memStates) Set(ctx context.Context, key, value string) error {
	s.m[key] = value
	return nil
}
func (s *memStates) Delete(ctx context.Context, key string) error {
	delete(s.m, key)
	return nil
}
func (s *memStates) Clear(ctx context.Context) error {
	s.m = map[string]string{}
	return nil
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestApp(t *testing.T) (*App, *fakeSession, *fakeHistory, *memStates, *bytes.Buffer) {
	t.Helper()
	fs := &fakeSession{}
	fh := &fakeHistory{pages: map[int]*models.HistoryPage{}}
	ms := newMemStates()
	out := &bytes.Buffer{}
	app := &App{
		session:  fs,
		history:  fh,
		states:   ms,
		log:      discardLogger(),
		in:       strings.NewReader(""),
		out:      out,
		reader:   bufio.NewReader(strings.NewReader("")),
		pageSize: 5,
	}
	return app, fs, fh, ms, out
}

// stubPrompts replaces the interactive input seams for the duration of a
// test. Each call to the text prompt pops the next queued answer.
func stubPrompts(t *testing.T, answers []string, password string) {
	t.Helper()
	origText := getSimpleText
	origPass := getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPass
	})
}
