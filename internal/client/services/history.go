package services

import (
	"context"

	"github.com/raghhhava7/devclimate/internal/client/api"
	"github.com/raghhhava7/devclimate/internal/client/models"
)

// History fetches, triggers, and deletes past weather searches. All calls
// require an authenticated session; gating on Session state is the
// caller's responsibility.
//
// SearchCity does not return the new record: the server persists it and
// the caller re-fetches page 1 to observe it.
type History interface {
	FetchPage(ctx context.Context, page, limit int) (*models.HistoryPage, error)
	SearchCity(ctx context.Context, name string) error
	DeleteRecord(ctx context.Context, id string) error
}

type historyService struct {
	client api.Client
}

// NewHistory constructs a History bound to the given API client.
func NewHistory(client api.Client) History {
	return &historyService{client: client}
}

func (s *historyService) FetchPage(ctx context.Context, page, limit int) (*models.HistoryPage, error) {
	return s.client.History(ctx, page, limit)
}

// SearchCity trims name and asks the server to look it up. An empty name
// after trimming is a no-op: no network call, nil error.
func (s *historyService) SearchCity(ctx context.Context, name string) error {
	name = trimCity(name)
	if name == "" {
		return nil
	}
	return s.client.SearchCity(ctx, name)
}

func (s *historyService) DeleteRecord(ctx context.Context, id string) error {
	return s.client.DeleteSearch(ctx, id)
}
