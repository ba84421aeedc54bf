// Package api implements the HTTP/JSON transport to the DevClimate backend.
// It owns the endpoint paths, the bearer-token header, and the mapping of
// HTTP failures onto the client error taxonomy.
package api

import (
	"context"

	"github.com/raghhhava7/devclimate/internal/client/models"
)

// Client defines the remote operations the application services depend on.
//
// Contract:
//   - Login/Register: exchange credentials for a token and a user identity.
//   - Profile: validate the current token and fetch the identity behind it.
//   - History: fetch one page of past searches.
//   - SearchCity: ask the server to look up and persist current weather.
//   - DeleteSearch: remove one history entry by id.
//   - SetToken/ClearToken: install or drop the bearer credential used by
//     the authorized calls.
//
// All methods must honor context cancellation.
type Client interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Register(ctx context.Context, username, email, password string) (string, *models.User, error)
	Profile(ctx context.Context) (*models.User, error)
	History(ctx context.Context, page, limit int) (*models.HistoryPage, error)
	SearchCity(ctx context.Context, city string) error
	DeleteSearch(ctx context.Context, id string) error
	SetToken(token string)
	ClearToken()
	Close() error
}
