package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/raghhhava7/devclimate/internal/client/models"
)

// Default user-facing messages used when the server does not include an
// "error" field in a failure response.
const (
	defaultLoginFailed    = "Login failed"
	defaultRegisterFailed = "Registration failed"
	defaultLookupFailed   = "Failed to fetch weather data"
	defaultDeleteFailed   = "Failed to delete weather search"
)

// authResponse is the success shape of the login/register endpoints.
type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// profileResponse is the success shape of the profile endpoint.
type profileResponse struct {
	User *models.User `json:"user"`
}

// errorResponse is the failure shape shared by all endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// RESTClient is the Client implementation over the DevClimate REST API.
// The bearer token is held on the underlying resty client; authorized
// calls made without a token installed will be rejected by the server.
type RESTClient struct {
	http *resty.Client
}

// NewRESTClient builds a client bound to baseURL (scheme://host[:port],
// no trailing /api). Every request carries a fresh X-Request-Id so that
// calls can be correlated with server logs.
func NewRESTClient(baseURL string) *RESTClient {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json")

	c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})

	return &RESTClient{http: c}
}

// SetToken installs the bearer credential used by authorized calls.
func (c *RESTClient) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// ClearToken drops the bearer credential.
func (c *RESTClient) ClearToken() {
	c.http.SetAuthToken("")
}

// Close releases idle transport connections.
func (c *RESTClient) Close() error {
	c.http.GetClient().CloseIdleConnections()
	return nil
}

// decodeAuth validates and decodes a login/register response. Auth
// endpoints must answer with JSON; anything else (a proxy error page, an
// HTML 404) is a protocol error rather than a credential rejection.
func decodeAuth(resp *resty.Response, defaultMsg string) (string, *models.User, error) {
	if !isJSON(resp) {
		return "", nil, &ProtocolError{Detail: fmt.Sprintf("non-JSON response (status %d)", resp.StatusCode())}
	}

	if resp.IsError() {
		var er errorResponse
		if err := json.Unmarshal(resp.Body(), &er); err != nil {
			return "", nil, &ProtocolError{Detail: err.Error()}
		}
		msg := er.Error
		if msg == "" {
			msg = defaultMsg
		}
		return "", nil, &AuthenticationError{Message: msg}
	}

	var ar authResponse
	if err := json.Unmarshal(resp.Body(), &ar); err != nil {
		return "", nil, &ProtocolError{Detail: err.Error()}
	}
	if ar.Token == "" || ar.User == nil {
		return "", nil, &ProtocolError{Detail: "missing token or user in response"}
	}
	return ar.Token, ar.User, nil
}

func isJSON(resp *resty.Response) bool {
	return strings.Contains(resp.Header().Get("Content-Type"), "application/json")
}

// serverMessage extracts the "error" field from a failure body, falling
// back to defaultMsg when absent or undecodable.
func serverMessage(resp *resty.Response, defaultMsg string) string {
	var er errorResponse
	if err := json.Unmarshal(resp.Body(), &er); err == nil && er.Error != "" {
		return er.Error
	}
	return defaultMsg
}

func (c *RESTClient) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/api/auth/login")
	if err != nil {
		return "", nil, &TransportError{Err: err}
	}
	return decodeAuth(resp, defaultLoginFailed)
}

func (c *RESTClient) Register(ctx context.Context, username, email, password string) (string, *models.User, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"username": username, "email": email, "password": password}).
		Post("/api/auth/register")
	if err != nil {
		return "", nil, &TransportError{Err: err}
	}
	return decodeAuth(resp, defaultRegisterFailed)
}

func (c *RESTClient) Profile(ctx context.Context) (*models.User, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/api/auth/profile")
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.IsError() {
		return nil, fmt.Errorf("profile request failed: status %d", resp.StatusCode())
	}

	var pr profileResponse
	if err := json.Unmarshal(resp.Body(), &pr); err != nil {
		return nil, &ProtocolError{Detail: err.Error()}
	}
	if pr.User == nil {
		return nil, &ProtocolError{Detail: "missing user in response"}
	}
	return pr.User, nil
}

func (c *RESTClient) History(ctx context.Context, page, limit int) (*models.HistoryPage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page":  fmt.Sprintf("%d", page),
			"limit": fmt.Sprintf("%d", limit),
		}).
		Get("/api/weather")
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.IsError() {
		return nil, fmt.Errorf("history request failed: status %d", resp.StatusCode())
	}

	var hp models.HistoryPage
	if err := json.Unmarshal(resp.Body(), &hp); err != nil {
		return nil, &ProtocolError{Detail: err.Error()}
	}
	return &hp, nil
}

func (c *RESTClient) SearchCity(ctx context.Context, city string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/weather/current/" + url.PathEscape(city))
	if err != nil {
		return &TransportError{Err: err}
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.IsError() {
		return &LookupError{Message: serverMessage(resp, defaultLookupFailed)}
	}
	return nil
}

func (c *RESTClient) DeleteSearch(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/api/weather/" + url.PathEscape(id))
	if err != nil {
		return &TransportError{Err: err}
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.IsError() {
		return &DeletionError{Message: serverMessage(resp, defaultDeleteFailed)}
	}
	return nil
}
