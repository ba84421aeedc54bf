package models

// User is the identity returned by the auth endpoints. The server is the
// source of truth; the client only holds a read-only copy for display.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
