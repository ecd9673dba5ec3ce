// Package session keeps a local mirror of the signed-in user. The server is
// the authority on whether a session is valid; the mirror only remembers who
// was signed in and reads the token expiry so the client can prompt for
// re-login instead of issuing calls it knows will fail.
package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dailyverse/internal/api"
	"dailyverse/internal/localstate"
)

const stateKey = "session"

// Mirror is the persisted view of the current session.
type Mirror struct {
	store *localstate.Store
	clock func() time.Time

	current state
}

type state struct {
	Token string    `json:"token,omitempty"`
	User  *api.User `json:"user,omitempty"`
	Admin bool      `json:"admin,omitempty"`
}

// NewMirror loads the persisted session, if any.
func NewMirror(store *localstate.Store) (*Mirror, error) {
	m := &Mirror{store: store, clock: time.Now}
	var s state
	found, err := store.Get(stateKey, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if found {
		m.current = s
	}
	return m, nil
}

// SignIn records a successful login.
func (m *Mirror) SignIn(user *api.User, token string) error {
	m.current = state{Token: token, User: user}
	return m.save()
}

// SignInAdmin records a successful admin login. Admin auth rides on the
// cookie jar, so no token is kept.
func (m *Mirror) SignInAdmin() error {
	m.current.Admin = true
	return m.save()
}

// SignOut clears the mirror.
func (m *Mirror) SignOut() error {
	m.current = state{}
	return m.store.Delete(stateKey)
}

// SignOutAdmin drops the admin flag, keeping any member session.
func (m *Mirror) SignOutAdmin() error {
	m.current.Admin = false
	return m.save()
}

// User returns the signed-in user, or nil.
func (m *Mirror) User() *api.User {
	return m.current.User
}

// Token returns the stored session token, or "".
func (m *Mirror) Token() string {
	return m.current.Token
}

// IsAdmin reports whether an admin login was recorded this session.
func (m *Mirror) IsAdmin() bool {
	return m.current.Admin
}

// SignedIn reports whether a non-expired session is mirrored.
func (m *Mirror) SignedIn() bool {
	return m.current.User != nil && !m.Expired()
}

// Expired reports whether the stored token's exp claim has passed. Tokens
// without a readable expiry are treated as unexpired; the server will reject
// them if they are not.
func (m *Mirror) Expired() bool {
	if m.current.Token == "" {
		return false
	}
	exp, ok := tokenExpiry(m.current.Token)
	if !ok {
		return false
	}
	return m.clock().After(exp)
}

// tokenExpiry reads the exp claim without verifying the signature. The
// client has no key material; verification happens server-side.
func tokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (m *Mirror) save() error {
	return m.store.Set(stateKey, m.current)
}

// Export returns the mirror as JSON, used by the status command.
func (m *Mirror) Export() ([]byte, error) {
	return json.MarshalIndent(m.current, "", "  ")
}
