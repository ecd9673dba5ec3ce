package api

import (
	"context"
)

type authResponse struct {
	envelope
	User  *User  `json:"user"`
	Token string `json:"token,omitempty"`
}

// Login authenticates an account and returns the mirrored user plus the
// session token. The server owns the session; the client only mirrors it.
func (c *Client) Login(ctx context.Context, email, password string) (*User, string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.postJSON(ctx, "/api/auth/login", body, &resp); err != nil {
		return nil, "", err
	}
	return resp.User, resp.Token, nil
}

// RegisterInput carries the fields collected at sign-up.
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Register creates an account and returns the new session.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*User, string, error) {
	var resp authResponse
	if err := c.postJSON(ctx, "/api/auth/register", in, &resp); err != nil {
		return nil, "", err
	}
	return resp.User, resp.Token, nil
}

// Logout ends the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	var resp basicResponse
	return c.postJSON(ctx, "/api/auth/logout", nil, &resp)
}

// Me fetches the current account, confirming the mirrored session is live.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp authResponse
	if err := c.get(ctx, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// UpdateProfile replaces the account's display fields.
func (c *Client) UpdateProfile(ctx context.Context, firstName, lastName, displayName string) (*User, error) {
	body := map[string]string{
		"firstName":   firstName,
		"lastName":    lastName,
		"displayName": displayName,
	}
	var resp authResponse
	if err := c.putJSON(ctx, "/api/auth/profile", body, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// PreferencesInput carries personalization attributes.
type PreferencesInput struct {
	LifeStage            string   `json:"lifeStage,omitempty"`
	Interests            []string `json:"interests,omitempty"`
	Struggles            []string `json:"struggles,omitempty"`
	PrayerFrequency      string   `json:"prayerFrequency,omitempty"`
	PreferredTranslation string   `json:"preferredTranslation,omitempty"`
}

// UpdatePreferences saves personalization attributes to the account.
func (c *Client) UpdatePreferences(ctx context.Context, in PreferencesInput) (*User, error) {
	var resp authResponse
	if err := c.putJSON(ctx, "/api/auth/preferences", in, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// CompleteOnboarding submits the post-registration preference flow in one
// call and marks onboarding done server-side.
func (c *Client) CompleteOnboarding(ctx context.Context, in PreferencesInput) (*User, error) {
	var resp authResponse
	if err := c.postJSON(ctx, "/api/auth/onboarding", in, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}
