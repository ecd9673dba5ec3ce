package api

import (
	"context"
	"fmt"
	"net/url"
)

// verseResponse carries a single verse payload. Verse stays nil when the
// call succeeds but no verse exists for the requested date.
type verseResponse struct {
	envelope
	Verse *Verse `json:"verse"`
}

// VerseForDate fetches the verse published for the given calendar day.
// A nil verse with a nil error means the day is empty.
func (c *Client) VerseForDate(ctx context.Context, date string) (*Verse, error) {
	q := url.Values{"date": {date}}
	var resp verseResponse
	if err := c.get(ctx, "/api/verse", q, &resp); err != nil {
		return nil, err
	}
	return resp.Verse, nil
}

// RandomVerse fetches a random published verse.
func (c *Client) RandomVerse(ctx context.Context) (*Verse, error) {
	var resp verseResponse
	if err := c.get(ctx, "/api/verse/random", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Verse, nil
}

type verseListResponse struct {
	envelope
	Verses []Verse `json:"verses"`
}

// SearchVerses runs a server-side text search over published verses.
func (c *Client) SearchVerses(ctx context.Context, query string) ([]Verse, error) {
	q := url.Values{"q": {query}}
	var resp verseListResponse
	if err := c.get(ctx, "/api/verse/search", q, &resp); err != nil {
		return nil, err
	}
	return resp.Verses, nil
}

type heartResponse struct {
	envelope
	Hearts int `json:"hearts"`
}

// Heart records a heart for the verse under the anonymous token and returns
// the server's authoritative count. The caller must never increment a local
// count ahead of this call.
func (c *Client) Heart(ctx context.Context, verseID int) (int, error) {
	body := map[string]string{"user_token": c.userToken}
	var resp heartResponse
	if err := c.postJSON(ctx, fmt.Sprintf("/api/verse/%d/heart", verseID), body, &resp); err != nil {
		return 0, err
	}
	return resp.Hearts, nil
}

// QRCode fetches the server-rendered QR image for a verse's share link.
func (c *Client) QRCode(ctx context.Context, verseID int) ([]byte, error) {
	return c.getRaw(ctx, fmt.Sprintf("/api/verse/%d/qr", verseID))
}

type feedbackRequest struct {
	Content string `json:"content"`
	Email   string `json:"email,omitempty"`
}

type basicResponse struct {
	envelope
}

// SubmitFeedback sends free-form visitor feedback.
func (c *Client) SubmitFeedback(ctx context.Context, content, email string) error {
	var resp basicResponse
	return c.postJSON(ctx, "/api/feedback", feedbackRequest{Content: content, Email: email}, &resp)
}

// RecordEvent posts a single analytics event. Callers treat failures as
// non-fatal; analytics must never surface errors to the visitor.
func (c *Client) RecordEvent(ctx context.Context, event string, verseID int, metadata map[string]string) error {
	body := map[string]interface{}{
		"event":      event,
		"user_token": c.userToken,
	}
	if verseID > 0 {
		body["verse_id"] = verseID
	}
	if len(metadata) > 0 {
		body["metadata"] = metadata
	}
	var resp basicResponse
	return c.postJSON(ctx, "/api/analytics", body, &resp)
}
