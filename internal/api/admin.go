package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// AdminCheck reports whether the cookie jar holds a live admin session.
func (c *Client) AdminCheck(ctx context.Context) (bool, error) {
	var resp basicResponse
	err := c.get(ctx, "/api/admin/check", nil, &resp)
	if err != nil {
		// An expired or missing session is a normal "not logged in", not a
		// failure worth surfacing.
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// AdminLogin opens an admin session; the session cookie lands in the jar.
func (c *Client) AdminLogin(ctx context.Context, password string) error {
	body := map[string]string{"password": password}
	var resp basicResponse
	return c.postJSON(ctx, "/api/admin/login", body, &resp)
}

// AdminLogout ends the admin session.
func (c *Client) AdminLogout(ctx context.Context) error {
	var resp basicResponse
	return c.postJSON(ctx, "/api/admin/logout", nil, &resp)
}

// AdminVerses fetches the full verse list, drafts included.
func (c *Client) AdminVerses(ctx context.Context) ([]Verse, error) {
	var resp verseListResponse
	if err := c.get(ctx, "/api/admin/verses", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Verses, nil
}

// VerseInput carries the editable verse fields. For image verses Image is
// streamed as a multipart upload; text verses go through the same endpoint
// without a file part.
type VerseInput struct {
	Date           string
	ContentType    ContentType
	VerseText      string
	BibleReference string
	Context        string
	Tags           string
	Published      bool
	ImageName      string
	Image          io.Reader
}

func (in VerseInput) fields() map[string]string {
	return map[string]string{
		"date":            in.Date,
		"content_type":    string(in.ContentType),
		"verse_text":      in.VerseText,
		"bible_reference": in.BibleReference,
		"context":         in.Context,
		"tags":            in.Tags,
		"published":       strconv.FormatBool(in.Published),
	}
}

// CreateVerse creates a verse via the admin CRUD endpoint.
func (c *Client) CreateVerse(ctx context.Context, in VerseInput) (*Verse, error) {
	var resp verseResponse
	if err := c.postMultipart(ctx, http.MethodPost, "/api/admin/verses", in.fields(), in.ImageName, in.Image, &resp); err != nil {
		return nil, err
	}
	return resp.Verse, nil
}

// UpdateVerse edits an existing verse.
func (c *Client) UpdateVerse(ctx context.Context, id int, in VerseInput) (*Verse, error) {
	var resp verseResponse
	path := fmt.Sprintf("/api/admin/verses/%d", id)
	if err := c.postMultipart(ctx, http.MethodPut, path, in.fields(), in.ImageName, in.Image, &resp); err != nil {
		return nil, err
	}
	return resp.Verse, nil
}

// DeleteVerse removes a verse.
func (c *Client) DeleteVerse(ctx context.Context, id int) error {
	var resp basicResponse
	return c.delete(ctx, fmt.Sprintf("/api/admin/verses/%d", id), &resp)
}

// GenerateImage asks the server to render a shareable image for a verse.
func (c *Client) GenerateImage(ctx context.Context, verseID int) (string, error) {
	var resp struct {
		envelope
		ImagePath string `json:"image_path"`
	}
	if err := c.postJSON(ctx, fmt.Sprintf("/api/verse/%d/generate-image", verseID), nil, &resp); err != nil {
		return "", err
	}
	return resp.ImagePath, nil
}

// AdminAnalytics fetches the dashboard roll-up.
func (c *Client) AdminAnalytics(ctx context.Context) (*AnalyticsSummary, error) {
	var resp struct {
		envelope
		Analytics AnalyticsSummary `json:"analytics"`
	}
	if err := c.get(ctx, "/api/admin/analytics", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Analytics, nil
}

// AdminCommunity fetches the moderation feed: every submission regardless of
// approval state, with submitter addresses.
func (c *Client) AdminCommunity(ctx context.Context) (*Community, error) {
	var resp communityResponse
	if err := c.get(ctx, "/api/admin/community", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Community, nil
}

// SubmissionKind selects which moderation endpoint a submission belongs to.
type SubmissionKind string

const (
	KindPrayerRequest SubmissionKind = "prayer-request"
	KindPraiseReport  SubmissionKind = "praise-report"
)

// Moderate sets the approve/hide flags on a community submission.
func (c *Client) Moderate(ctx context.Context, kind SubmissionKind, id int, approved, hidden bool) error {
	body := map[string]bool{"is_approved": approved, "is_hidden": hidden}
	var resp basicResponse
	return c.postJSON(ctx, fmt.Sprintf("/api/%s/%d/moderate", kind, id), body, &resp)
}

// DeleteSubmission removes a community submission outright.
func (c *Client) DeleteSubmission(ctx context.Context, kind SubmissionKind, id int) error {
	var resp basicResponse
	return c.delete(ctx, fmt.Sprintf("/api/%s/%d", kind, id), &resp)
}
