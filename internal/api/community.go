package api

import (
	"context"
	"fmt"
	"net/url"
)

// MaxSubmissionLength is the client-enforced limit on community submissions.
const MaxSubmissionLength = 500

type communityResponse struct {
	envelope
	Community
}

// CommunityForDate fetches approved prayer requests and praise reports for
// the given calendar day.
func (c *Client) CommunityForDate(ctx context.Context, date string) (*Community, error) {
	q := url.Values{"date": {date}}
	var resp communityResponse
	if err := c.get(ctx, "/api/community", q, &resp); err != nil {
		return nil, err
	}
	return &resp.Community, nil
}

type submissionRequest struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

func validateSubmission(content string) error {
	if len([]rune(content)) > MaxSubmissionLength {
		return &Error{Message: fmt.Sprintf("Submissions are limited to %d characters.", MaxSubmissionLength)}
	}
	return nil
}

// SubmitPrayerRequest creates an anonymous prayer request for the date.
func (c *Client) SubmitPrayerRequest(ctx context.Context, date, content string) error {
	if err := validateSubmission(content); err != nil {
		return err
	}
	var resp basicResponse
	return c.postJSON(ctx, "/api/prayer-request", submissionRequest{Date: date, Content: content}, &resp)
}

// SubmitPraiseReport creates an anonymous praise report for the date.
func (c *Client) SubmitPraiseReport(ctx context.Context, date, content string) error {
	if err := validateSubmission(content); err != nil {
		return err
	}
	var resp basicResponse
	return c.postJSON(ctx, "/api/praise-report", submissionRequest{Date: date, Content: content}, &resp)
}

type countResponse struct {
	envelope
	Count int `json:"count"`
}

// Pray increments the prayer counter for a request and returns the new
// count. The caller records the interaction locally only after this
// succeeds.
func (c *Client) Pray(ctx context.Context, requestID int) (int, error) {
	body := map[string]string{"user_token": c.userToken}
	var resp countResponse
	if err := c.postJSON(ctx, fmt.Sprintf("/api/prayer-request/%d/pray", requestID), body, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// Celebrate increments the celebration counter for a praise report.
func (c *Client) Celebrate(ctx context.Context, reportID int) (int, error) {
	body := map[string]string{"user_token": c.userToken}
	var resp countResponse
	if err := c.postJSON(ctx, fmt.Sprintf("/api/praise-report/%d/celebrate", reportID), body, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}
