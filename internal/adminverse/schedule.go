package adminverse

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"dailyverse/internal/api"
)

// Schedule is a batch of verses to publish, loaded from a YAML file. It lets
// an admin plan weeks of content in one editor session instead of one form
// at a time.
type Schedule struct {
	Verses []ScheduledVerse `yaml:"verses"`
}

// ScheduledVerse is one planned day.
type ScheduledVerse struct {
	Date        string   `yaml:"date"`
	ContentType string   `yaml:"content_type,omitempty"`
	Text        string   `yaml:"text"`
	Reference   string   `yaml:"reference,omitempty"`
	Context     string   `yaml:"context,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Draft       bool     `yaml:"draft,omitempty"`
}

// ParseSchedule decodes and validates a YAML schedule.
func ParseSchedule(data []byte) (*Schedule, error) {
	var s Schedule
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schedule: %w", err)
	}
	if len(s.Verses) == 0 {
		return nil, fmt.Errorf("schedule contains no verses")
	}

	seen := make(map[string]int)
	for i, v := range s.Verses {
		if _, err := time.Parse(api.DateFormat, v.Date); err != nil {
			return nil, fmt.Errorf("verse %d: invalid date %q (want YYYY-MM-DD)", i+1, v.Date)
		}
		if strings.TrimSpace(v.Text) == "" {
			return nil, fmt.Errorf("verse %d (%s): text is required", i+1, v.Date)
		}
		if prev, dup := seen[v.Date]; dup {
			return nil, fmt.Errorf("verse %d duplicates date %s (first used by verse %d)", i+1, v.Date, prev+1)
		}
		seen[v.Date] = i

		// Image verses need a file upload and can't be batch-scheduled.
		switch api.ContentType(v.ContentType) {
		case "", api.ContentText:
		default:
			return nil, fmt.Errorf("verse %d (%s): unsupported content type %q", i+1, v.Date, v.ContentType)
		}
	}

	sort.Slice(s.Verses, func(i, j int) bool { return s.Verses[i].Date < s.Verses[j].Date })
	return &s, nil
}

// Publisher creates verses on the server. *api.Client satisfies it.
type Publisher interface {
	CreateVerse(ctx context.Context, in api.VerseInput) (*api.Verse, error)
}

// ApplyResult reports what a schedule run did.
type ApplyResult struct {
	Created []string // dates created
	Failed  map[string]error
}

// Apply publishes every verse in the schedule. Failures are collected
// per-date rather than aborting the batch: a half-applied schedule can be
// rerun after removing the days that succeeded.
func (s *Schedule) Apply(ctx context.Context, pub Publisher) *ApplyResult {
	res := &ApplyResult{Failed: make(map[string]error)}
	for _, v := range s.Verses {
		in := api.VerseInput{
			Date:           v.Date,
			ContentType:    api.ContentText,
			VerseText:      v.Text,
			BibleReference: v.Reference,
			Context:        v.Context,
			Tags:           strings.Join(v.Tags, ","),
			Published:      !v.Draft,
		}
		if _, err := pub.CreateVerse(ctx, in); err != nil {
			res.Failed[v.Date] = err
			continue
		}
		res.Created = append(res.Created, v.Date)
	}
	return res
}
