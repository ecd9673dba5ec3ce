package adminverse

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dailyverse/internal/api"
)

const goodSchedule = `
verses:
  - date: 2026-09-03
    text: Be still, and know that I am God.
    reference: Psalm 46:10
    tags: [peace, trust]
  - date: 2026-09-02
    text: Give thanks in all circumstances.
    reference: 1 Thessalonians 5:18
    draft: true
`

func TestParseSchedule_SortsByDate(t *testing.T) {
	s, err := ParseSchedule([]byte(goodSchedule))
	if err != nil {
		t.Fatalf("ParseSchedule() error: %v", err)
	}

	var dates []string
	for _, v := range s.Verses {
		dates = append(dates, v.Date)
	}
	want := []string{"2026-09-02", "2026-09-03"}
	if diff := cmp.Diff(want, dates); diff != "" {
		t.Errorf("dates mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSchedule_Rejections(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"empty", "verses: []"},
		{"bad date", "verses:\n  - date: 09/02/2026\n    text: hi"},
		{"missing text", "verses:\n  - date: 2026-09-02\n    text: \"  \""},
		{"duplicate date", "verses:\n  - date: 2026-09-02\n    text: a\n  - date: 2026-09-02\n    text: b"},
		{"image type", "verses:\n  - date: 2026-09-02\n    text: a\n    content_type: image"},
		{"not yaml", "verses: {{"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseSchedule([]byte(tc.yaml)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

type fakePublisher struct {
	created []api.VerseInput
	failOn  string
}

func (p *fakePublisher) CreateVerse(ctx context.Context, in api.VerseInput) (*api.Verse, error) {
	if in.Date == p.failOn {
		return nil, errors.New("server said no")
	}
	p.created = append(p.created, in)
	return &api.Verse{Date: in.Date}, nil
}

func TestApply_PublishesAll(t *testing.T) {
	s, err := ParseSchedule([]byte(goodSchedule))
	if err != nil {
		t.Fatal(err)
	}

	pub := &fakePublisher{}
	res := s.Apply(context.Background(), pub)

	if len(res.Failed) != 0 {
		t.Errorf("unexpected failures: %v", res.Failed)
	}
	if diff := cmp.Diff([]string{"2026-09-02", "2026-09-03"}, res.Created); diff != "" {
		t.Errorf("created mismatch (-want +got):\n%s", diff)
	}

	// Draft flag maps to unpublished; tags join with commas.
	if pub.created[0].Published {
		t.Error("draft verse must be created unpublished")
	}
	if got := pub.created[1].Tags; got != "peace,trust" {
		t.Errorf("tags = %q", got)
	}
}

func TestApply_CollectsFailuresAndContinues(t *testing.T) {
	s, err := ParseSchedule([]byte(goodSchedule))
	if err != nil {
		t.Fatal(err)
	}

	pub := &fakePublisher{failOn: "2026-09-02"}
	res := s.Apply(context.Background(), pub)

	if len(res.Created) != 1 || res.Created[0] != "2026-09-03" {
		t.Errorf("Created = %v", res.Created)
	}
	if _, ok := res.Failed["2026-09-02"]; !ok {
		t.Error("missing failure for 2026-09-02")
	}
}
