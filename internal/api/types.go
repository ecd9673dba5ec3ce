package api

// ContentType distinguishes text verses from uploaded image verses.
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
)

// DateFormat is the calendar-day format used by every dated endpoint.
const DateFormat = "2006-01-02"

// Verse is a dated devotional content unit, one per calendar day.
type Verse struct {
	ID             int         `json:"id"`
	Date           string      `json:"date"`
	ContentType    ContentType `json:"content_type"`
	VerseText      string      `json:"verse_text"`
	BibleReference string      `json:"bible_reference"`
	Context        string      `json:"context,omitempty"`
	Tags           string      `json:"tags,omitempty"`
	Published      bool        `json:"published"`
	Hearts         int         `json:"hearts"`
	ImagePath      string      `json:"image_path,omitempty"`
	Personalized   bool        `json:"personalized,omitempty"`
	Reason         string      `json:"reason,omitempty"`
}

// PrayerRequest is an anonymous community submission asking for prayer.
type PrayerRequest struct {
	ID          int    `json:"id"`
	Date        string `json:"date"`
	Content     string `json:"content"`
	CreatedAt   string `json:"created_at"`
	IsApproved  bool   `json:"is_approved"`
	IsHidden    bool   `json:"is_hidden"`
	PrayerCount int    `json:"prayer_count"`
	// Server-assigned, present only in the admin moderation feed.
	IPAddress string `json:"ip_address,omitempty"`
}

// PraiseReport is an anonymous community submission celebrating an answer.
type PraiseReport struct {
	ID               int    `json:"id"`
	Date             string `json:"date"`
	Content          string `json:"content"`
	CreatedAt        string `json:"created_at"`
	IsApproved       bool   `json:"is_approved"`
	IsHidden         bool   `json:"is_hidden"`
	CelebrationCount int    `json:"celebration_count"`
	IPAddress        string `json:"ip_address,omitempty"`
}

// Community bundles both submission kinds for a calendar day.
type Community struct {
	PrayerRequests []PrayerRequest `json:"prayer_requests"`
	PraiseReports  []PraiseReport  `json:"praise_reports"`
}

// User mirrors the authenticated account the server owns.
type User struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName"`

	// Personalization attributes collected during onboarding.
	LifeStage            string   `json:"lifeStage,omitempty"`
	Interests            []string `json:"interests,omitempty"`
	Struggles            []string `json:"struggles,omitempty"`
	PrayerFrequency      string   `json:"prayerFrequency,omitempty"`
	PreferredTranslation string   `json:"preferredTranslation,omitempty"`
}

// AnalyticsSummary is the admin dashboard roll-up.
type AnalyticsSummary struct {
	TotalViews     int            `json:"total_views"`
	TotalHearts    int            `json:"total_hearts"`
	TotalShares    int            `json:"total_shares"`
	UniqueVisitors int            `json:"unique_visitors"`
	EventsByType   map[string]int `json:"events_by_type,omitempty"`
	TopVerses      []Verse        `json:"top_verses,omitempty"`
}
