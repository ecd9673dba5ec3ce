package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"dailyverse/cmd/dailyverse/config"
	"dailyverse/cmd/dailyverse/ui"
	"dailyverse/internal/analytics"
	"dailyverse/internal/api"
	"dailyverse/internal/devotion"
	"dailyverse/internal/engagement"
	"dailyverse/internal/localstate"
)

func testDeps(t *testing.T) appDeps {
	t.Helper()
	state, err := localstate.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ledger, err := engagement.NewLedger(state)
	if err != nil {
		t.Fatal(err)
	}
	tracker, err := analytics.NewTracker(t.TempDir(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	return appDeps{
		client:  api.New(api.DefaultConfig("http://127.0.0.1:0")),
		state:   state,
		ledger:  ledger,
		tracker: tracker,
		theme:   ui.DefaultStyles(),
		logger:  zap.NewNop(),
		cfg:     config.DefaultConfig(),
	}
}

func updated(t *testing.T, m tea.Model, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	am, ok := next.(appModel)
	if !ok {
		t.Fatalf("Update returned %T, want appModel", next)
	}
	return am
}

func TestApp_LoadFetchesVerseAndCommunityIndependently(t *testing.T) {
	var verseHits, communityHits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/verse":
			atomic.AddInt32(&verseHits, 1)
			w.WriteHeader(http.StatusBadGateway)
			fmt.Fprint(w, "upstream unavailable")
		case "/api/community":
			atomic.AddInt32(&communityHits, 1)
			fmt.Fprint(w, `{"success":true,"prayer_requests":[{"id":4,"content":"for healing","prayer_count":2}],"praise_reports":[]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	deps := testDeps(t)
	deps.client = api.New(api.DefaultConfig(srv.URL))
	m := newAppModel(deps)

	raw := m.loadVerse()()
	msg, ok := raw.(verseLoadedMsg)
	if !ok {
		t.Fatalf("loadVerse returned %T", raw)
	}

	if got := atomic.LoadInt32(&verseHits); got != 1 {
		t.Errorf("verse fetches per step = %d, want 1", got)
	}
	if got := atomic.LoadInt32(&communityHits); got != 1 {
		t.Errorf("community fetches per step = %d, want 1", got)
	}
	if msg.err == nil {
		t.Error("verse failure not reported")
	}
	if msg.community == nil || len(msg.community.PrayerRequests) != 1 {
		t.Fatalf("community payload dropped when verse fetch failed: %+v", msg.community)
	}

	got := updated(t, m, msg)
	if got.loadState != devotion.StateOffline {
		t.Errorf("loadState = %v, want offline", got.loadState)
	}
	if len(got.feed) != 1 {
		t.Errorf("feed length = %d, want the delivered community item", len(got.feed))
	}
}

func TestApp_VerseLoadedDisplays(t *testing.T) {
	m := newAppModel(testDeps(t))

	v := &api.Verse{ID: 3, Date: m.nav.CurrentDate(), VerseText: "Rejoice always.", Hearts: 4}
	got := updated(t, m, verseLoadedMsg{epoch: m.nav.Epoch(), verse: v})

	if got.loadState != devotion.StateDisplayed {
		t.Errorf("loadState = %v", got.loadState)
	}
	if got.hearts != 4 {
		t.Errorf("hearts = %d", got.hearts)
	}
	if len(got.ledger.RecentlyViewed()) != 1 {
		t.Error("view was not recorded")
	}
}

func TestApp_StaleResponseDiscarded(t *testing.T) {
	m := newAppModel(testDeps(t))
	staleEpoch := m.nav.Epoch()
	m.nav.NavigateDay(-1) // user moved on before the response landed

	got := updated(t, m, verseLoadedMsg{epoch: staleEpoch, verse: &api.Verse{ID: 9}})

	if got.loadState != devotion.StateLoading {
		t.Errorf("stale response overwrote state: %v", got.loadState)
	}
	if got.verse != nil {
		t.Error("stale verse applied")
	}
}

func TestApp_EmptyDay(t *testing.T) {
	m := newAppModel(testDeps(t))
	got := updated(t, m, verseLoadedMsg{epoch: m.nav.Epoch()})
	if got.loadState != devotion.StateEmpty {
		t.Errorf("loadState = %v, want empty", got.loadState)
	}
}

func TestApp_OfflineShowsMessage(t *testing.T) {
	m := newAppModel(testDeps(t))
	got := updated(t, m, verseLoadedMsg{epoch: m.nav.Epoch(), err: api.ErrOffline})
	if got.loadState != devotion.StateOffline {
		t.Errorf("loadState = %v, want offline", got.loadState)
	}
	if got.loadErr == "" {
		t.Error("offline state carries no message")
	}
}

func TestApp_ServerErrorShownVerbatim(t *testing.T) {
	m := newAppModel(testDeps(t))
	got := updated(t, m, verseLoadedMsg{
		epoch: m.nav.Epoch(),
		err:   &api.Error{Message: "Verse service is down for maintenance."},
	})
	if got.loadErr != "Verse service is down for maintenance." {
		t.Errorf("loadErr = %q", got.loadErr)
	}
}

func TestApp_HeartErrorKeepsServerCount(t *testing.T) {
	m := newAppModel(testDeps(t))
	m = updated(t, m, verseLoadedMsg{
		epoch: m.nav.Epoch(),
		verse: &api.Verse{ID: 3, Date: m.nav.CurrentDate(), Hearts: 4},
	})
	m.heartBusy = true

	got := updated(t, m, heartResultMsg{verseID: 3, err: errors.New("boom")})
	if got.hearts != 4 {
		t.Errorf("hearts = %d, count must stay at the server value", got.hearts)
	}
	if got.heartBusy {
		t.Error("animation lock not released")
	}
}

func TestApp_HeartResultUpdatesCount(t *testing.T) {
	m := newAppModel(testDeps(t))
	m = updated(t, m, verseLoadedMsg{
		epoch: m.nav.Epoch(),
		verse: &api.Verse{ID: 3, Date: m.nav.CurrentDate(), Hearts: 4},
	})

	got := updated(t, m, heartResultMsg{verseID: 3, count: 5})
	if got.hearts != 5 {
		t.Errorf("hearts = %d, want 5", got.hearts)
	}
}

func TestBuildFeed_FlattensBothKinds(t *testing.T) {
	feed := buildFeed(&api.Community{
		PrayerRequests: []api.PrayerRequest{{ID: 1, Content: "for healing", PrayerCount: 2}},
		PraiseReports:  []api.PraiseReport{{ID: 7, Content: "a new job", CelebrationCount: 9}},
	})
	if len(feed) != 2 {
		t.Fatalf("len(feed) = %d", len(feed))
	}
	if feed[0].kind != submitPrayer || feed[0].count != 2 {
		t.Errorf("feed[0] = %+v", feed[0])
	}
	if feed[1].kind != submitPraise || feed[1].id != 7 {
		t.Errorf("feed[1] = %+v", feed[1])
	}
	if buildFeed(nil) != nil {
		t.Error("nil community must yield nil feed")
	}
}

func TestApp_TextSizeClampsAtEnds(t *testing.T) {
	m := newAppModel(testDeps(t))
	m.textSize = "large"

	next, _ := m.cycleTextSize(+1)
	if got := next.(appModel).textSize; got != "large" {
		t.Errorf("textSize = %q, want clamp at large", got)
	}

	m.textSize = "small"
	next, _ = m.cycleTextSize(-1)
	if got := next.(appModel).textSize; got != "small" {
		t.Errorf("textSize = %q, want clamp at small", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("0123456789", 5); got != "0123…" {
		t.Errorf("truncate = %q", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := userMessage(api.ErrOffline); got != "Unable to connect. Please check your internet connection." {
		t.Errorf("offline message = %q", got)
	}
	if got := userMessage(&api.Error{Message: "No."}); got != "No." {
		t.Errorf("api error message = %q", got)
	}
}
