// This file implements the public reader interface using bubbletea.
package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dailyverse/cmd/dailyverse/config"
	"dailyverse/cmd/dailyverse/ui"
	"dailyverse/internal/analytics"
	"dailyverse/internal/api"
	"dailyverse/internal/devotion"
	"dailyverse/internal/engagement"
	"dailyverse/internal/gesture"
	"dailyverse/internal/localstate"
	"dailyverse/internal/share"
	"dailyverse/internal/store"
)

// viewMode selects which screen the reader is on.
type viewMode int

const (
	modeVerse viewMode = iota
	modeSubmit
	modeShare
)

// submitKind selects what the submission form creates.
type submitKind int

const (
	submitPrayer submitKind = iota
	submitPraise
)

// Terminal cells are roughly 8x16 px at common font sizes; the gesture
// thresholds are calibrated in pixels, so mouse coordinates are scaled up.
const (
	cellWidthPx  = 8
	cellHeightPx = 16
)

// communityItem is one row of the community feed under the verse.
type communityItem struct {
	kind    submitKind
	id      int
	content string
	count   int
}

// appModel is the bubbletea model for the reader interface.
type appModel struct {
	// UI components
	styles   ui.Styles
	renderer *glamour.TermRenderer
	spinner  spinner.Model
	textarea textarea.Model

	// Backend
	client   *api.Client
	cache    *store.VerseCache
	state    *localstate.Store
	ledger   *engagement.Ledger
	nav      *devotion.Navigator
	tracker  *analytics.Tracker
	gestures *gesture.Tracker
	logger   *zap.Logger
	cfg      config.Config

	// Verse state
	loadState devotion.LoadState
	verse     *api.Verse
	feed      []communityItem
	selected  int
	fromCache bool
	isRandom  bool
	loadErr   string

	// Heart state. Hearts are server-authoritative: the count on screen is
	// always the last one the server returned. heartBusy is an animation
	// lock, not a network debounce.
	heartBusy bool
	hearts    int

	// Presentation state
	mode       viewMode
	submitting submitKind
	textSize   string
	dark       bool
	qr         string
	statusMsg  string
	width      int
	height     int
	ready      bool
}

// Messages for tea updates.
type (
	verseLoadedMsg struct {
		epoch     uint64
		verse     *api.Verse
		community *api.Community
		fromCache bool
		isRandom  bool
		err       error
	}
	heartResultMsg struct {
		verseID int
		count   int
		err     error
	}
	markResultMsg struct {
		kind  submitKind
		id    int
		count int
		err   error
	}
	submitResultMsg struct {
		kind submitKind
		err  error
	}
	statusClearMsg struct{}
)

// appDeps bundles everything the models need, built once in main.go.
type appDeps struct {
	client  *api.Client
	cache   *store.VerseCache
	state   *localstate.Store
	ledger  *engagement.Ledger
	tracker *analytics.Tracker
	theme   ui.Styles
	logger  *zap.Logger
	cfg     config.Config
}

func newAppModel(deps appDeps) appModel {
	dark := deps.state.Theme() == "dark"
	styles := deps.theme

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	ta := textarea.New()
	ta.CharLimit = api.MaxSubmissionLength
	ta.SetWidth(60)
	ta.SetHeight(5)

	return appModel{
		styles:    styles,
		renderer:  newRenderer(dark),
		spinner:   sp,
		textarea:  ta,
		client:    deps.client,
		cache:     deps.cache,
		state:     deps.state,
		ledger:    deps.ledger,
		nav:       devotion.NewNavigator(),
		tracker:   deps.tracker,
		gestures:  gesture.NewTracker(),
		logger:    deps.logger,
		cfg:       deps.cfg,
		loadState: devotion.StateLoading,
		textSize:  deps.state.TextSize(),
		dark:      dark,
		selected:  -1,
	}
}

func newRenderer(dark bool) *glamour.TermRenderer {
	style := "light"
	if dark {
		style = "dark"
	}
	r, _ := glamour.NewTermRenderer(glamour.WithStylePath(style), glamour.WithWordWrap(72))
	return r
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadVerse(),
	)
}

// loadVerse fetches the current day's verse and community feed, one request
// each, with neither side blocking the other: a verse failure still delivers
// the feed and a feed failure still delivers the verse. The epoch captured at
// dispatch time lets Update drop responses that arrive after the user has
// already navigated elsewhere.
func (m appModel) loadVerse() tea.Cmd {
	epoch := m.nav.Epoch()
	date := m.nav.CurrentDate()
	client := m.client
	cache := m.cache
	logger := m.logger

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		msg := verseLoadedMsg{epoch: epoch}
		var g errgroup.Group
		g.Go(func() error {
			verse, err := client.VerseForDate(ctx, date)
			if err != nil {
				if errors.Is(err, api.ErrOffline) && cache != nil {
					if cached, ok, cerr := cache.Get(date); cerr == nil && ok {
						msg.verse = cached
						msg.fromCache = true
						return nil
					}
				}
				msg.err = err
				return nil
			}
			msg.verse = verse
			if verse != nil && cache != nil {
				if cerr := cache.Put(verse); cerr != nil {
					logger.Warn("verse cache write failed", zap.Error(cerr))
				}
			}
			return nil
		})
		g.Go(func() error {
			// Feed failures are swallowed; the verse never waits on them.
			if c, cerr := client.CommunityForDate(ctx, date); cerr == nil {
				msg.community = c
			}
			return nil
		})
		_ = g.Wait()
		return msg
	}
}

// loadRandom fetches a random verse outside date navigation.
func (m appModel) loadRandom() tea.Cmd {
	epoch := m.nav.Epoch()
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		verse, err := client.RandomVerse(ctx)
		return verseLoadedMsg{epoch: epoch, verse: verse, isRandom: true, err: err}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case verseLoadedMsg:
		return m.handleVerseLoaded(msg)

	case heartResultMsg:
		m.heartBusy = false
		if m.verse == nil || m.verse.ID != msg.verseID {
			return m, nil
		}
		if msg.err != nil {
			return m.flashStatus(userMessage(msg.err))
		}
		m.hearts = msg.count
		m.verse.Hearts = msg.count
		return m, nil

	case markResultMsg:
		return m.handleMarkResult(msg)

	case submitResultMsg:
		if msg.err != nil {
			return m.flashStatus(userMessage(msg.err))
		}
		m.mode = modeVerse
		m.textarea.Reset()
		m.tracker.Track(context.Background(), analytics.EventSubmission, m.verseID())
		if msg.kind == submitPrayer {
			return m.flashStatus("Prayer request submitted for review")
		}
		return m.flashStatus("Praise report submitted for review")

	case statusClearMsg:
		m.statusMsg = ""
		return m, nil

	case themeReloadedMsg:
		m.styles = ui.NewStyles(msg.theme, m.dark)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleVerseLoaded(msg verseLoadedMsg) (tea.Model, tea.Cmd) {
	if m.nav.Stale(msg.epoch) {
		return m, nil
	}

	m.fromCache = msg.fromCache
	m.isRandom = msg.isRandom
	m.feed = buildFeed(msg.community)
	m.selected = -1
	if len(m.feed) > 0 {
		m.selected = 0
	}

	switch {
	case msg.err != nil:
		m.loadState = devotion.StateOffline
		m.verse = nil
		m.loadErr = userMessage(msg.err)
	case msg.verse == nil:
		m.loadState = devotion.StateEmpty
		m.verse = nil
	default:
		m.loadState = devotion.StateDisplayed
		m.verse = msg.verse
		m.heartBusy = false
		m.hearts = msg.verse.Hearts
		if err := m.ledger.RecordView(engagement.RecentVerse{
			VerseID:   msg.verse.ID,
			Date:      msg.verse.Date,
			Reference: msg.verse.BibleReference,
			ViewedAt:  time.Now(),
		}); err != nil {
			m.logger.Warn("failed to record view", zap.Error(err))
		}
		m.tracker.Track(context.Background(), analytics.EventVerseViewed, msg.verse.ID)
	}
	return m, nil
}

func buildFeed(c *api.Community) []communityItem {
	if c == nil {
		return nil
	}
	var feed []communityItem
	for _, r := range c.PrayerRequests {
		feed = append(feed, communityItem{kind: submitPrayer, id: r.ID, content: r.Content, count: r.PrayerCount})
	}
	for _, r := range c.PraiseReports {
		feed = append(feed, communityItem{kind: submitPraise, id: r.ID, content: r.Content, count: r.CelebrationCount})
	}
	return feed
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The submission form owns the keyboard while focused; only escape and
	// ctrl+d (send) are routed around it.
	if m.mode == modeSubmit {
		switch msg.Type {
		case tea.KeyEsc:
			m.mode = modeVerse
			m.textarea.Reset()
			return m, nil
		case tea.KeyCtrlD:
			return m, m.submit()
		case tea.KeyCtrlC:
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}

	if m.mode == modeShare {
		// Any key dismisses the QR screen.
		m.mode = modeVerse
		m.qr = ""
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "left":
		return m.navigate(-1)
	case "right":
		return m.navigate(+1)
	case "t":
		m.nav.GoToToday()
		m.loadState = devotion.StateLoading
		return m, tea.Batch(m.loadVerse(), m.spinner.Tick)
	case " ":
		m.loadState = devotion.StateLoading
		return m, tea.Batch(m.loadRandom(), m.spinner.Tick)
	case "r":
		m.loadState = devotion.StateLoading
		return m, tea.Batch(m.loadVerse(), m.spinner.Tick)

	case "h":
		return m.heart()
	case "f":
		return m.favorite()
	case "j", "down":
		if m.selected >= 0 && m.selected < len(m.feed)-1 {
			m.selected++
		}
		return m, nil
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "p":
		return m.markSelected(submitPrayer)
	case "c":
		return m.markSelected(submitPraise)

	case "n":
		return m.openSubmit(submitPrayer)
	case "N":
		return m.openSubmit(submitPraise)

	case "s":
		return m.share()

	case "d":
		return m.toggleDark()
	case "+", "=":
		return m.cycleTextSize(+1)
	case "-":
		return m.cycleTextSize(-1)
	}

	return m, nil
}

func (m appModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x := msg.X * cellWidthPx
	y := msg.Y * cellHeightPx

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			// The verse panel does not scroll, so the gesture origin always
			// counts as scroll top for pull-to-refresh.
			m.gestures.SetScrollTop(true)
			m.gestures.Begin(x, y)
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.gestures.Move(x, y) == gesture.KindPullRefresh {
			m.loadState = devotion.StateLoading
			return m, tea.Batch(m.loadVerse(), m.spinner.Tick)
		}
		return m, nil

	case tea.MouseActionRelease:
		switch m.gestures.End(x, y) {
		case gesture.KindSwipeLeft:
			return m.navigate(+1)
		case gesture.KindSwipeRight:
			return m.navigate(-1)
		case gesture.KindSwipeUp:
			return m.cycleTextSize(+1)
		case gesture.KindSwipeDown:
			return m.cycleTextSize(-1)
		case gesture.KindDoubleTap:
			return m.favorite()
		case gesture.KindLongPress:
			return m.share()
		}
	}
	return m, nil
}

func (m appModel) navigate(direction int) (tea.Model, tea.Cmd) {
	if _, ok := m.nav.NavigateDay(direction); !ok {
		// Out-of-window navigation rings the bell and touches nothing else.
		return m, tea.Printf("\a")
	}
	m.loadState = devotion.StateLoading
	m.tracker.Track(context.Background(), analytics.EventDayNavigated, 0)
	return m, tea.Batch(m.loadVerse(), m.spinner.Tick)
}

// heart sends the heart and displays whatever count the server returns.
// heartBusy only suppresses double-taps while the request is in flight.
func (m appModel) heart() (tea.Model, tea.Cmd) {
	if m.verse == nil || m.heartBusy {
		return m, nil
	}
	m.heartBusy = true
	m.tracker.Track(context.Background(), analytics.EventHeartTapped, m.verse.ID)

	client := m.client
	id := m.verse.ID
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		count, err := client.Heart(ctx, id)
		return heartResultMsg{verseID: id, count: count, err: err}
	}
}

// favorite flips the local favorite flag. Favorites never touch the server.
func (m appModel) favorite() (tea.Model, tea.Cmd) {
	if m.verse == nil {
		return m, nil
	}
	added, err := m.ledger.ToggleFavorite(m.verse.ID)
	if err != nil {
		return m.flashStatus("Could not save favorite")
	}
	m.tracker.Track(context.Background(), analytics.EventVerseFavorited, m.verse.ID)
	if added {
		return m.flashStatus("Added to favorites")
	}
	return m.flashStatus("Removed from favorites")
}

// markSelected records "I prayed" / "celebrate" for the highlighted feed
// item. The local flag is set only after the server confirms, so a failed
// call can be retried.
func (m appModel) markSelected(kind submitKind) (tea.Model, tea.Cmd) {
	if m.selected < 0 || m.selected >= len(m.feed) {
		return m, nil
	}
	item := m.feed[m.selected]
	if item.kind != kind {
		return m, nil
	}
	if kind == submitPrayer && m.ledger.HasPrayed(item.id) {
		return m.flashStatus("Already prayed for this request")
	}
	if kind == submitPraise && m.ledger.HasCelebrated(item.id) {
		return m.flashStatus("Already celebrated this report")
	}

	client := m.client
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		var count int
		var err error
		if kind == submitPrayer {
			count, err = client.Pray(ctx, item.id)
		} else {
			count, err = client.Celebrate(ctx, item.id)
		}
		return markResultMsg{kind: kind, id: item.id, count: count, err: err}
	}
}

func (m appModel) handleMarkResult(msg markResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.flashStatus(userMessage(msg.err))
	}
	if msg.kind == submitPrayer {
		if err := m.ledger.MarkPrayed(msg.id); err != nil {
			m.logger.Warn("failed to persist prayed mark", zap.Error(err))
		}
		m.tracker.Track(context.Background(), analytics.EventPrayed, msg.id)
	} else {
		if err := m.ledger.MarkCelebrated(msg.id); err != nil {
			m.logger.Warn("failed to persist celebrated mark", zap.Error(err))
		}
		m.tracker.Track(context.Background(), analytics.EventCelebrated, msg.id)
	}
	for i := range m.feed {
		if m.feed[i].kind == msg.kind && m.feed[i].id == msg.id {
			m.feed[i].count = msg.count
		}
	}
	return m, nil
}

func (m appModel) openSubmit(kind submitKind) (tea.Model, tea.Cmd) {
	m.mode = modeSubmit
	m.submitting = kind
	if kind == submitPrayer {
		m.textarea.Placeholder = "Share your prayer request..."
	} else {
		m.textarea.Placeholder = "Share what God has done..."
	}
	m.textarea.Focus()
	return m, textarea.Blink
}

func (m appModel) submit() tea.Cmd {
	text := strings.TrimSpace(m.textarea.Value())
	if text == "" {
		return nil
	}
	kind := m.submitting
	date := m.nav.CurrentDate()
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		var err error
		if kind == submitPrayer {
			err = client.SubmitPrayerRequest(ctx, date, text)
		} else {
			err = client.SubmitPraiseReport(ctx, date, text)
		}
		return submitResultMsg{kind: kind, err: err}
	}
}

func (m appModel) share() (tea.Model, tea.Cmd) {
	if m.verse == nil {
		return m, nil
	}
	qr, err := share.QR(m.verse, m.cfg.Share())
	if err != nil {
		return m.flashStatus("Could not build share code")
	}
	m.qr = qr
	m.mode = modeShare
	m.tracker.Track(context.Background(), analytics.EventVerseShared, m.verse.ID)
	return m, nil
}

func (m appModel) toggleDark() (tea.Model, tea.Cmd) {
	m.dark = !m.dark
	m.styles = ui.NewStyles(m.styles.Brand, m.dark)
	m.renderer = newRenderer(m.dark)
	name := "light"
	if m.dark {
		name = "dark"
	}
	if err := m.state.SetTheme(name); err != nil {
		m.logger.Warn("failed to persist theme", zap.Error(err))
	}
	m.tracker.Track(context.Background(), analytics.EventThemeToggled, m.verseID())
	return m, nil
}

var textSizes = []string{"small", "medium", "large"}

func (m appModel) cycleTextSize(direction int) (tea.Model, tea.Cmd) {
	idx := 1
	for i, s := range textSizes {
		if s == m.textSize {
			idx = i
		}
	}
	idx += direction
	if idx < 0 || idx >= len(textSizes) {
		return m, nil
	}
	m.textSize = textSizes[idx]
	if err := m.state.SetTextSize(m.textSize); err != nil {
		m.logger.Warn("failed to persist text size", zap.Error(err))
	}
	m.tracker.Track(context.Background(), analytics.EventTextSize, m.verseID())
	return m.flashStatus("Text size: " + m.textSize)
}

func (m appModel) flashStatus(text string) (tea.Model, tea.Cmd) {
	m.statusMsg = text
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return statusClearMsg{} })
}

func (m appModel) verseID() int {
	if m.verse == nil {
		return 0
	}
	return m.verse.ID
}

// userMessage maps an error to the line shown in the status area.
func userMessage(err error) string {
	if errors.Is(err, api.ErrOffline) {
		return "Unable to connect. Please check your internet connection."
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// contentWidth maps the text size preference to a wrap width.
func (m appModel) contentWidth() int {
	w := 72
	switch m.textSize {
	case "small":
		w = 56
	case "large":
		w = 88
	}
	if m.width > 0 && w > m.width-6 {
		w = m.width - 6
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m appModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.mode {
	case modeSubmit:
		return m.submitView()
	case modeShare:
		return m.shareView()
	}
	return m.verseView()
}

func (m appModel) verseView() string {
	var b strings.Builder

	title := " Daily Verse · "
	if m.isRandom {
		title += "random "
	} else {
		date, _ := time.Parse(api.DateFormat, m.nav.CurrentDate())
		title += date.Format("Monday, January 2") + " "
	}
	b.WriteString(m.styles.Header.Render(title))
	b.WriteString("\n\n")

	switch m.loadState {
	case devotion.StateLoading:
		b.WriteString(m.spinner.View() + " " + m.styles.Muted.Render("Loading..."))

	case devotion.StateEmpty:
		b.WriteString(m.styles.Card.Width(m.contentWidth()).Render(
			m.styles.Muted.Render("No verse has been posted for this day yet.\nCheck back soon!")))

	case devotion.StateOffline:
		b.WriteString(m.styles.Card.Width(m.contentWidth()).Render(
			m.styles.Error.Render("You're offline") + "\n\n" +
				m.styles.Body.Render(m.loadErr) + "\n\n" +
				m.styles.Muted.Render("Press r to try again")))

	case devotion.StateDisplayed:
		b.WriteString(m.renderVerse())
	}

	// The community feed stands on its own: it renders whenever the fetch
	// succeeded, even when the verse side failed or the day is empty.
	if m.loadState != devotion.StateLoading {
		if section := m.renderFeed(); section != "" {
			b.WriteString("\n\n")
			b.WriteString(section)
		}
	}

	b.WriteString("\n\n")
	if m.statusMsg != "" {
		b.WriteString(m.styles.Success.Render(m.statusMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Footer.Render(m.footerHints()))
	return b.String()
}

func (m appModel) renderVerse() string {
	v := m.verse
	var card strings.Builder

	if m.fromCache {
		card.WriteString(m.styles.Offline.Render("offline copy") + "\n\n")
	}

	if v.ContentType == api.ContentImage {
		card.WriteString(m.styles.Muted.Render("[image verse]") + "\n")
		if v.ImagePath != "" {
			card.WriteString(m.styles.Muted.Render(v.ImagePath) + "\n")
		}
	}
	if v.VerseText != "" {
		card.WriteString(m.styles.Body.Width(m.contentWidth() - 6).Render(v.VerseText))
		card.WriteString("\n\n")
	}
	if v.BibleReference != "" {
		card.WriteString(m.styles.Reference.Render(v.BibleReference))
		card.WriteString("\n")
	}
	if v.Context != "" && m.renderer != nil {
		if out, err := m.renderer.Render(v.Context); err == nil {
			card.WriteString(out)
		}
	}

	var badges []string
	heart := "♡"
	if m.heartBusy {
		heart = "♥"
	}
	badges = append(badges, m.styles.Heart.Render(fmt.Sprintf("%s %d", heart, m.hearts)))
	if m.ledger.IsFavorite(v.ID) {
		badges = append(badges, m.styles.Warning.Render("★ favorite"))
	}
	card.WriteString("\n" + strings.Join(badges, "  "))

	return m.styles.Card.Width(m.contentWidth()).Render(card.String())
}

func (m appModel) renderFeed() string {
	if len(m.feed) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Community"))
	b.WriteString("\n")
	for i, item := range m.feed {
		label := "🙏"
		verb := "prayed"
		done := m.ledger.HasPrayed(item.id)
		if item.kind == submitPraise {
			label = "🎉"
			verb = "celebrated"
			done = m.ledger.HasCelebrated(item.id)
		}
		check := ""
		if done {
			check = "✓ "
		}
		line := fmt.Sprintf("%s %s  %s(%d %s)", label, truncate(item.content, 60), check, item.count, verb)
		if i == m.selected {
			b.WriteString(m.styles.Selected.Render(line))
		} else {
			b.WriteString(m.styles.Body.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func (m appModel) submitView() string {
	label := "Prayer Request"
	if m.submitting == submitPraise {
		label = "Praise Report"
	}
	remaining := api.MaxSubmissionLength - len([]rune(m.textarea.Value()))

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(" New " + label + " "))
	b.WriteString("\n\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n")
	counter := fmt.Sprintf("%d characters left", remaining)
	if remaining < 0 {
		b.WriteString(m.styles.Error.Render(counter))
	} else {
		b.WriteString(m.styles.Muted.Render(counter))
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("ctrl+d send · esc cancel"))
	return b.String()
}

func (m appModel) shareView() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(" Share this verse "))
	b.WriteString("\n\n")
	b.WriteString(m.qr)
	b.WriteString("\n")
	b.WriteString(m.styles.Body.Render(share.Text(m.verse, m.cfg.Share())))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("press any key to go back"))
	return b.String()
}

func (m appModel) footerHints() string {
	hints := []string{
		"←/→ days", "t today", "space random", "h heart", "f favorite",
		"j/k feed", "p pray", "c celebrate", "n request", "s share", "q quit",
	}
	return strings.Join(hints, " · ")
}
