// This file implements the admin dashboard interface using bubbletea.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"dailyverse/cmd/dailyverse/ui"
	"dailyverse/internal/adminverse"
	"dailyverse/internal/api"
	"dailyverse/internal/brand"
	"dailyverse/internal/session"
)

// adminScreen selects which dashboard page is shown.
type adminScreen int

const (
	screenLogin adminScreen = iota
	screenVerses
	screenForm
	screenModeration
	screenAnalytics
	screenTheme
)

// moderationItem flattens both submission kinds into one reviewable feed.
type moderationItem struct {
	kind     api.SubmissionKind
	id       int
	date     string
	content  string
	approved bool
	hidden   bool
	ip       string
}

// formField indexes the verse form inputs.
const (
	fieldDate = iota
	fieldText
	fieldReference
	fieldContext
	fieldTags
	fieldImage
	fieldCount
)

// adminModel is the bubbletea model for the admin dashboard.
type adminModel struct {
	styles  ui.Styles
	spinner spinner.Model

	client *api.Client
	mirror *session.Mirror
	brand  *brand.Editor
	logger *zap.Logger

	screen  adminScreen
	loading bool
	status  string
	errLine string
	width   int
	height  int
	ready   bool

	// Login
	password textinput.Model

	// Verse list
	verses    []api.Verse
	filtered  []api.Verse
	filters   adminverse.FilterState
	search    textinput.Model
	searchGen int
	selected  int

	// Verse form
	editing    *api.Verse // nil = creating
	inputs     [fieldCount]textinput.Model
	formText   textarea.Model
	focusIdx   int
	published  bool
	confirmDel bool

	// Moderation
	feed        []moderationItem
	feedSel     int
	confirmFeed bool

	// Analytics
	summary *api.AnalyticsSummary

	// Theme editor
	themeFields []string
	themeSel    int
	themeValue  textinput.Model
	themeEdit   bool
}

// Admin messages.
type (
	adminSessionMsg struct {
		authed bool
		err    error
	}
	adminLoginMsg struct{ err error }
	versesMsg     struct {
		verses []api.Verse
		err    error
	}
	verseSavedMsg struct {
		verse *api.Verse
		err   error
	}
	verseDeletedMsg struct {
		id  int
		err error
	}
	moderationMsg struct {
		community *api.Community
		err       error
	}
	moderatedMsg struct{ err error }
	analyticsMsg struct {
		summary *api.AnalyticsSummary
		err     error
	}
	searchDebounceMsg struct{ gen int }
	imageGeneratedMsg struct {
		path string
		err  error
	}
	themeSavedMsg struct {
		theme brand.Theme
		err   error
	}
)

func newAdminModel(deps appDeps, mirror *session.Mirror, editor *brand.Editor) adminModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = deps.theme.Spinner

	pw := textinput.New()
	pw.Placeholder = "Admin password"
	pw.EchoMode = textinput.EchoPassword
	pw.Focus()

	search := textinput.New()
	search.Placeholder = "Search verses..."
	search.CharLimit = 120

	var inputs [fieldCount]textinput.Model
	labels := [fieldCount]string{"2026-01-02", "", "John 3:16", "", "hope, love", "/path/to/verse.png (optional)"}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = labels[i]
	}

	formText := textarea.New()
	formText.Placeholder = "Verse text..."
	formText.SetWidth(60)
	formText.SetHeight(4)

	tv := textinput.New()
	tv.Placeholder = "#2d5a87"
	tv.CharLimit = 7

	return adminModel{
		styles:      deps.theme,
		spinner:     sp,
		client:      deps.client,
		mirror:      mirror,
		brand:       editor,
		logger:      deps.logger,
		screen:      screenLogin,
		loading:     true,
		password:    pw,
		search:      search,
		filters:     adminverse.NewFilterState(),
		inputs:      inputs,
		formText:    formText,
		themeFields: brand.Fields(),
		themeValue:  tv,
		selected:    -1,
	}
}

func (m adminModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.checkSession())
}

// checkSession asks the server whether the cookie jar already carries a
// valid admin session.
func (m adminModel) checkSession() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		authed, err := client.AdminCheck(ctx)
		return adminSessionMsg{authed: authed, err: err}
	}
}

func (m adminModel) loadVerses() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		verses, err := client.AdminVerses(ctx)
		return versesMsg{verses: verses, err: err}
	}
}

func (m adminModel) loadModeration() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		community, err := client.AdminCommunity(ctx)
		return moderationMsg{community: community, err: err}
	}
}

func (m adminModel) loadAnalytics() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		summary, err := client.AdminAnalytics(ctx)
		return analyticsMsg{summary: summary, err: err}
	}
}

func (m adminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case adminSessionMsg:
		m.loading = false
		if msg.err == nil && msg.authed {
			m.screen = screenVerses
			m.loading = true
			return m, tea.Batch(m.loadVerses(), m.spinner.Tick)
		}
		m.screen = screenLogin
		return m, textinput.Blink

	case adminLoginMsg:
		m.loading = false
		if msg.err != nil {
			m.errLine = userMessage(msg.err)
			return m, nil
		}
		if err := m.mirror.SignInAdmin(); err != nil {
			m.logger.Warn("failed to mirror admin session", zap.Error(err))
		}
		m.errLine = ""
		m.password.Reset()
		m.screen = screenVerses
		m.loading = true
		return m, tea.Batch(m.loadVerses(), m.spinner.Tick)

	case versesMsg:
		m.loading = false
		if msg.err != nil {
			m.errLine = userMessage(msg.err)
			return m, nil
		}
		m.errLine = ""
		m.verses = msg.verses
		m.applyFilters()
		return m, nil

	case verseSavedMsg:
		m.loading = false
		if msg.err != nil {
			m.errLine = userMessage(msg.err)
			return m, nil
		}
		m.status = "Verse saved"
		m.screen = screenVerses
		m.loading = true
		return m, tea.Batch(m.loadVerses(), m.spinner.Tick)

	case verseDeletedMsg:
		m.loading = false
		if msg.err != nil {
			m.errLine = userMessage(msg.err)
			return m, nil
		}
		m.status = "Verse deleted"
		m.loading = true
		return m, tea.Batch(m.loadVerses(), m.spinner.Tick)

	case imageGeneratedMsg:
		m.loading = false
		if msg.err != nil {
			m.errLine = userMessage(msg.err)
			return m, nil
		}
		m.status = "Share image ready: " + msg.path
		return m, nil

	case moderationMsg:
		m.loading = false
		if msg.err != nil {
			m.errLine = userMessage(msg.err)
			return m, nil
		}
		m.errLine = ""
		m.feed = buildModerationFeed(msg.community)
		if m.feedSel >= len(m.feed) {
			m.feedSel = len(m.feed) - 1
		}
		if m.feedSel < 0 && len(m.feed) > 0 {
			m.feedSel = 0
		}
		return m, nil

	case moderatedMsg:
		if msg.err != nil {
			m.errLine = userMessage(msg.err)
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.loadModeration(), m.spinner.Tick)

	case analyticsMsg:
		m.loading = false
		if msg.err != nil {
			m.errLine = userMessage(msg.err)
			return m, nil
		}
		m.errLine = ""
		m.summary = msg.summary
		return m, nil

	case searchDebounceMsg:
		// Stale ticks from earlier keystrokes are ignored.
		if msg.gen == m.searchGen {
			m.filters.Search = m.search.Value()
			m.applyFilters()
		}
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			m.errLine = userMessage(msg.err)
			return m, nil
		}
		m.styles = ui.NewStyles(msg.theme, m.styles.Dark)
		m.status = "Theme updated"
		return m, nil

	case themeReloadedMsg:
		m.styles = ui.NewStyles(msg.theme, m.styles.Dark)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *adminModel) applyFilters() {
	m.filtered = m.filters.Apply(m.verses)
	if m.selected >= len(m.filtered) {
		m.selected = len(m.filtered) - 1
	}
	if m.selected < 0 && len(m.filtered) > 0 {
		m.selected = 0
	}
}

func buildModerationFeed(c *api.Community) []moderationItem {
	if c == nil {
		return nil
	}
	var feed []moderationItem
	for _, r := range c.PrayerRequests {
		feed = append(feed, moderationItem{
			kind: api.KindPrayerRequest, id: r.ID, date: r.Date,
			content: r.Content, approved: r.IsApproved, hidden: r.IsHidden, ip: r.IPAddress,
		})
	}
	for _, r := range c.PraiseReports {
		feed = append(feed, moderationItem{
			kind: api.KindPraiseReport, id: r.ID, date: r.Date,
			content: r.Content, approved: r.IsApproved, hidden: r.IsHidden, ip: r.IPAddress,
		})
	}
	return feed
}

func (m adminModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.screen {
	case screenLogin:
		return m.handleLoginKey(msg)
	case screenVerses:
		return m.handleListKey(msg)
	case screenForm:
		return m.handleFormKey(msg)
	case screenModeration:
		return m.handleModerationKey(msg)
	case screenAnalytics:
		return m.handleAnalyticsKey(msg)
	case screenTheme:
		return m.handleThemeKey(msg)
	}
	return m, nil
}

func (m adminModel) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		password := m.password.Value()
		if password == "" {
			return m, nil
		}
		m.loading = true
		client := m.client
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return adminLoginMsg{err: client.AdminLogin(ctx, password)}
		})
	}
	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	return m, cmd
}

func (m adminModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the search box has focus it owns the keyboard.
	if m.search.Focused() {
		switch msg.Type {
		case tea.KeyEsc:
			m.search.Blur()
			return m, nil
		case tea.KeyEnter:
			m.search.Blur()
			m.filters.Search = m.search.Value()
			m.applyFilters()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.searchGen++
		gen := m.searchGen
		return m, tea.Batch(cmd, tea.Tick(ui.DefaultSearchDuration, func(time.Time) tea.Msg {
			return searchDebounceMsg{gen: gen}
		}))
	}

	if m.confirmDel {
		switch msg.String() {
		case "y":
			m.confirmDel = false
			if m.selected >= 0 && m.selected < len(m.filtered) {
				id := m.filtered[m.selected].ID
				client := m.client
				m.loading = true
				return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
					ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
					defer cancel()
					return verseDeletedMsg{id: id, err: client.DeleteVerse(ctx, id)}
				})
			}
			return m, nil
		default:
			m.confirmDel = false
			return m, nil
		}
	}

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "j", "down":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}
		return m, nil
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "f":
		m.filters.Type = nextChoice(m.filters.Type, []string{adminverse.FilterAll, string(api.ContentText), string(api.ContentImage)})
		m.applyFilters()
		return m, nil
	case "F":
		m.filters.Status = nextChoice(m.filters.Status, []string{adminverse.FilterAll, adminverse.StatusPublished, adminverse.StatusDraft})
		m.applyFilters()
		return m, nil
	case "n":
		return m.openForm(nil)
	case "enter", "e":
		if m.selected >= 0 && m.selected < len(m.filtered) {
			v := m.filtered[m.selected]
			return m.openForm(&v)
		}
		return m, nil
	case "x":
		if m.selected >= 0 && m.selected < len(m.filtered) {
			m.confirmDel = true
		}
		return m, nil
	case "r":
		m.loading = true
		return m, tea.Batch(m.loadVerses(), m.spinner.Tick)
	case "m":
		m.screen = screenModeration
		m.loading = true
		return m, tea.Batch(m.loadModeration(), m.spinner.Tick)
	case "a":
		m.screen = screenAnalytics
		m.loading = true
		return m, tea.Batch(m.loadAnalytics(), m.spinner.Tick)
	case "L":
		client := m.client
		if err := m.mirror.SignOutAdmin(); err != nil {
			m.logger.Warn("failed to clear admin session", zap.Error(err))
		}
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = client.AdminLogout(ctx)
			return adminSessionMsg{authed: false}
		}
	case "g":
		if m.selected >= 0 && m.selected < len(m.filtered) {
			id := m.filtered[m.selected].ID
			client := m.client
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				path, err := client.GenerateImage(ctx, id)
				return imageGeneratedMsg{path: path, err: err}
			})
		}
		return m, nil
	case "b":
		m.screen = screenTheme
		return m, nil
	}
	return m, nil
}

func nextChoice(current string, choices []string) string {
	for i, c := range choices {
		if c == current {
			return choices[(i+1)%len(choices)]
		}
	}
	return choices[0]
}

func (m adminModel) openForm(v *api.Verse) (tea.Model, tea.Cmd) {
	m.screen = screenForm
	m.editing = v
	m.focusIdx = 0
	m.published = true
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.formText.Reset()

	if v != nil {
		m.inputs[fieldDate].SetValue(v.Date)
		m.formText.SetValue(v.VerseText)
		m.inputs[fieldReference].SetValue(v.BibleReference)
		m.inputs[fieldContext].SetValue(v.Context)
		m.inputs[fieldTags].SetValue(v.Tags)
		m.published = v.Published
	} else {
		m.inputs[fieldDate].SetValue(time.Now().Format(api.DateFormat))
	}
	m.inputs[fieldDate].Focus()
	return m, textinput.Blink
}

func (m adminModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.screen = screenVerses
		return m, nil
	case tea.KeyTab, tea.KeyShiftTab:
		delta := 1
		if msg.Type == tea.KeyShiftTab {
			delta = fieldCount - 1
		}
		m.setFormFocus((m.focusIdx + delta) % fieldCount)
		return m, textinput.Blink
	case tea.KeyCtrlP:
		m.published = !m.published
		return m, nil
	case tea.KeyCtrlS:
		return m.saveForm()
	}

	var cmd tea.Cmd
	if m.focusIdx == fieldText {
		m.formText, cmd = m.formText.Update(msg)
	} else {
		m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	}
	return m, cmd
}

func (m *adminModel) setFormFocus(idx int) {
	m.focusIdx = idx
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.formText.Blur()
	if idx == fieldText {
		m.formText.Focus()
		return
	}
	if idx < fieldCount {
		m.inputs[idx].Focus()
	}
}

func (m adminModel) saveForm() (tea.Model, tea.Cmd) {
	in := api.VerseInput{
		Date:           strings.TrimSpace(m.inputs[fieldDate].Value()),
		ContentType:    api.ContentText,
		VerseText:      strings.TrimSpace(m.formText.Value()),
		BibleReference: strings.TrimSpace(m.inputs[fieldReference].Value()),
		Context:        strings.TrimSpace(m.inputs[fieldContext].Value()),
		Tags:           strings.TrimSpace(m.inputs[fieldTags].Value()),
		Published:      m.published,
	}
	if _, err := time.Parse(api.DateFormat, in.Date); err != nil {
		m.errLine = "Date must be YYYY-MM-DD"
		return m, nil
	}
	if path := strings.TrimSpace(m.inputs[fieldImage].Value()); path != "" {
		f, err := os.Open(path)
		if err != nil {
			m.errLine = "Cannot read image: " + err.Error()
			return m, nil
		}
		in.ContentType = api.ContentImage
		in.ImageName = filepath.Base(path)
		in.Image = f
	}
	if in.VerseText == "" && in.ContentType == api.ContentText {
		m.errLine = "Verse text is required"
		return m, nil
	}
	m.errLine = ""
	m.loading = true

	client := m.client
	editing := m.editing
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if closer, ok := in.Image.(io.Closer); ok {
			defer closer.Close()
		}
		if editing != nil {
			v, err := client.UpdateVerse(ctx, editing.ID, in)
			return verseSavedMsg{verse: v, err: err}
		}
		v, err := client.CreateVerse(ctx, in)
		return verseSavedMsg{verse: v, err: err}
	})
}

func (m adminModel) handleModerationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmFeed {
		if msg.String() == "y" && m.feedSel >= 0 && m.feedSel < len(m.feed) {
			item := m.feed[m.feedSel]
			client := m.client
			m.confirmFeed = false
			return m, func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return moderatedMsg{err: client.DeleteSubmission(ctx, item.kind, item.id)}
			}
		}
		m.confirmFeed = false
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.screen = screenVerses
		return m, nil
	case "j", "down":
		if m.feedSel < len(m.feed)-1 {
			m.feedSel++
		}
		return m, nil
	case "k", "up":
		if m.feedSel > 0 {
			m.feedSel--
		}
		return m, nil
	case "a":
		return m.moderateSelected(func(it moderationItem) (bool, bool) { return true, false })
	case "H":
		return m.moderateSelected(func(it moderationItem) (bool, bool) { return it.approved, !it.hidden })
	case "x":
		if m.feedSel >= 0 && m.feedSel < len(m.feed) {
			m.confirmFeed = true
		}
		return m, nil
	case "r":
		m.loading = true
		return m, tea.Batch(m.loadModeration(), m.spinner.Tick)
	}
	return m, nil
}

func (m adminModel) moderateSelected(decide func(moderationItem) (approved, hidden bool)) (tea.Model, tea.Cmd) {
	if m.feedSel < 0 || m.feedSel >= len(m.feed) {
		return m, nil
	}
	item := m.feed[m.feedSel]
	approved, hidden := decide(item)
	client := m.client
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return moderatedMsg{err: client.Moderate(ctx, item.kind, item.id, approved, hidden)}
	}
}

func (m adminModel) handleAnalyticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.loading = true
		return m, tea.Batch(m.loadAnalytics(), m.spinner.Tick)
	default:
		m.screen = screenVerses
		return m, nil
	}
}

func (m adminModel) handleThemeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.themeEdit {
		switch msg.Type {
		case tea.KeyEsc:
			m.themeEdit = false
			m.themeValue.Reset()
			return m, nil
		case tea.KeyEnter:
			field := m.themeFields[m.themeSel]
			value := strings.TrimSpace(m.themeValue.Value())
			m.themeEdit = false
			m.themeValue.Reset()
			editor := m.brand
			return m, func() tea.Msg {
				theme, err := editor.SetColor(field, value)
				return themeSavedMsg{theme: theme, err: err}
			}
		}
		var cmd tea.Cmd
		m.themeValue, cmd = m.themeValue.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "esc":
		m.screen = screenVerses
		return m, nil
	case "j", "down":
		if m.themeSel < len(m.themeFields)-1 {
			m.themeSel++
		}
		return m, nil
	case "k", "up":
		if m.themeSel > 0 {
			m.themeSel--
		}
		return m, nil
	case "enter", "e":
		m.themeEdit = true
		m.themeValue.Focus()
		return m, textinput.Blink
	case "R":
		editor := m.brand
		return m, func() tea.Msg {
			theme, err := editor.Reset()
			return themeSavedMsg{theme: theme, err: err}
		}
	}
	return m, nil
}

func (m adminModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(" Daily Verse Admin "))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " " + m.styles.Muted.Render("Working..."))
		b.WriteString("\n\n")
	}

	switch m.screen {
	case screenLogin:
		b.WriteString(m.styles.Title.Render("Sign in"))
		b.WriteString("\n")
		b.WriteString(m.password.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.Footer.Render("enter sign in · esc quit"))
	case screenVerses:
		b.WriteString(m.listView())
	case screenForm:
		b.WriteString(m.formView())
	case screenModeration:
		b.WriteString(m.moderationView())
	case screenAnalytics:
		b.WriteString(m.analyticsView())
	case screenTheme:
		b.WriteString(m.themeView())
	}

	if m.errLine != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.errLine))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Success.Render(m.status))
	}
	return b.String()
}

func (m adminModel) listView() string {
	var b strings.Builder

	filterLine := fmt.Sprintf("type: %s  status: %s", m.filters.Type, m.filters.Status)
	b.WriteString(m.search.View() + "   " + m.styles.Muted.Render(filterLine))
	b.WriteString("\n\n")

	switch {
	case len(m.verses) == 0 && !m.loading:
		// No verses exist at all; different from a filter matching nothing.
		b.WriteString(m.styles.Muted.Render("No verses yet. Press n to create the first one."))
	case len(m.filtered) == 0 && !m.loading:
		b.WriteString(m.styles.Muted.Render("No verses match the current filters."))
	default:
		tbl := ui.NewTable("", []string{"Date", "Reference", "Type", "Status", "Hearts"})
		for _, v := range m.filtered {
			status := adminverse.StatusDraft
			if v.Published {
				status = adminverse.StatusPublished
			}
			tbl.AddRow(v.Date, v.BibleReference, string(v.ContentType), status, fmt.Sprintf("%d", v.Hearts))
		}
		tbl.Selected = m.selected
		b.WriteString(tbl.View(m.styles))
	}

	if m.confirmDel {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render("Delete this verse? y/n"))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("/ search · f type · F status · n new · e edit · x delete · g share image · m moderation · a analytics · b brand · L sign out · q quit"))
	return b.String()
}

func (m adminModel) formView() string {
	var b strings.Builder
	title := "New verse"
	if m.editing != nil {
		title = "Edit verse"
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")

	rows := []struct {
		label string
		view  string
	}{
		{"Date", m.inputs[fieldDate].View()},
		{"Text", m.formText.View()},
		{"Reference", m.inputs[fieldReference].View()},
		{"Context", m.inputs[fieldContext].View()},
		{"Tags", m.inputs[fieldTags].View()},
		{"Image file", m.inputs[fieldImage].View()},
	}
	for _, r := range rows {
		b.WriteString(m.styles.Bold.Render(r.label) + "\n" + r.view + "\n")
	}

	status := m.styles.Muted.Render("draft")
	if m.published {
		status = m.styles.Success.Render("published")
	}
	b.WriteString("\nStatus: " + status + "\n\n")
	b.WriteString(m.styles.Footer.Render("tab next field · ctrl+p publish toggle · ctrl+s save · esc back"))
	return b.String()
}

func (m adminModel) moderationView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Moderation"))
	b.WriteString("\n")

	if len(m.feed) == 0 && !m.loading {
		b.WriteString(m.styles.Muted.Render("Nothing waiting for review."))
	}
	for i, item := range m.feed {
		kind := "prayer"
		if item.kind == api.KindPraiseReport {
			kind = "praise"
		}
		flags := ""
		if item.approved {
			flags += m.styles.Success.Render(" approved")
		} else {
			flags += m.styles.Warning.Render(" pending")
		}
		if item.hidden {
			flags += m.styles.Error.Render(" hidden")
		}
		line := fmt.Sprintf("[%s] %s  %s%s", kind, item.date, truncate(item.content, 56), flags)
		if item.ip != "" {
			line += m.styles.Muted.Render("  " + item.ip)
		}
		if i == m.feedSel {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.confirmFeed {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render("Delete this submission? y/n"))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("a approve · H hide/unhide · x delete · r refresh · esc back"))
	return b.String()
}

func (m adminModel) analyticsView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Analytics"))
	b.WriteString("\n")

	if m.summary == nil {
		if !m.loading {
			b.WriteString(m.styles.Muted.Render("No analytics yet."))
		}
		return b.String()
	}

	tbl := ui.NewTable("", []string{"Metric", "Value"})
	tbl.AddRow("Total views", fmt.Sprintf("%d", m.summary.TotalViews))
	tbl.AddRow("Total hearts", fmt.Sprintf("%d", m.summary.TotalHearts))
	tbl.AddRow("Total shares", fmt.Sprintf("%d", m.summary.TotalShares))
	tbl.AddRow("Unique visitors", fmt.Sprintf("%d", m.summary.UniqueVisitors))
	b.WriteString(tbl.View(m.styles))

	if len(m.summary.TopVerses) > 0 {
		top := ui.NewTable("Top verses", []string{"Date", "Reference", "Hearts"})
		for _, v := range m.summary.TopVerses {
			top.AddRow(v.Date, v.BibleReference, fmt.Sprintf("%d", v.Hearts))
		}
		b.WriteString("\n" + top.View(m.styles))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("r refresh · any key back"))
	return b.String()
}

func (m adminModel) themeView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Brand theme"))
	b.WriteString("\n")

	theme := m.brand.Current()
	values := map[string]string{
		"primary":    theme.Primary,
		"accent":     theme.Accent,
		"background": theme.Background,
		"muted":      theme.Muted,
		"success":    theme.Success,
		"black":      theme.Black,
	}
	for i, f := range m.themeFields {
		line := fmt.Sprintf("%-12s %s", f, values[f])
		if i == m.themeSel {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%-12s %s (derived)", "menuText", theme.MenuText)))
	b.WriteString("\n")

	if m.themeEdit {
		b.WriteString("\nNew value: " + m.themeValue.View() + "\n")
		b.WriteString(m.styles.Footer.Render("enter apply · esc cancel"))
	} else {
		b.WriteString("\n")
		b.WriteString(m.styles.Footer.Render("e edit · R reset · esc back"))
	}
	return b.String()
}
