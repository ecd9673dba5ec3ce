package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dailyverse/cmd/dailyverse/config"
	"dailyverse/cmd/dailyverse/ui"
	"dailyverse/internal/adminverse"
	"dailyverse/internal/analytics"
	"dailyverse/internal/api"
	"dailyverse/internal/brand"
	"dailyverse/internal/devotion"
	"dailyverse/internal/engagement"
	"dailyverse/internal/localstate"
	"dailyverse/internal/logging"
	"dailyverse/internal/session"
	"dailyverse/internal/store"
)

// themeReloadedMsg is sent into a running program when the persisted brand
// theme changes on disk (another session edited it).
type themeReloadedMsg struct {
	theme brand.Theme
}

var (
	serverFlag string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "dailyverse",
	Short: "Daily verse reader for the terminal",
	Long: `dailyverse is the terminal client for the church daily verse service.

Run without arguments to open the interactive reader: browse the last two
weeks of verses, heart and favorite them, and join the community in prayer.
Administrators manage content with the admin subcommand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReader()
	},
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Open the admin dashboard",
	Long: `Opens the interactive admin dashboard: verse list with filters,
create/edit/delete, community moderation, analytics, and the brand theme
editor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdmin()
	},
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Print today's verse and community counts",
	RunE:  runToday,
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print a random verse",
	RunE:  runRandom,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show local state: identity, favorites, engagement totals",
	RunE:  runStatus,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value (server_url, share_url, debug, log_level)",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [file.yaml]",
	Short: "Publish a YAML batch of scheduled verses (admin)",
	Long: `Reads a YAML schedule and creates each verse through the admin API.

The schedule file lists verses by date:

  verses:
    - date: 2026-09-03
      text: Be still, and know that I am God.
      reference: Psalm 46:10
      tags: [peace, trust]
    - date: 2026-09-04
      text: Give thanks in all circumstances.
      draft: true`,
	Args: cobra.ExactArgs(1),
	RunE: runSchedule,
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Export or import the brand theme",
}

var themeExportCmd = &cobra.Command{
	Use:   "export [file.json]",
	Short: "Write the brand theme as JSON (stdout when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runThemeExport,
}

var themeImportCmd = &cobra.Command{
	Use:   "import [file.json]",
	Short: "Apply a brand theme from JSON",
	Long: `Applies the recognized color fields from the JSON document and ignores
unknown ones. A malformed document leaves the current theme untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeImport,
}

var schedulePassword string

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "API base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable file logging")
	scheduleCmd.Flags().StringVar(&schedulePassword, "password", "", "admin password (prompted via ADMIN_PASSWORD env if empty)")

	configCmd.AddCommand(configSetCmd)
	themeCmd.AddCommand(themeExportCmd, themeImportCmd)
	rootCmd.AddCommand(adminCmd, todayCmd, randomCmd, statusCmd, configCmd, scheduleCmd, themeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// buildDeps wires the shared backend: config, logger, state store, API
// client, cache, ledger, analytics.
func buildDeps() (appDeps, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file falls back to defaults; keep going.
		cfg = config.DefaultConfig()
	}
	if serverFlag != "" {
		cfg.ServerURL = serverFlag
	}
	if debugFlag {
		cfg.Debug = true
	}

	dir, err := config.Dir()
	if err != nil {
		return appDeps{}, nil, fmt.Errorf("failed to resolve state directory: %w", err)
	}

	logger, closeLog, err := logging.New(logging.Options{Dir: dir, Debug: cfg.Debug, Level: cfg.LogLevel})
	if err != nil {
		return appDeps{}, nil, err
	}

	state, err := localstate.Open(filepath.Join(dir, "state"))
	if err != nil {
		closeLog()
		return appDeps{}, nil, err
	}

	client := api.New(api.DefaultConfig(cfg.ServerURL))
	token, err := state.UserToken()
	if err != nil {
		logger.Warn("failed to load user token", zap.Error(err))
	} else {
		client.SetUserToken(token)
	}
	if mirror, err := session.NewMirror(state); err == nil && mirror.SignedIn() {
		client.SetSessionToken(mirror.Token())
	}

	cache, err := store.OpenVerseCache(filepath.Join(dir, "cache", "verses.db"))
	if err != nil {
		logger.Warn("verse cache unavailable", zap.Error(err))
		cache = nil
	} else if n, err := cache.Prune(devotion.WindowDays); err == nil && n > 0 {
		logger.Debug("pruned stale cached verses", zap.Int("count", n))
	}

	ledger, err := engagement.NewLedger(state)
	if err != nil {
		closeLog()
		return appDeps{}, nil, fmt.Errorf("failed to load engagement state: %w", err)
	}

	tracker, err := analytics.NewTracker(dir, client, logger.Named(logging.CategoryAPI))
	if err != nil {
		closeLog()
		return appDeps{}, nil, err
	}

	editor := brand.NewEditor(state)
	dark := state.Theme() == "dark"

	deps := appDeps{
		client:  client,
		cache:   cache,
		state:   state,
		ledger:  ledger,
		tracker: tracker,
		theme:   ui.NewStyles(editor.Current(), dark),
		logger:  logger,
		cfg:     cfg,
	}
	cleanup := func() {
		if err := tracker.Save(); err != nil {
			logger.Warn("failed to save analytics", zap.Error(err))
		}
		if cache != nil {
			_ = cache.Close()
		}
		closeLog()
	}
	return deps, cleanup, nil
}

// watchTheme forwards persisted-theme edits into a running program,
// debounced because editors commonly write the file twice.
func watchTheme(editor *brand.Editor, p *tea.Program, logger *zap.Logger) func() {
	watcher, err := editor.Watch()
	if err != nil {
		logger.Debug("brand theme watch unavailable", zap.Error(err))
		return func() {}
	}
	deb := ui.NewDebouncer(200 * time.Millisecond)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case theme, ok := <-watcher.C:
				if !ok {
					return
				}
				t := theme
				deb.Debounce(func() { p.Send(themeReloadedMsg{theme: t}) })
			case <-done:
				return
			}
		}
	}()
	return func() {
		close(done)
		deb.Cancel()
		_ = watcher.Close()
	}
}

func runReader() error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	editor := brand.NewEditor(deps.state)
	p := tea.NewProgram(newAppModel(deps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	stop := watchTheme(editor, p, deps.logger)
	defer stop()

	_, err = p.Run()
	return err
}

func runAdmin() error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	mirror, err := session.NewMirror(deps.state)
	if err != nil {
		return err
	}
	editor := brand.NewEditor(deps.state)

	p := tea.NewProgram(newAdminModel(deps, mirror, editor), tea.WithAltScreen())
	stop := watchTheme(editor, p, deps.logger)
	defer stop()

	_, err = p.Run()
	return err
}

// runToday fetches today's verse and community counts concurrently and
// prints them once.
func runToday(cmd *cobra.Command, args []string) error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	date := time.Now().Format(api.DateFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var verse *api.Verse
	var community *api.Community
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := deps.client.VerseForDate(gctx, date)
		verse = v
		return err
	})
	g.Go(func() error {
		// Community counts are decoration here; swallow their failure.
		if c, err := deps.client.CommunityForDate(gctx, date); err == nil {
			community = c
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("could not load today's verse: %w", err)
	}

	printVerse(deps.theme, verse, community)
	return nil
}

func runRandom(cmd *cobra.Command, args []string) error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	verse, err := deps.client.RandomVerse(ctx)
	if err != nil {
		return fmt.Errorf("could not load a random verse: %w", err)
	}
	printVerse(deps.theme, verse, nil)
	return nil
}

func printVerse(styles ui.Styles, v *api.Verse, c *api.Community) {
	if v == nil {
		fmt.Println(styles.Muted.Render("No verse has been posted for this day yet."))
		return
	}
	fmt.Println(styles.Card.Width(72).Render(
		styles.Body.Render(v.VerseText) + "\n\n" + styles.Reference.Render(v.BibleReference)))
	fmt.Println(styles.Muted.Render(fmt.Sprintf("♥ %d", v.Hearts)))
	if c != nil {
		fmt.Println(styles.Muted.Render(fmt.Sprintf("%d prayer requests · %d praise reports",
			len(c.PrayerRequests), len(c.PraiseReports))))
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	mirror, err := session.NewMirror(deps.state)
	if err != nil {
		return err
	}

	out, err := statusReport(deps, mirror)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// statusReport assembles the status command's payload.
func statusReport(deps appDeps, mirror *session.Mirror) (map[string]interface{}, error) {
	sess, err := mirror.Export()
	if err != nil {
		return nil, err
	}
	token, _ := deps.state.UserToken()
	return map[string]interface{}{
		"server":          deps.cfg.ServerURL,
		"anonymous_token": token,
		"favorites":       len(deps.ledger.Favorites()),
		"recently_viewed": len(deps.ledger.RecentlyViewed()),
		"signed_in":       mirror.SignedIn(),
		"admin_session":   mirror.IsAdmin(),
		"session":         json.RawMessage(sess),
		"events_today":    deps.tracker.TodayCount(),
		"verses_viewed":   deps.tracker.Count(analytics.EventVerseViewed),
		"hearts_given":    deps.tracker.Count(analytics.EventHeartTapped),
		"verses_shared":   deps.tracker.Count(analytics.EventVerseShared),
		"text_size":       deps.state.TextSize(),
		"theme":           deps.state.Theme(),
	}, nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, _ := config.Load()
	path, _ := config.File()
	fmt.Printf("config file: %s\n", path)
	fmt.Printf("server_url:  %s\n", cfg.ServerURL)
	fmt.Printf("share_url:   %s\n", cfg.Share())
	fmt.Printf("debug:       %v\n", cfg.Debug)
	fmt.Printf("log_level:   %s\n", cfg.LogLevel)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg, _ := config.Load()
	key, value := args[0], args[1]
	switch key {
	case "server_url":
		cfg.ServerURL = value
	case "share_url":
		cfg.ShareURL = value
	case "debug":
		cfg.Debug = value == "true" || value == "1"
	case "log_level":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", key, value)
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	editor := brand.NewEditor(deps.state)
	data, err := editor.Export()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}

func runThemeImport(cmd *cobra.Command, args []string) error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	editor := brand.NewEditor(deps.state)
	theme, err := editor.Import(data)
	if err != nil {
		return fmt.Errorf("theme import failed: %w", err)
	}
	fmt.Printf("Theme updated: primary %s, accent %s\n", theme.Primary, theme.Accent)
	return nil
}

func runSchedule(cmd *cobra.Command, args []string) error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	sched, err := adminverse.ParseSchedule(data)
	if err != nil {
		return err
	}

	password := schedulePassword
	if password == "" {
		password = os.Getenv("ADMIN_PASSWORD")
	}
	if password == "" {
		return fmt.Errorf("admin password required (--password or ADMIN_PASSWORD)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := deps.client.AdminLogin(ctx, password); err != nil {
		return fmt.Errorf("admin login failed: %w", err)
	}

	res := sched.Apply(ctx, deps.client)
	for _, date := range res.Created {
		fmt.Printf("created %s\n", date)
	}
	for date, err := range res.Failed {
		fmt.Printf("FAILED  %s: %v\n", date, err)
	}
	if len(res.Failed) > 0 {
		return fmt.Errorf("%d of %d verses failed", len(res.Failed), len(sched.Verses))
	}
	return nil
}
