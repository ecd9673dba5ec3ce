// Account, search, feedback, and QR subcommands.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dailyverse/internal/api"
	"dailyverse/internal/session"
)

var (
	accountPassword string
	registerFirst   string
	registerLast    string
	profileFirst    string
	profileLast     string
	profileDisplay  string
	prefsLifeStage  string
	prefsInterests  []string
	prefsStruggles  []string
	prefsFrequency  string
	prefsBible      string
	prefsOnboarding bool
	feedbackEmail   string
	qrOut           string
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in to your account",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register [email]",
	Short: "Create an account and sign in",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the local session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE:  runWhoami,
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Update account profile or preferences",
	RunE:  runProfile,
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search published verses",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var feedbackCmd = &cobra.Command{
	Use:   "feedback [message]",
	Short: "Send feedback to the church team",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFeedback,
}

var qrCmd = &cobra.Command{
	Use:   "qr [date]",
	Short: "Save the server-rendered QR image for a verse",
	Long: `Fetches the verse for the given date (default today) and writes the
server-generated QR PNG, suitable for bulletins and slides. The interactive
reader renders QR codes inline; this produces the image asset.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQR,
}

func init() {
	loginCmd.Flags().StringVar(&accountPassword, "password", "", "password (prompted when empty)")
	registerCmd.Flags().StringVar(&accountPassword, "password", "", "password (prompted when empty)")
	registerCmd.Flags().StringVar(&registerFirst, "first", "", "first name")
	registerCmd.Flags().StringVar(&registerLast, "last", "", "last name")
	profileCmd.Flags().StringVar(&profileFirst, "first", "", "first name")
	profileCmd.Flags().StringVar(&profileLast, "last", "", "last name")
	profileCmd.Flags().StringVar(&profileDisplay, "display", "", "display name")
	profileCmd.Flags().StringVar(&prefsLifeStage, "life-stage", "", "life stage")
	profileCmd.Flags().StringSliceVar(&prefsInterests, "interest", nil, "interest (repeatable)")
	profileCmd.Flags().StringSliceVar(&prefsStruggles, "struggle", nil, "struggle (repeatable)")
	profileCmd.Flags().StringVar(&prefsFrequency, "prayer-frequency", "", "prayer frequency")
	profileCmd.Flags().StringVar(&prefsBible, "translation", "", "preferred translation")
	profileCmd.Flags().BoolVar(&prefsOnboarding, "complete-onboarding", false, "submit preferences as the onboarding flow")
	feedbackCmd.Flags().StringVar(&feedbackEmail, "email", "", "reply-to email (optional)")
	qrCmd.Flags().StringVar(&qrOut, "out", "verse-qr.png", "output file")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd, profileCmd, searchCmd, feedbackCmd, qrCmd)
}

func promptPassword() (string, error) {
	if accountPassword != "" {
		return accountPassword, nil
	}
	fmt.Print("Password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	password, err := promptPassword()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	user, token, err := deps.client.Login(ctx, args[0], password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	mirror, err := session.NewMirror(deps.state)
	if err != nil {
		return err
	}
	if err := mirror.SignIn(user, token); err != nil {
		return err
	}
	deps.client.SetSessionToken(token)
	fmt.Printf("Signed in as %s\n", user.Email)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	password, err := promptPassword()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	user, token, err := deps.client.Register(ctx, api.RegisterInput{
		Email:     args[0],
		Password:  password,
		FirstName: registerFirst,
		LastName:  registerLast,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	mirror, err := session.NewMirror(deps.state)
	if err != nil {
		return err
	}
	if err := mirror.SignIn(user, token); err != nil {
		return err
	}
	fmt.Printf("Welcome, %s\n", user.Email)
	fmt.Println("Set your preferences with: dailyverse profile --complete-onboarding")
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	mirror, err := session.NewMirror(deps.state)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	deps.client.SetSessionToken(mirror.Token())
	if err := deps.client.Logout(ctx); err != nil {
		// The server session may already be gone; clear the mirror anyway.
		fmt.Fprintf(os.Stderr, "warning: server logout failed: %v\n", err)
	}
	if err := mirror.SignOut(); err != nil {
		return err
	}
	fmt.Println("Signed out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	mirror, err := session.NewMirror(deps.state)
	if err != nil {
		return err
	}
	if !mirror.SignedIn() {
		fmt.Println("Not signed in")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	deps.client.SetSessionToken(mirror.Token())
	user, err := deps.client.Me(ctx)
	if err != nil {
		// Offline or expired server-side; fall back to the mirror.
		user = mirror.User()
		fmt.Fprintf(os.Stderr, "warning: could not confirm session: %v\n", err)
	}
	fmt.Printf("email:   %s\n", user.Email)
	if user.DisplayName != "" {
		fmt.Printf("display: %s\n", user.DisplayName)
	}
	if user.FirstName != "" || user.LastName != "" {
		fmt.Printf("name:    %s %s\n", user.FirstName, user.LastName)
	}
	if user.PreferredTranslation != "" {
		fmt.Printf("bible:   %s\n", user.PreferredTranslation)
	}
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	mirror, err := session.NewMirror(deps.state)
	if err != nil {
		return err
	}
	if !mirror.SignedIn() {
		return fmt.Errorf("not signed in; run: dailyverse login <email>")
	}
	deps.client.SetSessionToken(mirror.Token())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var user *api.User
	if profileFirst != "" || profileLast != "" || profileDisplay != "" {
		user, err = deps.client.UpdateProfile(ctx, profileFirst, profileLast, profileDisplay)
		if err != nil {
			return fmt.Errorf("profile update failed: %w", err)
		}
	}

	prefs := api.PreferencesInput{
		LifeStage:            prefsLifeStage,
		Interests:            prefsInterests,
		Struggles:            prefsStruggles,
		PrayerFrequency:      prefsFrequency,
		PreferredTranslation: prefsBible,
	}
	prefsSet := prefs.LifeStage != "" || prefs.PrayerFrequency != "" ||
		prefs.PreferredTranslation != "" || len(prefs.Interests) > 0 || len(prefs.Struggles) > 0
	if prefsOnboarding {
		user, err = deps.client.CompleteOnboarding(ctx, prefs)
	} else if prefsSet {
		user, err = deps.client.UpdatePreferences(ctx, prefs)
	}
	if err != nil {
		return fmt.Errorf("preferences update failed: %w", err)
	}
	if user == nil {
		return fmt.Errorf("nothing to update; see: dailyverse profile --help")
	}

	if err := mirror.SignIn(user, mirror.Token()); err != nil {
		return err
	}
	fmt.Println("Profile updated")
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	verses, err := deps.client.SearchVerses(ctx, strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if len(verses) == 0 {
		fmt.Println(deps.theme.Muted.Render("No verses matched."))
		return nil
	}
	for _, v := range verses {
		fmt.Printf("%s  %s\n", v.Date, deps.theme.Reference.Render(v.BibleReference))
		fmt.Println("  " + truncate(v.VerseText, 100))
	}
	return nil
}

func runFeedback(cmd *cobra.Command, args []string) error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := deps.client.SubmitFeedback(ctx, strings.Join(args, " "), feedbackEmail); err != nil {
		return fmt.Errorf("could not send feedback: %w", err)
	}
	fmt.Println("Thank you, your feedback was sent.")
	return nil
}

func runQR(cmd *cobra.Command, args []string) error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	date := time.Now().Format(api.DateFormat)
	if len(args) == 1 {
		date = args[0]
	}
	if _, err := time.Parse(api.DateFormat, date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	verse, err := deps.client.VerseForDate(ctx, date)
	if err != nil {
		return err
	}
	if verse == nil {
		return fmt.Errorf("no verse posted for %s", date)
	}

	png, err := deps.client.QRCode(ctx, verse.ID)
	if err != nil {
		return fmt.Errorf("could not fetch QR image: %w", err)
	}
	if err := os.WriteFile(qrOut, png, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s)\n", qrOut, verse.BibleReference)
	return nil
}
