package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"dailyverse/internal/brand"
	"dailyverse/internal/localstate"
	"dailyverse/internal/session"
)

func themeStore(t *testing.T, home string) *brand.Editor {
	t.Helper()
	state, err := localstate.Open(filepath.Join(home, "state"))
	if err != nil {
		t.Fatal(err)
	}
	return brand.NewEditor(state)
}

func TestThemeExportImportRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("DAILYVERSE_HOME", home)
	t.Setenv("DAILYVERSE_SERVER_URL", "")

	out := filepath.Join(t.TempDir(), "theme.json")
	if err := runThemeExport(nil, []string{out}); err != nil {
		t.Fatalf("export: %v", err)
	}
	if err := runThemeImport(nil, []string{out}); err != nil {
		t.Fatalf("import of exported theme: %v", err)
	}
}

func TestThemeImportAppliesRecognizedFields(t *testing.T) {
	home := t.TempDir()
	t.Setenv("DAILYVERSE_HOME", home)
	t.Setenv("DAILYVERSE_SERVER_URL", "")

	file := filepath.Join(t.TempDir(), "theme.json")
	doc := `{"primary": "#112233", "mascot": "dove"}`
	if err := os.WriteFile(file, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runThemeImport(nil, []string{file}); err != nil {
		t.Fatalf("import: %v", err)
	}

	got := themeStore(t, home).Current()
	if got.Primary != "#112233" {
		t.Errorf("primary = %q, want imported value", got.Primary)
	}
	if got.Accent != brand.Default().Accent {
		t.Errorf("accent = %q, unset fields must keep their value", got.Accent)
	}
}

func TestThemeImportMalformedLeavesThemeUntouched(t *testing.T) {
	home := t.TempDir()
	t.Setenv("DAILYVERSE_HOME", home)
	t.Setenv("DAILYVERSE_SERVER_URL", "")

	file := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(file, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runThemeImport(nil, []string{file}); err == nil {
		t.Fatal("malformed import must fail")
	}

	if got := themeStore(t, home).Current(); got != brand.Default() {
		t.Errorf("theme changed by a malformed import: %+v", got)
	}
}

func TestStatusReportCarriesSessionMirror(t *testing.T) {
	deps := testDeps(t)
	mirror, err := session.NewMirror(deps.state)
	if err != nil {
		t.Fatal(err)
	}
	if err := mirror.SignInAdmin(); err != nil {
		t.Fatal(err)
	}

	out, err := statusReport(deps, mirror)
	if err != nil {
		t.Fatal(err)
	}
	if out["admin_session"] != true {
		t.Error("admin_session not reported")
	}
	raw, ok := out["session"].(json.RawMessage)
	if !ok {
		t.Fatalf("session entry is %T, want the mirror export", out["session"])
	}
	var sess map[string]interface{}
	if err := json.Unmarshal(raw, &sess); err != nil {
		t.Fatalf("session entry is not valid JSON: %v", err)
	}
	if sess["admin"] != true {
		t.Errorf("exported session = %v, want admin flag", sess)
	}
}
