package localstate

import (
	"os"
	"strings"
	"testing"
)

func TestGet_MissingKeyReportsAbsent(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	var v string
	ok, err := s.Get("never-written", &v)
	if err != nil {
		t.Fatalf("Get returned error for missing key: %v", err)
	}
	if ok {
		t.Error("Expected ok=false for a key that was never written")
	}
}

func TestSetGet_RoundTrip(t *testing.T) {
	s, _ := Open(t.TempDir())

	in := map[string]bool{"prayer_3": true, "celebration_8": true}
	if err := s.Set(KeyUserInteractions, in); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	out := map[string]bool{}
	ok, err := s.Get(KeyUserInteractions, &out)
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if !out["prayer_3"] || !out["celebration_8"] {
		t.Errorf("Round trip lost entries: %v", out)
	}
}

func TestDelete_AbsentKeyIsNotAnError(t *testing.T) {
	s, _ := Open(t.TempDir())
	if err := s.Delete("ghost"); err != nil {
		t.Errorf("Delete of absent key returned error: %v", err)
	}
}

func TestDefaults(t *testing.T) {
	s, _ := Open(t.TempDir())

	if got := s.TextSize(); got != "medium" {
		t.Errorf("Default text size = %s, want medium", got)
	}
	if got := s.Theme(); got != "light" {
		t.Errorf("Default theme = %s, want light", got)
	}
}

func TestUserToken_GeneratedOnceAndStable(t *testing.T) {
	dir := t.TempDir()
	s, _ := Open(dir)

	first, err := s.UserToken()
	if err != nil {
		t.Fatalf("UserToken failed: %v", err)
	}
	if !strings.HasPrefix(first, "user_") {
		t.Errorf("Token %q does not carry the user_ prefix", first)
	}
	if parts := strings.Split(first, "_"); len(parts) != 3 {
		t.Errorf("Token %q is not user_<timestamp>_<random>", first)
	}

	second, _ := s.UserToken()
	if second != first {
		t.Errorf("Token changed between calls: %q vs %q", first, second)
	}

	// A fresh store over the same directory sees the persisted token.
	reopened, _ := Open(dir)
	third, _ := reopened.UserToken()
	if third != first {
		t.Errorf("Token not persisted across reopen: %q vs %q", first, third)
	}
}

func TestGet_CorruptFileSurfacesError(t *testing.T) {
	dir := t.TempDir()
	s, _ := Open(dir)
	if err := os.WriteFile(s.Path(KeyFavorites), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	var v []int
	if _, err := s.Get(KeyFavorites, &v); err == nil {
		t.Error("Expected parse error for corrupt state file")
	}
}
