package brand

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"dailyverse/internal/localstate"
)

func newTestEditor(t *testing.T) (*Editor, *localstate.Store) {
	t.Helper()
	store, err := localstate.Open(t.TempDir())
	require.NoError(t, err)
	return NewEditor(store), store
}

func TestSetColor_PartialEditKeepsOtherFields(t *testing.T) {
	e, _ := newTestEditor(t)
	before := e.Current()

	next, err := e.SetColor("primary", "#123456")
	require.NoError(t, err)
	assert.Equal(t, "#123456", next.Primary)
	assert.Equal(t, before.Accent, next.Accent)
	assert.Equal(t, before.Background, next.Background)
	assert.Equal(t, before.Muted, next.Muted)
	assert.Equal(t, before.Success, next.Success)
	assert.Equal(t, before.Black, next.Black)
}

func TestSetColor_DerivesMenuText(t *testing.T) {
	e, _ := newTestEditor(t)

	dark, err := e.SetColor("primary", "#101010")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", dark.MenuText)

	light, err := e.SetColor("primary", "#f0f0f0")
	require.NoError(t, err)
	assert.Equal(t, "#1b1b1b", light.MenuText)
}

func TestSetColor_UnknownFieldRejected(t *testing.T) {
	e, _ := newTestEditor(t)
	before := e.Current()

	_, err := e.SetColor("sparkle", "#ff00ff")
	assert.Error(t, err)
	assert.Equal(t, before, e.Current())
}

func TestSetColor_PersistsAcrossReload(t *testing.T) {
	e, store := newTestEditor(t)
	_, err := e.SetColor("accent", "#abcdef")
	require.NoError(t, err)

	reloaded := NewEditor(store)
	assert.Equal(t, "#abcdef", reloaded.Current().Accent)
}

func TestReset_RestoresDefaultsAndClearsState(t *testing.T) {
	e, store := newTestEditor(t)
	e.SetColor("primary", "#123456")

	got, err := e.Reset()
	require.NoError(t, err)
	assert.Equal(t, Default(), got)

	var saved Theme
	ok, err := store.Get(localstate.KeyBrandTheme, &saved)
	require.NoError(t, err)
	assert.False(t, ok, "Reset must clear the persisted theme")
}

func TestImport_AppliesOnlyRecognizedFields(t *testing.T) {
	e, _ := newTestEditor(t)
	before := e.Current()

	got, err := e.Import([]byte(`{"primary":"#123456","glitter":"#ff00ff"}`))
	require.NoError(t, err)
	assert.Equal(t, "#123456", got.Primary)
	assert.Equal(t, before.Accent, got.Accent)
	assert.Equal(t, before.Background, got.Background)
}

func TestImport_MalformedLeavesThemeUntouched(t *testing.T) {
	e, _ := newTestEditor(t)
	before := e.Current()

	_, err := e.Import([]byte(`{"primary": not-json`))
	assert.Error(t, err)
	assert.Equal(t, before, e.Current())
}

func TestExportImport_RoundTrip(t *testing.T) {
	e, _ := newTestEditor(t)
	e.SetColor("primary", "#222244")
	e.SetColor("accent", "#ddaa33")
	want := e.Current()

	doc, err := e.Export()
	require.NoError(t, err)

	other, _ := newTestEditor(t)
	got, err := other.Import(doc)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWatch_PicksUpExternalWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	store, err := localstate.Open(dir)
	require.NoError(t, err)
	e := NewEditor(store)

	w, err := e.Watch()
	require.NoError(t, err)
	defer w.Close()

	// A second session writing the same state directory.
	otherStore, err := localstate.Open(dir)
	require.NoError(t, err)
	other := NewEditor(otherStore)
	_, err = other.SetColor("primary", "#445566")
	require.NoError(t, err)

	select {
	case got := <-w.C:
		assert.Equal(t, "#445566", got.Primary)
	case <-time.After(3 * time.Second):
		t.Fatal("Watcher did not report the external theme write")
	}
	assert.Equal(t, "#445566", e.Current().Primary)
}
