package ui

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestTable_EmptyRendersNothing(t *testing.T) {
	tbl := NewTable("Verses", []string{"Date", "Reference"})
	if out := tbl.View(DefaultStyles()); out != "" {
		t.Errorf("empty table rendered %q", out)
	}
}

func TestTable_RendersHeadersAndRows(t *testing.T) {
	tbl := NewTable("Verses", []string{"Date", "Reference", "Status"})
	tbl.AddRow("2026-09-01", "Psalm 23:1", "published")
	tbl.AddRow("2026-09-02", "John 3:16", "draft")

	out := tbl.View(DefaultStyles())
	for _, want := range []string{"Verses", "Date", "Psalm 23:1", "draft"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}

func TestTable_SelectionInRange(t *testing.T) {
	tbl := NewTable("", []string{"Date"})
	tbl.AddRow("2026-09-01")
	tbl.Selected = 0

	// Must not panic and still include the row.
	out := tbl.View(DefaultStyles())
	if !strings.Contains(out, "2026-09-01") {
		t.Error("selected row dropped from output")
	}
}

func TestDebouncer_CoalescesCalls(t *testing.T) {
	var calls int32
	d := NewDebouncer(30 * time.Millisecond)

	for i := 0; i < 5; i++ {
		d.Debounce(func() { atomic.AddInt32(&calls, 1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	var calls int32
	d := NewDebouncer(20 * time.Millisecond)

	d.Debounce(func() { atomic.AddInt32(&calls, 1) })
	d.Cancel()

	time.Sleep(60 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("calls = %d, want 0", got)
	}
}
