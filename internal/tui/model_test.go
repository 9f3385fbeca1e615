package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"percentcalc/internal/percent"
	"percentcalc/internal/present"
)

type fakeClipboard struct {
	got string
	err error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.got = text
	return nil
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return nm, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func key(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: k})
	return m
}

func TestFormCalculatesPercentOf(t *testing.T) {
	m := New(percent.NewCalculator(nil), &fakeClipboard{})

	m = typeText(t, m, "15")
	m = key(t, m, tea.KeyDown)
	m = typeText(t, m, "200")
	m = key(t, m, tea.KeyEnter)

	out := m.Output()
	if out.Text() != "15% of 200 = 30" {
		t.Fatalf("unexpected result %q", out.Text())
	}
	if out.Meta() != "Computed: value × percentage ÷ 100" {
		t.Fatalf("unexpected meta %q", out.Meta())
	}
	if !strings.Contains(m.View(), "15% of 200 = 30") {
		t.Fatal("expected result in view")
	}
}

func TestFormShowsValidationError(t *testing.T) {
	m := New(percent.NewCalculator(nil), &fakeClipboard{})

	m = key(t, m, tea.KeyTab)
	if m.Mode() != percent.WhatPercent {
		t.Fatalf("expected %s, got %s", percent.WhatPercent, m.Mode())
	}

	m = typeText(t, m, "5")
	m = key(t, m, tea.KeyDown)
	m = typeText(t, m, "0")
	m = key(t, m, tea.KeyEnter)

	if got := m.Output().Error(); got != "Whole (B) cannot be zero." {
		t.Fatalf("unexpected error %q", got)
	}
	if m.Output().HasResult() {
		t.Fatal("expected no result alongside an error")
	}
}

func TestFormApplyDecrease(t *testing.T) {
	m := New(percent.NewCalculator(nil), &fakeClipboard{})

	m = key(t, m, tea.KeyShiftTab)
	m = key(t, m, tea.KeyShiftTab)
	if m.Mode() != percent.ApplyPercent {
		t.Fatalf("expected %s, got %s", percent.ApplyPercent, m.Mode())
	}

	m = typeText(t, m, "100")
	m = key(t, m, tea.KeyDown)
	m = typeText(t, m, "15")
	m = key(t, m, tea.KeyDown)
	m = key(t, m, tea.KeyRight)
	m = key(t, m, tea.KeyEnter)

	if got := m.Output().Text(); got != "100 decrease 15% = 85 (-15)" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestSwitchingModeClearsOutput(t *testing.T) {
	m := New(percent.NewCalculator(nil), &fakeClipboard{})

	m = typeText(t, m, "15")
	m = key(t, m, tea.KeyDown)
	m = typeText(t, m, "200")
	m = key(t, m, tea.KeyEnter)
	m = key(t, m, tea.KeyTab)

	if m.Output().HasResult() {
		t.Fatal("expected output cleared after switching mode")
	}
}

func TestCopy(t *testing.T) {
	t.Run("nothing to copy", func(t *testing.T) {
		m := New(percent.NewCalculator(nil), &fakeClipboard{})

		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
		if cmd == nil {
			t.Fatal("expected copy command")
		}
		m, _ = update(t, m, cmd())

		if got := m.Output().Error(); got != present.ErrNothingToCopy.Error() {
			t.Fatalf("unexpected error %q", got)
		}
	})

	t.Run("copies and clears confirmation", func(t *testing.T) {
		cb := &fakeClipboard{}
		m := New(percent.NewCalculator(nil), cb)

		m = typeText(t, m, "15")
		m = key(t, m, tea.KeyDown)
		m = typeText(t, m, "200")
		m = key(t, m, tea.KeyEnter)

		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
		m, tick := update(t, m, cmd())

		if cb.got != "15% of 200 = 30" {
			t.Fatalf("unexpected clipboard text %q", cb.got)
		}
		if m.Output().Meta() != present.CopiedMessage {
			t.Fatalf("expected copy confirmation, got %q", m.Output().Meta())
		}
		if tick == nil {
			t.Fatal("expected a timer to clear the confirmation")
		}

		m, _ = update(t, m, clearMetaMsg{seq: m.metaSeq})
		if m.Output().Meta() != "" {
			t.Fatalf("expected confirmation cleared, got %q", m.Output().Meta())
		}
	})

	t.Run("clipboard unavailable", func(t *testing.T) {
		m := New(percent.NewCalculator(nil), &fakeClipboard{err: errors.New("denied")})

		m = typeText(t, m, "15")
		m = key(t, m, tea.KeyDown)
		m = typeText(t, m, "200")
		m = key(t, m, tea.KeyEnter)

		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
		m, _ = update(t, m, cmd())

		if got := m.Output().Error(); got != present.ErrClipboardUnavailable.Error() {
			t.Fatalf("unexpected error %q", got)
		}
		if !m.Output().HasResult() {
			t.Fatal("a failed copy must not clear the result")
		}
	})
}
