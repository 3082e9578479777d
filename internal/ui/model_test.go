package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/olivier-w/ringbar/internal/ring"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestModel(progress int, animate bool) Model {
	return New(Options{
		Style:    ring.DefaultStyle(),
		Progress: progress,
		Animate:  animate,
		Step:     10,
		FPS:      60,
		Profile:  termenv.Ascii,
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return model, cmd
}

func TestViewShowsStaticProgressLabel(t *testing.T) {
	m := newTestModel(75, false)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})

	if m.ticking {
		t.Fatal("expected no frame loop for a static ring")
	}
	if got := m.Bar().State().Current; got != 270 {
		t.Fatalf("expected current angle 270, got %v", got)
	}
	view := m.View()
	if !strings.Contains(view, "75%") {
		t.Fatalf("expected 75%% label in view:\n%s", view)
	}
	if !strings.Contains(view, "idle") {
		t.Fatalf("expected idle status in view:\n%s", view)
	}
}

func TestAnimatedStartRunsFrameLoopUntilDone(t *testing.T) {
	m := newTestModel(50, true)
	if !m.ticking {
		t.Fatal("expected frame loop for an animated start")
	}
	if m.Init() == nil {
		t.Fatal("expected init command")
	}

	m, cmd := update(t, m, frameMsg(epoch))
	if cmd == nil {
		t.Fatal("expected another frame while opening")
	}
	m, cmd = update(t, m, frameMsg(epoch.Add(ring.OpenDuration)))
	if cmd != nil {
		t.Fatal("expected the frame loop to stop after the sweep")
	}
	if m.ticking {
		t.Fatal("expected ticking cleared")
	}
	if got := m.Bar().State().Current; got != 180 {
		t.Fatalf("expected settled angle 180, got %v", got)
	}
}

func TestProcessingKeysStartAndStop(t *testing.T) {
	m := newTestModel(30, false)

	m, cmd := update(t, m, runes("p"))
	if cmd == nil {
		t.Fatal("expected frame loop to start")
	}
	if !m.Bar().ProcessingActive() {
		t.Fatal("expected processing animation")
	}
	if got := m.Bar().State().End; got != ring.PercentToAngle(40) {
		t.Fatalf("expected first charge at 40%%, got %v", got)
	}

	m, cmd = update(t, m, runes("p"))
	if cmd != nil {
		t.Fatal("expected no second frame loop")
	}

	m, _ = update(t, m, runes("s"))
	if m.Bar().Animating() {
		t.Fatal("expected processing stopped")
	}
	m, cmd = update(t, m, frameMsg(epoch))
	if cmd != nil || m.ticking {
		t.Fatal("expected the pending frame to end the loop")
	}
}

func TestArrowAndDigitKeysMoveProgress(t *testing.T) {
	m := newTestModel(50, false)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Bar().State().End; got != ring.PercentToAngle(55) {
		t.Fatalf("expected 55%%, got %v", got)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Bar().State().End; got != ring.PercentToAngle(45) {
		t.Fatalf("expected 45%%, got %v", got)
	}
	m, _ = update(t, m, runes("3"))
	if got := m.Bar().State().End; got != ring.PercentToAngle(30) {
		t.Fatalf("expected 30%%, got %v", got)
	}
	m, _ = update(t, m, runes("0"))
	if got := m.Bar().State().End; got != 360 {
		t.Fatalf("expected 100%%, got %v", got)
	}
}

func TestAnimateToggleMakesSetsSweep(t *testing.T) {
	m := newTestModel(20, false)

	m, _ = update(t, m, runes("a"))
	m, cmd := update(t, m, runes("8"))
	if cmd == nil {
		t.Fatal("expected frame loop for an animated set")
	}
	if !m.Bar().State().Opening {
		t.Fatal("expected opening sweep")
	}
}

func TestColorKeyCyclesProgressColor(t *testing.T) {
	m := newTestModel(20, false)
	before := m.Bar().Style().ProgressColor

	m.cache.dirty = false
	m, _ = update(t, m, runes("c"))
	if m.Bar().Style().ProgressColor == before {
		t.Fatal("expected progress color to change")
	}
	if !m.cache.dirty {
		t.Fatal("expected the color change to invalidate the frame")
	}
}

func TestQuitStopsProcessing(t *testing.T) {
	m := newTestModel(10, false)
	m, _ = update(t, m, runes("p"))

	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.Bar().Animating() {
		t.Fatal("expected animation stopped on quit")
	}
	if m.View() != "" {
		t.Fatal("expected empty view after quit")
	}
}

func TestChargerWrapsAtFull(t *testing.T) {
	c := &charger{level: 90, step: 7}
	if got := c.next(); got != ring.PercentToAngle(97) {
		t.Fatalf("expected 97%%, got %v", got)
	}
	if got := c.next(); got != ring.PercentToAngle(7) {
		t.Fatalf("expected wrap to 7%%, got %v", got)
	}
}

func TestFrameIntervalFollowsFPS(t *testing.T) {
	got := frameInterval(50)
	if got < 19*time.Millisecond || got > 21*time.Millisecond {
		t.Fatalf("expected ~20ms per frame at 50fps, got %v", got)
	}
}
