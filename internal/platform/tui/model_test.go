package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// fakeGame records every frame it is stepped with.
type fakeGame struct {
	frames  [][]core.Action
	state   core.GameState
	resets  int
	resizes [][2]int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Resize(w, h int) { g.resizes = append(g.resizes, [2]int{w, h}) }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Render(dst *core.Screen) { dst.Clear(); dst.DrawText(0, 0, "fake screen") }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, append([]core.Action(nil), in.Actions...))
	if in.Has(core.ActionQuit) {
		g.state.Quit = true
	}
	return core.StepResult{State: g.state}
}

func newTestModel(g *fakeGame, release int) Model {
	return NewModel(g, Options{
		Runtime:              core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1},
		SoftDropReleaseTicks: release,
		ScreenshotDir:        "",
	})
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelForwardsKeysOnTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, 8)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(m, TickMsg{})
	m, _ = send(m, TickMsg{})

	if len(g.frames) != 2 {
		t.Fatalf("stepped %d times, want 2", len(g.frames))
	}
	first := g.frames[0]
	if len(first) != 2 || first[0] != core.ActionLeft || first[1] != core.ActionRotate {
		t.Errorf("first frame = %v, want [Left Rotate]", first)
	}
	if len(g.frames[1]) != 0 {
		t.Errorf("second frame = %v, want empty", g.frames[1])
	}
}

func TestModelSoftDropRelease(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, 3)

	down := tea.KeyMsg{Type: tea.KeyDown}
	m, _ = send(m, down)
	m, _ = send(m, TickMsg{})
	// Auto-repeat keeps the drop alive without new press actions.
	m, _ = send(m, down)
	m, _ = send(m, TickMsg{})
	m, _ = send(m, TickMsg{})
	m, _ = send(m, TickMsg{})

	want := [][]core.Action{
		{core.ActionSoftDrop},
		{},
		{},
		{core.ActionSoftDropRelease},
	}
	if len(g.frames) != len(want) {
		t.Fatalf("stepped %d times, want %d", len(g.frames), len(want))
	}
	for i := range want {
		if len(g.frames[i]) != len(want[i]) || (len(want[i]) > 0 && g.frames[i][0] != want[i][0]) {
			t.Errorf("frame %d = %v, want %v", i, g.frames[i], want[i])
		}
	}
}

func TestModelQuitThroughGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, 8)

	m, cmd := send(m, runeKey('q'))
	if cmd != nil {
		t.Fatal("quit should wait for the next tick")
	}
	m, cmd = send(m, TickMsg{})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("tick after quit did not return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelQuitWhilePaused(t *testing.T) {
	g := &fakeGame{state: core.GameState{Paused: true}}
	m := newTestModel(g, 8)

	_, cmd := send(m, runeKey('q'))
	if cmd == nil {
		t.Fatal("expected immediate quit while paused")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit while paused did not return tea.Quit")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, 8)

	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resets != 0 {
		t.Errorf("resize reset the game %d times", g.resets)
	}
	if len(g.resizes) != 1 || g.resizes[0] != [2]int{100, 40 - footerRows} {
		t.Errorf("resizes = %v, want [[100 %d]]", g.resizes, 40-footerRows)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40-footerRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, 8)

	view := m.View()
	if !strings.Contains(view, "fake screen") {
		t.Error("view missing game screen")
	}
	if !strings.Contains(view, "rotate") {
		t.Error("view missing help footer")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	m := NewModel(g, Options{
		Runtime:       core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 30, Seed: 1},
		ScreenshotDir: dir,
	})

	send(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "fake_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshots = %v, %v; want one file", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "fake screen") {
		t.Errorf("screenshot = %q", data)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 1, "cd")

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen rows = %d, want 2", strings.Count(out, "\n")+1)
	}
}
