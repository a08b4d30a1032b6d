package tetris

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// gravityWrap bounds the frame counter; gravity still fires on every
// interval because the bound is a multiple of it.
const gravityWrap = 1000

// Game adapts a Session to the frontend's tick loop: it maps input actions
// to commands, paces gravity, handles pause and draws into a core.Screen.
type Game struct {
	cfg     config.TetrisConfig
	logger  *log.Logger
	id      string
	rng     *rand.Rand
	session *Session

	frame    int // gravity counter, wraps at interval*gravityWrap
	interval int

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New returns an unstarted game; call Reset before Step. A nil logger
// discards output.
func New(cfg config.TetrisConfig, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("tetris: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, logger: logger}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// SessionID returns the id of the current run, new on every Reset.
func (g *Game) SessionID() string { return g.id }

// Session exposes the underlying state machine.
func (g *Game) Session() *Session { return g.session }

// Reset starts a new run seeded from rc.Seed. A positive rc.TickRate
// replaces the configured tick rate.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate > 0 {
		g.cfg.Timing.TickRate = rc.TickRate
	}
	g.id = uuid.NewString()
	g.rng = rand.New(rand.NewSource(rc.Seed))

	session, err := NewSession(g.cfg, g.rng, g.logger.With("game", g.id))
	if err != nil {
		// New already validated the config.
		panic(fmt.Sprintf("tetris: reset: %v", err))
	}
	g.session = session

	g.frame = 0
	g.interval = g.cfg.Timing.GravityInterval()
	g.paused = false
	g.Resize(rc.ScreenW, rc.ScreenH)

	g.logger.Debug("reset", "game", g.id, "seed", rc.Seed, "gravity_every", g.interval)
}

// Resize records a new terminal size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.MinSize()
	g.tooSmall = w < minW || h < minH
}

var actionCommands = map[core.Action]Command{
	core.ActionLeft:            CmdMoveLeft,
	core.ActionRight:           CmdMoveRight,
	core.ActionRotate:          CmdRotate,
	core.ActionSoftDrop:        CmdSoftDropOn,
	core.ActionSoftDropRelease: CmdSoftDropOff,
	core.ActionRestart:         CmdRestart,
	core.ActionQuit:            CmdQuit,
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.session.Status() == StatusRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		if cmd, ok := actionCommands[a]; ok {
			g.session.Submit(cmd)
		}
	}

	g.frame++
	if g.frame >= g.interval*gravityWrap {
		g.frame = 0
	}
	g.session.Tick(g.frame%g.interval == 0)

	return core.StepResult{State: g.State()}
}

// State returns the coarse state the platform needs.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Status() == StatusGameOver,
		Paused:   g.paused || g.tooSmall,
		Quit:     g.session.Quit(),
	}
}

// Paused reports whether the player paused the game.
func (g *Game) Paused() bool { return g.paused }

// Snapshot returns the session snapshot.
func (g *Game) Snapshot() Snapshot { return g.session.Snapshot() }
