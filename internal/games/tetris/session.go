package tetris

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Status is the session state.
type Status string

const (
	StatusRunning  Status = "running"
	StatusGameOver Status = "game_over"
)

// Command is a discrete input delivered by the frontend.
type Command int

const (
	CmdMoveLeft Command = iota + 1
	CmdMoveRight
	CmdRotate
	CmdSoftDropOn
	CmdSoftDropOff
	CmdRestart
	CmdQuit
)

var commandNames = map[Command]string{
	CmdMoveLeft:    "move_left",
	CmdMoveRight:   "move_right",
	CmdRotate:      "rotate",
	CmdSoftDropOn:  "soft_drop_on",
	CmdSoftDropOff: "soft_drop_off",
	CmdRestart:     "restart",
	CmdQuit:        "quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// Session owns the board and the falling figure and advances them one tick
// at a time. It is not safe for concurrent use; the frontend drives it from
// a single loop.
type Session struct {
	size          Size
	spawn         Point
	lineScores    map[int]int
	linesPerLevel int
	rng           *rand.Rand
	logger        *log.Logger

	board  *Board
	figure *Figure

	tick       uint64
	status     Status
	score      int
	level      int
	levelLines int // rows cleared since the last level up
	totalLines int
	softDrop   bool
	quit       bool
	pending    []Command
}

// NewSession builds a running session with an empty board and no figure.
// A nil logger discards output.
func NewSession(cfg config.TetrisConfig, rng *rand.Rand, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("tetris: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("tetris: nil random source")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	size := Size{Cols: cfg.Grid.Cols, Rows: cfg.Grid.Rows}
	spawn, err := size.Point(cfg.Spawn.Col, cfg.Spawn.Row)
	if err != nil {
		return nil, fmt.Errorf("tetris: spawn point: %w", err)
	}

	scores := make(map[int]int, len(cfg.Scoring.LineScores))
	for rows, pts := range cfg.Scoring.LineScores {
		scores[rows] = pts
	}

	return &Session{
		size:          size,
		spawn:         spawn,
		lineScores:    scores,
		linesPerLevel: cfg.Scoring.LinesPerLevel,
		rng:           rng,
		logger:        logger,
		board:         NewBoard(size),
		status:        StatusRunning,
		level:         1,
	}, nil
}

// Board exposes the playfield. Callers must not mutate it outside Tick.
func (s *Session) Board() *Board { return s.board }

// Figure returns the falling piece, or nil between a freeze and the next
// spawn.
func (s *Session) Figure() *Figure { return s.figure }

// Status returns the current state.
func (s *Session) Status() Status { return s.status }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// Quit reports whether a quit command has been processed.
func (s *Session) Quit() bool { return s.quit }

// Submit queues cmd for the next Tick.
func (s *Session) Submit(cmd Command) {
	s.pending = append(s.pending, cmd)
}

// Tick advances the session by one frame. gravity is true on the frames
// where the figure falls one row on its own.
func (s *Session) Tick(gravity bool) {
	s.tick++
	cmds := s.pending
	s.pending = nil

	for _, cmd := range cmds {
		switch cmd {
		case CmdRestart:
			s.restart()
		case CmdQuit:
			s.quit = true
		case CmdSoftDropOn:
			s.softDrop = true
		case CmdSoftDropOff:
			s.softDrop = false
		}
	}

	if s.status == StatusGameOver {
		return
	}

	if s.figure == nil && !s.spawnFigure() {
		return
	}

	for _, cmd := range cmds {
		switch cmd {
		case CmdMoveLeft:
			s.figure.MoveLeft(s.board)
		case CmdMoveRight:
			s.figure.MoveRight(s.board)
		case CmdRotate:
			s.figure.Rotate()
		}
	}

	if s.board.CheckVerticalCollision(s.figure) {
		s.lockFigure()
	} else if gravity || s.softDrop {
		s.figure.MoveDown()
	}

	if s.board.GameOver() {
		s.status = StatusGameOver
		s.logger.Debug("game over", "score", s.score, "level", s.level, "lines", s.totalLines)
	}
}

func (s *Session) spawnFigure() bool {
	fig, err := SpawnFigure(s.rng, s.spawn, s.size)
	if err != nil {
		// Validated configs always leave room at the spawn point.
		s.logger.Error("spawn failed", "error", err)
		s.status = StatusGameOver
		return false
	}
	s.figure = fig
	s.logger.Debug("spawn", "shape", fig.Shape(), "color", fig.Color())
	return true
}

func (s *Session) lockFigure() {
	s.board.Freeze(s.figure)
	s.logger.Debug("freeze", "shape", s.figure.Shape(), "anchor", s.figure.Anchor())
	s.figure = nil

	rows := s.board.ClearFullRows()
	if rows == 0 {
		return
	}

	pts, ok := s.lineScores[rows]
	if !ok {
		s.logger.Error("no score for cleared rows", "rows", rows)
	}
	s.score += pts
	s.levelLines += rows
	s.totalLines += rows
	s.logger.Debug("rows cleared", "rows", rows, "points", pts, "score", s.score)

	if s.levelLines%s.linesPerLevel == 0 {
		s.level++
		s.levelLines = 0
		s.logger.Debug("level up", "level", s.level)
	}
}

// restart empties the board and spawns a fresh figure. Level and line
// counters carry over into the new game.
func (s *Session) restart() {
	s.status = StatusRunning
	s.score = 0
	s.board.Clear()
	s.figure = nil
	s.logger.Debug("restart", "level", s.level)
	s.spawnFigure()
}
