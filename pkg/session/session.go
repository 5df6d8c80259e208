package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/blockfall/pkg/leaderboard"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/queue"
	"github.com/cbodonnell/blockfall/pkg/tetris"
	"github.com/google/uuid"
)

// ErrLeaderboardUnavailable is reported when the session has no leaderboard.
var ErrLeaderboardUnavailable = errors.New("leaderboard unavailable")

const (
	DefaultTopScoresLimit = leaderboard.DefaultLimit
	DefaultTimeout        = 5 * time.Second
	// cueBufferSize bounds the cues kept for a presenter that does not drain them.
	cueBufferSize = 64
)

type Options struct {
	// Engine is created from EngineOptions when nil.
	Engine        *tetris.Engine
	EngineOptions tetris.EngineOptions
	// Leaderboard may be nil, in which case scores are not saved.
	Leaderboard leaderboard.Leaderboard
	// TopScoresLimit is the number of entries fetched for display.
	TopScoresLimit int
	// Timeout bounds every leaderboard call.
	Timeout time.Duration
	Logger  *log.Logger
}

// Session drives one player's games from the menu through play to the game
// over screen. Presenters feed it actions and elapsed time and render from its
// read-only views. Session is not safe for concurrent use.
type Session struct {
	id          uuid.UUID
	mode        Mode
	engine      *tetris.Engine
	leaderboard leaderboard.Leaderboard
	limit       int
	timeout     time.Duration
	baseLogger  *log.Logger
	logger      *log.Logger

	elapsed time.Duration
	cues    *queue.InMemoryQueue[Cue]
	quit    bool

	name         []rune
	saved        bool
	saveErr      error
	topScores    []leaderboard.Entry
	topScoresErr error
}

type handler func(s *Session, ctx context.Context, action Action)

var handlers = [...]handler{
	ModeMenu:     (*Session).handleMenu,
	ModePlaying:  (*Session).handlePlaying,
	ModeGameOver: (*Session).handleGameOver,
}

func New(opts Options) (*Session, error) {
	engine := opts.Engine
	if engine == nil {
		var err error
		engine, err = tetris.NewEngine(opts.EngineOptions)
		if err != nil {
			return nil, fmt.Errorf("failed to create engine: %w", err)
		}
	}
	limit := opts.TopScoresLimit
	if limit == 0 {
		limit = DefaultTopScoresLimit
	}
	if err := leaderboard.ValidateLimit(limit); err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Session{
		mode:        ModeMenu,
		engine:      engine,
		leaderboard: opts.Leaderboard,
		limit:       limit,
		timeout:     timeout,
		baseLogger:  logger,
		cues:        queue.NewInMemoryQueue[Cue](cueBufferSize),
	}
	s.newID()
	s.RefreshTopScores(context.Background())
	return s, nil
}

func (s *Session) newID() {
	s.id = uuid.New()
	s.logger = s.baseLogger.WithField("session", s.id.String())
}

// Handle applies action in the current mode. Actions that mean nothing in the
// current mode are ignored.
func (s *Session) Handle(ctx context.Context, action Action) {
	if action == ActionNone {
		return
	}
	if action == ActionQuit {
		s.logger.Debug("Quit requested from %s", s.mode)
		s.quit = true
		return
	}
	handlers[s.mode](s, ctx, action)
}

func (s *Session) handleMenu(ctx context.Context, action Action) {
	switch action {
	case ActionConfirm:
		s.startGame()
	case ActionCancel:
		s.quit = true
	}
}

func (s *Session) handlePlaying(ctx context.Context, action Action) {
	switch action {
	case ActionLeft:
		s.engine.MoveLeft()
	case ActionRight:
		s.engine.MoveRight()
	case ActionRotate:
		if s.engine.Rotate() {
			s.cue(CueRotate)
		}
	case ActionSoftDrop:
		result := s.engine.SoftDrop()
		s.awardDrop(result.Distance)
		s.afterDrop(ctx, result)
	case ActionHardDrop:
		result := s.engine.HardDrop()
		s.awardDrop(2 * result.Distance)
		s.afterDrop(ctx, result)
	case ActionCancel:
		s.logger.Info("Game forfeited with score %d", s.engine.Score())
		s.enterGameOver(ctx)
	}
}

func (s *Session) handleGameOver(ctx context.Context, action Action) {
	if s.NameEntryActive() {
		switch action {
		case ActionBackspace:
			if len(s.name) > 0 {
				s.name = s.name[:len(s.name)-1]
			}
		case ActionConfirm:
			if len(s.name) > 0 {
				s.save(ctx)
			}
		case ActionCancel:
			s.enterMenu(ctx)
		}
		return
	}

	switch action {
	case ActionConfirm:
		s.startGame()
	case ActionCancel:
		s.enterMenu(ctx)
	}
}

// TypeRune appends r to the player name while it is being entered.
// It reports whether r was accepted.
func (s *Session) TypeRune(r rune) bool {
	if s.mode != ModeGameOver || !s.NameEntryActive() {
		return false
	}
	if !leaderboard.IsNameRune(r) || len(s.name) >= leaderboard.MaxNameLength {
		return false
	}
	s.name = append(s.name, r)
	return true
}

// SetName replaces the name being entered, dropping characters the
// leaderboard would not accept.
func (s *Session) SetName(name string) {
	if s.mode != ModeGameOver || !s.NameEntryActive() {
		return
	}
	s.name = s.name[:0]
	for _, r := range name {
		s.TypeRune(r)
	}
}

// Advance moves time forward by dt, dropping the current piece one row for
// every elapsed gravity interval.
func (s *Session) Advance(ctx context.Context, dt time.Duration) {
	if s.mode != ModePlaying || dt <= 0 {
		return
	}
	s.elapsed += dt
	for s.mode == ModePlaying {
		interval := GravityInterval(s.engine.Score())
		if s.elapsed < interval {
			return
		}
		s.elapsed -= interval
		s.afterDrop(ctx, s.engine.SoftDrop())
	}
}

func (s *Session) awardDrop(rows int) {
	if rows == 0 {
		return
	}
	if err := s.engine.AddDropPoints(rows); err != nil {
		s.logger.Error("Failed to award drop points: %v", err)
	}
}

func (s *Session) afterDrop(ctx context.Context, result tetris.DropResult) {
	if !result.Locked {
		return
	}
	s.cue(CueLock)
	if result.Lock.RowsCleared > 0 {
		s.cue(CueClear)
		s.logger.Debug("Cleared %d rows for %d points", result.Lock.RowsCleared, result.Lock.Points)
	}
	if result.Lock.GameOver {
		s.logger.Info("Game over with score %d", s.engine.Score())
		s.enterGameOver(ctx)
	}
}

func (s *Session) startGame() {
	s.engine.Reset()
	s.newID()
	s.elapsed = 0
	s.name = nil
	s.saved = false
	s.saveErr = nil
	s.mode = ModePlaying
	s.logger.Info("Game started")
}

func (s *Session) enterGameOver(ctx context.Context) {
	s.mode = ModeGameOver
	s.elapsed = 0
	s.name = nil
	s.saved = false
	s.saveErr = nil
	s.cue(CueGameOver)
	s.RefreshTopScores(ctx)
}

func (s *Session) enterMenu(ctx context.Context) {
	s.mode = ModeMenu
	s.RefreshTopScores(ctx)
}

func (s *Session) save(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	name := string(s.name)
	score := s.engine.Score()
	if err := s.leaderboard.AddScore(ctx, name, score); err != nil {
		s.logger.Error("Failed to save score %d for %s: %v", score, name, err)
		s.saveErr = err
		return
	}
	s.logger.Info("Saved score %d for %s", score, name)
	s.saved = true
	s.saveErr = nil
	s.cue(CueSaved)
	s.RefreshTopScores(ctx)
}

// RefreshTopScores reloads the displayed leaderboard.
func (s *Session) RefreshTopScores(ctx context.Context) {
	if s.leaderboard == nil {
		s.topScores = nil
		s.topScoresErr = ErrLeaderboardUnavailable
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	entries, err := s.leaderboard.TopScores(ctx, s.limit)
	if err != nil {
		s.logger.Warn("Failed to load top scores: %v", err)
		s.topScoresErr = err
		return
	}
	s.topScores = entries
	s.topScoresErr = nil
}

func (s *Session) cue(c Cue) {
	if !s.cues.Enqueue(c) {
		s.logger.Trace("Dropped %s cue", c)
	}
}

// Cues returns the cues raised since the last call.
func (s *Session) Cues() []Cue {
	return s.cues.ReadAll()
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) Engine() *tetris.Engine {
	return s.engine
}

func (s *Session) Level() Level {
	return LevelFor(s.engine.Score())
}

func (s *Session) Name() string {
	return string(s.name)
}

// NameEntryActive reports whether the game over screen is collecting a name.
func (s *Session) NameEntryActive() bool {
	return s.mode == ModeGameOver && s.leaderboard != nil && !s.saved
}

func (s *Session) Saved() bool {
	return s.saved
}

func (s *Session) SaveError() error {
	return s.saveErr
}

// TopScores returns the entries last loaded from the leaderboard.
func (s *Session) TopScores() []leaderboard.Entry {
	return s.topScores
}

func (s *Session) TopScoresError() error {
	return s.topScoresErr
}

func (s *Session) QuitRequested() bool {
	return s.quit
}
