// Package play runs one interactive game on a tcell screen: it feeds key
// presses into the simulation at a fixed tick and draws every frame.
package play

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"dungeon-arcanum/internal/config"
	"dungeon-arcanum/internal/game"
	"dungeon-arcanum/internal/i18n"
	"dungeon-arcanum/internal/render"
	"dungeon-arcanum/internal/store"
)

// Options configures a Session.
type Options struct {
	Config  config.Config
	Store   store.Store
	Catalog *i18n.Catalog
	Logger  zerolog.Logger
	Seed    int64
	// Now defaults to time.Now.
	Now func() time.Time
	// RunLog receives the stats of every finished run. Defaults to
	// game.SaveRunLog.
	RunLog func(game.RunLog)
}

// Session is one player's game bound to one screen.
type Session struct {
	screen   tcell.Screen
	renderer *render.Renderer
	state    *game.State
	input    *Input
	messages *MessageLog
	seeds    *rand.Rand
	opts     Options
	lastTick time.Time
	// runLogged is set once the current run's stats were written.
	runLogged bool
}

// New generates the first dungeon and prepares the screen.
func New(screen tcell.Screen, opts Options) (*Session, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RunLog == nil {
		opts.RunLog = game.SaveRunLog
	}
	if opts.Catalog == nil {
		cat, err := i18n.New(opts.Config.Locale)
		if err != nil {
			return nil, err
		}
		opts.Catalog = cat
	}
	st, err := game.New(opts.Config.Rules, opts.Seed)
	if err != nil {
		return nil, err
	}
	s := &Session{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		state:    st,
		input:    NewInput(opts.Config.Loop.HoldWindow),
		messages: NewMessageLog(opts.Config.Loop.LogLines),
		seeds:    rand.New(rand.NewSource(opts.Seed)),
		opts:     opts,
	}
	s.lastTick = opts.Now()
	s.say("GAME_STARTED")
	s.opts.Logger.Info().Int64("seed", opts.Seed).Msg("game started")
	return s, nil
}

// State returns the running game.
func (s *Session) State() *game.State { return s.state }

// Messages returns the HUD log, newest first.
func (s *Session) Messages() []string { return s.messages.Lines() }

func (s *Session) say(key string, args ...any) {
	s.messages.Add(s.opts.Now(), s.opts.Catalog.Get(key, args...))
}

// Run drives the session until the player quits, the screen closes or ctx
// is done. An async reader goroutine forwards screen events; the loop
// steps the simulation on every tick.
func (s *Session) Run(ctx context.Context) error {
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			select {
			case eventCh <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(s.opts.Config.TickInterval())
	defer ticker.Stop()
	defer s.finishRun()

	s.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventCh:
			if !ok {
				return nil // screen closed / disconnected
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.screen.Sync()
				s.renderer.Resize()
				s.Draw()
			case *tcell.EventKey:
				if s.HandleKey(ctx, ev) {
					return nil
				}
			}
		case <-ticker.C:
			s.Tick()
			s.Draw()
		}
	}
}

// HandleKey applies one key press and reports whether the player quit.
func (s *Session) HandleKey(ctx context.Context, ev *tcell.EventKey) bool {
	now := s.opts.Now()
	switch a := keyToAction(ev); a {
	case ActionQuit:
		return true
	case ActionSave:
		s.save(ctx)
	case ActionLoad:
		s.load(ctx)
	case ActionReset:
		s.reset()
	case ActionNone:
	default:
		s.input.Press(a, now)
	}
	return false
}

// Tick advances the simulation by the wall-clock time since the last tick.
func (s *Session) Tick() {
	now := s.opts.Now()
	dt := now.Sub(s.lastTick).Seconds()
	s.lastTick = now

	events := s.state.Step(dt, s.input.Intent(now))
	for _, ev := range events {
		s.messages.Add(now, s.opts.Catalog.Event(ev))
		if ev.Kind == game.EventPlayerDied {
			s.opts.Logger.Info().Int("score", ev.Score).Int("level", s.state.Level).Msg("player died")
			s.finishRun()
		}
	}
}

// Draw renders the current frame.
func (s *Session) Draw() {
	s.renderer.DrawFrame(s.state)
	s.renderer.DrawHUD(s.state, s.opts.Catalog, s.messages.Lines())
}

func (s *Session) save(ctx context.Context) {
	key := s.opts.Config.Save.Key
	if err := game.Save(ctx, s.opts.Store, key, s.state); err != nil {
		s.opts.Logger.Warn().Err(err).Str("key", key).Msg("save failed")
		s.say("SAVE_FAILED")
		return
	}
	s.opts.Logger.Info().Str("key", key).Int("score", s.state.Score).Msg("game saved")
	s.say("GAME_SAVED")
}

// load swaps in the saved game only when it restores cleanly.
func (s *Session) load(ctx context.Context) {
	key := s.opts.Config.Save.Key
	st, err := game.Load(ctx, s.opts.Store, key, s.opts.Config.Rules, s.seeds.Int63())
	var snapErr *game.SnapshotError
	switch {
	case errors.Is(err, game.ErrNoSave):
		s.say("NO_SAVE")
		return
	case errors.As(err, &snapErr):
		s.opts.Logger.Warn().Err(err).Str("key", key).Msg("rejected malformed save")
		s.say("LOAD_FAILED")
		return
	case err != nil:
		s.opts.Logger.Warn().Err(err).Str("key", key).Msg("load failed")
		s.say("LOAD_FAILED")
		return
	}
	s.finishRun()
	s.state = st
	s.runLogged = !st.Running
	s.input.Release()
	s.opts.Logger.Info().Str("key", key).Int("score", st.Score).Msg("game loaded")
	s.say("GAME_LOADED")
}

func (s *Session) reset() {
	s.finishRun()
	if err := s.state.Reset(); err != nil {
		// Rules were validated by game.New, so this only fires on a
		// map that came out without floor.
		s.opts.Logger.Warn().Err(err).Msg("reset failed")
		return
	}
	s.runLogged = false
	s.input.Release()
	s.opts.Logger.Info().Msg("map regenerated")
	s.say("MAP_RESET")
}

// finishRun writes the current run's stats once, if anything happened.
func (s *Session) finishRun() {
	if s.runLogged || s.state.Stats.Seconds == 0 {
		return
	}
	s.runLogged = true
	s.opts.RunLog(s.state.Stats)
}
