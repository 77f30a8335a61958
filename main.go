// Command dungeon-arcanum runs the game in the local terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"dungeon-arcanum/internal/config"
	"dungeon-arcanum/internal/play"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file")
	seed := flag.Int64("seed", 0, "Dungeon seed (0 = current time)")
	locale := flag.String("locale", "", "Message language (en, es); overrides the config")
	debug := flag.Bool("debug", false, "Enable debug logging")
	printConfig := flag.Bool("print-config", false, "Print the effective config as YAML and exit")
	flag.Parse()

	if err := run(*cfgPath, *seed, *locale, *debug, *printConfig); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string, seed int64, locale string, debug, printConfig bool) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if locale != "" {
		cfg.Locale = locale
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if printConfig {
		b, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(b)
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log, closeLog := openLog(debug)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	saves, closeStore, err := cfg.Save.OpenStore(ctx)
	if err != nil {
		return fmt.Errorf("open save store: %w", err)
	}
	defer closeStore()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	sess, err := play.New(screen, play.Options{
		Config: cfg,
		Store:  saves,
		Logger: log,
		Seed:   seed,
	})
	if err != nil {
		return err
	}
	if err := sess.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// openLog writes to the XDG state dir, since the terminal belongs to the
// game. When the file cannot be opened, logging is disabled.
func openLog(debug bool) (zerolog.Logger, func()) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	dir, err := stateDir()
	if err != nil {
		return zerolog.Nop(), func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "game.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}
	}
	log := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return log, func() { _ = f.Close() }
}

// stateDir returns $XDG_STATE_HOME/dungeon-arcanum, falling back to
// ~/.local/state/dungeon-arcanum.
func stateDir() (string, error) {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "dungeon-arcanum"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", "dungeon-arcanum"), nil
}
