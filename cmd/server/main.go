// Command server hosts Dungeon Arcanum over SSH. Every connection gets its
// own dungeon, drawn on the client's terminal through a tcell screen.
//
//	go run ./cmd/server --port 2222
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	mathrand "math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	xssh "golang.org/x/crypto/ssh"
	"golang.org/x/sync/errgroup"

	"dungeon-arcanum/internal/config"
	"dungeon-arcanum/internal/game"
	"dungeon-arcanum/internal/i18n"
	"dungeon-arcanum/internal/play"
	internalssh "dungeon-arcanum/internal/ssh"
	"dungeon-arcanum/internal/store"
)

const (
	maxNameBytes = 16
	defaultTerm  = "xterm-256color"
	shutdownWait = 5 * time.Second
)

// allowedTerms lists the terminal types handed to terminfo. Anything else
// falls back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (generated if absent)")
	cfgPath := flag.String("config", "", "YAML config file")
	seed := flag.Int64("seed", 0, "Dungeon seed for every session (0 = random per session)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()

	if err := run(log, *port, *keyFile, *cfgPath, *seed); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(log zerolog.Logger, port int, keyFile, cfgPath string, seed int64) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	signer, err := loadOrCreateHostKey(log, keyFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	saves, closeStore, err := cfg.Save.OpenStore(ctx)
	if err != nil {
		return fmt.Errorf("open save store: %w", err)
	}
	defer closeStore()

	h := &host{cfg: cfg, saves: saves, log: log, seed: seed}
	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", port),
		Handler:     h.handleSession,
		HostSigners: []gossh.Signer{signer},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Int("port", port).Str("backend", cfg.Save.Backend).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownWait)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return srv.Close()
		}
		return nil
	})
	return g.Wait()
}

// host holds what every session shares.
type host struct {
	cfg   config.Config
	saves store.Store
	log   zerolog.Logger
	seed  int64
}

func (h *host) handleSession(s gossh.Session) {
	name := sanitizeName(s.User())
	if name == "" {
		name = "player"
	}
	log := h.log.With().
		Str("session", uuid.NewString()).
		Str("user", name).
		Str("remote", s.RemoteAddr().String()).
		Logger()

	term := internalssh.Env(s.Environ(), "TERM")
	if !allowedTerms[term] {
		log.Debug().Str("term", term).Msg("unsupported TERM, using default")
		term = defaultTerm
	}
	screen, err := internalssh.NewScreen(s, term)
	if err != nil {
		if errors.Is(err, internalssh.ErrNoPTY) {
			fmt.Fprintln(s, "This game needs a PTY. Connect with: ssh -t -p <port> <host>")
		} else {
			fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		}
		log.Warn().Err(err).Msg("session rejected")
		_ = s.Exit(1)
		return
	}
	defer screen.Fini()

	cfg := h.cfg
	cfg.Save.Key = saveKey(cfg.Save.Key, s.User())
	if lang := internalssh.Env(s.Environ(), "LANG"); lang != "" {
		cfg.Locale = lang
	}
	cat, err := catalogFor(cfg.Locale, h.cfg.Locale)
	if err != nil {
		fmt.Fprintf(s, "Could not load messages: %v\n", err)
		log.Error().Err(err).Msg("locale unavailable")
		_ = s.Exit(1)
		return
	}

	seed := h.seed
	if seed == 0 {
		seed = mathrand.Int63()
	}
	sess, err := play.New(screen, play.Options{
		Config:  cfg,
		Store:   h.saves,
		Catalog: cat,
		Logger:  log,
		Seed:    seed,
		RunLog: func(r game.RunLog) {
			log.Info().
				Int("score", r.Score).
				Int("kills", r.EnemiesKilled).
				Float64("seconds", r.Seconds).
				Bool("died", r.Died).
				Msg("run finished")
		},
	})
	if err != nil {
		fmt.Fprintf(s, "Could not start game: %v\n", err)
		log.Error().Err(err).Msg("game init failed")
		_ = s.Exit(1)
		return
	}
	log.Info().Str("term", term).Str("locale", cat.Language()).Msg("connected")
	if err := sess.Run(s.Context()); err != nil && !errors.Is(err, context.Canceled) {
		log.Warn().Err(err).Msg("session ended with error")
	}
	log.Info().Msg("disconnected")
}

// catalogFor loads the client's language, falling back to the server's
// configured one when the client asks for a language without a catalog.
func catalogFor(client, fallback string) (*i18n.Catalog, error) {
	if cat, err := i18n.New(client); err == nil {
		return cat, nil
	}
	return i18n.New(fallback)
}

// sanitizeName drops control characters and caps the result at
// maxNameBytes without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// saveKey derives a per-user save slot that is safe as a file name. The
// readable part is lossy, so a hash of the raw user name keeps distinct
// users in distinct slots.
func saveKey(base, user string) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteByte('_')
	for _, r := range sanitizeName(user) {
		switch {
		case r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)), r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	b.WriteByte('_')
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(user))
	b.WriteString(strings.ReplaceAll(id.String(), "-", "")[:12])
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key when the file is absent or unreadable.
func loadOrCreateHostKey(log zerolog.Logger, path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info().Str("path", path).Msg("loaded host key")
			return signer, nil
		}
	}

	log.Info().Str("path", path).Msg("generating ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "dungeon-arcanum server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		// The key still works for this run; clients will just see a new one next time.
		log.Warn().Err(err).Msg("host key not persisted")
	}
	return signer, nil
}
