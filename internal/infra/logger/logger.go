// Package logger owns the process-wide slog logger. Until Setup is called
// every record is discarded, so packages can log unconditionally.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const fileName = "solidlab.log"

type Config struct {
	Root  string
	Debug bool
}

type state struct {
	log      *slog.Logger
	file     *os.File
	path     string
	session  string
	initedAt time.Time
}

var (
	mu  sync.RWMutex
	cur = discardState()
)

func discardState() state {
	return state{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

// Dir returns the log directory for a workspace root.
func Dir(root string) string {
	return filepath.Join(root, ".solidlab", "logs")
}

// Setup points the global logger at <root>/.solidlab/logs/solidlab.log and
// tags every record with a fresh session id. On failure the logger stays in
// discard mode and the returned cleanup is nil.
func Setup(cfg Config) (func() error, error) {
	root := filepath.Clean(cfg.Root)

	f, path, err := openLogFile(Dir(root))
	if err != nil {
		reset()
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: utcTime,
	}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	sid := uuid.NewString()
	next := state{
		log:      slog.New(slog.NewJSONHandler(f, opts)).With("session", sid),
		file:     f,
		path:     path,
		session:  sid,
		initedAt: time.Now().UTC(),
	}

	mu.Lock()
	cur = next
	mu.Unlock()

	next.log.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	return func() error {
		mu.Lock()
		defer mu.Unlock()
		var cerr error
		if cur.file != nil {
			cerr = cur.file.Close()
		}
		cur = discardState()
		return cerr
	}, nil
}

func openLogFile(dir string) (*os.File, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", err
	}
	path := filepath.Join(dir, fileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	cur = discardState()
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return cur.log
}

// For returns the global logger tagged with a component name.
func For(component string) *slog.Logger {
	return L().With("component", component)
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.path
}

// Session returns the id attached to every record since Setup.
func Session() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.session
}

func InitTime() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return cur.initedAt
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if cur.file == nil || cur.path == "" {
		return errors.New("logger not initialized")
	}
	return nil
}
