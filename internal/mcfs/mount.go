// Package mcfs is a typed client for a live Minecraft game exposed as a
// mounted filesystem. Reading a field file returns the game's current state
// and writing one mutates it, so every accessor in this package performs a
// fresh round-trip; nothing is cached.
package mcfs

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Mount is the root of a mounted game tree. It is immutable after Open and
// safe to share between any number of proxies.
type Mount struct {
	root string
	log  *zap.Logger
}

// Option configures a Mount.
type Option func(*Mount)

// WithLogger makes the mount trace every primitive at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(m *Mount) {
		if log != nil {
			m.log = log
		}
	}
}

// Open validates root and returns a Mount for it. Only the root directory and
// the player subtree are checked here; everything else is discovered lazily.
func Open(root string, opts ...Option) (*Mount, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: mount dir %q is invalid", ErrInvalidMount, root)
	}

	// mild validation
	player, err := os.Stat(filepath.Join(root, playerDir))
	if err != nil || !player.IsDir() {
		return nil, fmt.Errorf("%w: mount dir %q missing player dir, sure it's a mount point?", ErrInvalidMount, root)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		abs = filepath.Clean(root)
	}

	m := &Mount{root: abs, log: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Root returns the absolute mount directory.
func (m *Mount) Root() string { return m.root }
