// Package demo holds the scenarios runnable from the mcfs command. Each is a
// thin call site over the mcfs proxies.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/DomWilliams0/minecraft-fs/internal/config"
	"github.com/DomWilliams0/minecraft-fs/internal/mcfs"
	"go.uber.org/zap"
)

var errNoPlayer = errors.New("no player in game")

// Env is everything a scenario may use.
type Env struct {
	Ctx    context.Context
	Mount  *mcfs.Mount
	Config *config.Config
	Log    *zap.Logger
	Out    io.Writer
	Args   []string
}

// Demo is a named scenario.
type Demo struct {
	Name  string
	Usage string
	Run   func(env *Env) error
}

var registry = map[string]Demo{
	"teleport-all": {Name: "teleport-all", Usage: "teleport every living entity to the player", Run: teleportAll},
	"kill-all":     {Name: "kill-all", Usage: "kill every living entity except the player", Run: killAll},
	"nearest":      {Name: "nearest", Usage: "[-n count] list the living entities closest to the player", Run: nearest},
	"place-blocks": {Name: "place-blocks", Usage: "[-pattern file.yaml] [-type block] build a pattern at the player", Run: placeBlocks},
	"census":       {Name: "census", Usage: "[-world w] [-db file] count entities by type", Run: census},
	"player":       {Name: "player", Usage: "show the current player", Run: player},
	"time":         {Name: "time", Usage: "[-world w] [ticks] show or set the time of day", Run: worldTime},
	"say":          {Name: "say", Usage: "<message...> chat as the player", Run: say},
	"script":       {Name: "script", Usage: "<file.lua> [args...] run a Lua script", Run: script},
}

func Lookup(name string) (Demo, bool) {
	d, ok := registry[name]
	return d, ok
}

// Names returns every demo name in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// world is the world a scenario targets when none is given on the command
// line; empty means the player's current world.
func (env *Env) world() string {
	if env.Config == nil {
		return ""
	}
	return env.Config.Demo.DefaultWorld
}

func (env *Env) printf(format string, args ...any) {
	fmt.Fprintf(env.Out, format, args...)
}

// skip reports a per-entity I/O failure and returns true so batch scenarios
// can carry on. Any other error is left for the caller to return.
func (env *Env) skip(action string, id int, err error) bool {
	var ioErr *mcfs.IOError
	if !errors.As(err, &ioErr) {
		return false
	}
	env.printf("failed to %s %d: %v\n", action, id, err)
	env.Log.Warn("entity skipped", zap.String("action", action), zap.Int("id", id), zap.Error(err))
	return true
}
