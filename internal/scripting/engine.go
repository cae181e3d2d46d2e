package scripting

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/DomWilliams0/minecraft-fs/internal/mcfs"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM with the mc API preloaded.
// Single-goroutine access only.
type Engine struct {
	vm    *lua.LState
	mount *mcfs.Mount
	out   io.Writer
	log   *zap.Logger
}

// NewEngine creates a Lua VM bound to mount. Script output from print and
// mc.print goes to out.
func NewEngine(mount *mcfs.Mount, out io.Writer, log *zap.Logger) *Engine {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, mount: mount, out: out, log: log}
	e.register()
	return e
}

func (e *Engine) Close() {
	e.vm.Close()
}

// LoadDir loads all .lua files in a directory, in name order. A missing
// directory is not an error.
func (e *Engine) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// RunFile executes the script at path with args exposed as the global arg
// table (arg[0] is the script path).
func (e *Engine) RunFile(path string, args []string) error {
	t := e.vm.NewTable()
	t.RawSetInt(0, lua.LString(path))
	for i, a := range args {
		t.RawSetInt(i+1, lua.LString(a))
	}
	e.vm.SetGlobal("arg", t)

	if err := e.vm.DoFile(path); err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}
	return nil
}

func (e *Engine) RunString(src string) error {
	if err := e.vm.DoString(src); err != nil {
		return fmt.Errorf("run script: %w", err)
	}
	return nil
}

// luaPrint replaces the builtin print so script output follows the engine's
// writer instead of the process stdout.
func (e *Engine) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(e.out, strings.Join(parts, "\t"))
	return 0
}
