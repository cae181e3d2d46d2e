// Package mcfstest builds on-disk trees shaped like the mounted game
// filesystem, for tests of packages that drive an mcfs.Mount.
package mcfstest

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/DomWilliams0/minecraft-fs/internal/mcfs"
	"github.com/stretchr/testify/require"
)

type Tree struct {
	t    testing.TB
	Root string
}

// Entity describes the field files of a fake entity.
type Entity struct {
	Type     string
	Position string
	Health   string
	Alive    bool
	Living   bool
}

// New creates a tree with an empty player directory and its control files.
func New(t testing.TB) *Tree {
	t.Helper()
	root := t.TempDir()
	tr := &Tree{t: t, Root: root}
	for _, c := range []string{mcfs.ControlSay, mcfs.ControlJump, mcfs.ControlMove} {
		tr.Write("", "player", "control", c)
	}
	return tr
}

func (tr *Tree) Path(parts ...string) string {
	return filepath.Join(append([]string{tr.Root}, parts...)...)
}

func (tr *Tree) Write(content string, parts ...string) {
	tr.t.Helper()
	p := tr.Path(parts...)
	require.NoError(tr.t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(tr.t, os.WriteFile(p, []byte(content), 0o644))
}

func (tr *Tree) Read(parts ...string) string {
	tr.t.Helper()
	b, err := os.ReadFile(tr.Path(parts...))
	require.NoError(tr.t, err)
	return string(b)
}

// World creates an empty world with time 0.
func (tr *Tree) World(name string) {
	tr.t.Helper()
	require.NoError(tr.t, os.MkdirAll(tr.Path("worlds", name, "entities", "by-id"), 0o755))
	tr.Write("0", "worlds", name, "time")
}

func (tr *Tree) EntityPath(world string, id int, field string) []string {
	return []string{"worlds", world, "entities", "by-id", strconv.Itoa(id), field}
}

func (tr *Tree) Entity(world string, id int, e Entity) {
	tr.t.Helper()
	tr.Write(e.Type, tr.EntityPath(world, id, mcfs.FieldType)...)
	tr.Write(e.Position, tr.EntityPath(world, id, mcfs.FieldPosition)...)
	tr.Write(e.Health, tr.EntityPath(world, id, mcfs.FieldHealth)...)
	if e.Alive {
		tr.Write("", tr.EntityPath(world, id, mcfs.FieldAlive)...)
	}
	if e.Living {
		tr.Write("", tr.EntityPath(world, id, mcfs.FieldLiving)...)
	}
}

// EntityField returns the current contents of an entity field file.
func (tr *Tree) EntityField(world string, id int, field string) string {
	tr.t.Helper()
	return tr.Read(tr.EntityPath(world, id, field)...)
}

func (tr *Tree) Block(world string, pos mcfs.BlockPos, typ string) {
	tr.t.Helper()
	tr.Write(typ, "worlds", world, "blocks", pos.String(), mcfs.FieldType)
}

func (tr *Tree) BlockType(world string, pos mcfs.BlockPos) string {
	tr.t.Helper()
	return tr.Read("worlds", world, "blocks", pos.String(), mcfs.FieldType)
}

// Player links player/world and player/entity, and writes player/name.
func (tr *Tree) Player(name, world string, id int) {
	tr.t.Helper()
	tr.Write(name, "player", mcfs.FieldName)
	require.NoError(tr.t, os.Symlink(filepath.Join("..", "worlds", world), tr.Path("player", "world")))
	require.NoError(tr.t, os.Symlink(filepath.Join("world", "entities", "by-id", strconv.Itoa(id)), tr.Path("player", "entity")))
}

func (tr *Tree) Mount(opts ...mcfs.Option) *mcfs.Mount {
	tr.t.Helper()
	m, err := mcfs.Open(tr.Root, opts...)
	require.NoError(tr.t, err)
	return m
}
