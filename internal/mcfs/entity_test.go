package mcfs_test

import (
	"os"
	"testing"

	"github.com/DomWilliams0/minecraft-fs/internal/mcfs"
	"github.com/DomWilliams0/minecraft-fs/internal/mcfs/mcfstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zombie() mcfstest.Entity {
	return mcfstest.Entity{Type: "zombie\n", Position: "10.5,64,-3.25", Health: "20.0", Alive: true, Living: true}
}

func zombieTree(t *testing.T) *mcfstest.Tree {
	t.Helper()
	tr := mcfstest.New(t)
	tr.World("overworld")
	tr.Entity("overworld", 7, zombie())
	return tr
}

func TestEntityReadsFields(t *testing.T) {
	e := zombieTree(t).Mount().Entity("overworld", 7)

	assert.Equal(t, 7, e.ID())
	assert.Equal(t, "overworld", e.World())

	typ, err := e.Type()
	require.NoError(t, err)
	assert.Equal(t, "zombie", typ)

	pos, err := e.Position()
	require.NoError(t, err)
	assert.Equal(t, mcfs.Position{X: 10.5, Y: 64, Z: -3.25}, pos)

	h, err := e.Health()
	require.NoError(t, err)
	assert.Equal(t, 20.0, h)

	alive, err := e.Alive()
	require.NoError(t, err)
	assert.True(t, alive)
	living, err := e.Living()
	require.NoError(t, err)
	assert.True(t, living)
}

func TestEntityRereadsEveryAccess(t *testing.T) {
	tr := zombieTree(t)
	e := tr.Mount().Entity("overworld", 7)

	h, err := e.Health()
	require.NoError(t, err)
	assert.Equal(t, 20.0, h)

	tr.Write("3.5", tr.EntityPath("overworld", 7, mcfs.FieldHealth)...)
	h, err = e.Health()
	require.NoError(t, err)
	assert.Equal(t, 3.5, h)

	require.NoError(t, os.Remove(tr.Path(tr.EntityPath("overworld", 7, mcfs.FieldLiving)...)))
	living, err := e.Living()
	require.NoError(t, err)
	assert.False(t, living)
}

func TestEntityTeleportRoundTrip(t *testing.T) {
	tr := zombieTree(t)
	e := tr.Mount().Entity("overworld", 7)

	target := mcfs.Position{X: -100.75, Y: 70, Z: 12}
	require.NoError(t, e.Teleport(target))
	assert.Equal(t, target.String(), tr.EntityField("overworld", 7, mcfs.FieldPosition))

	got, err := e.Position()
	require.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestEntityKillWritesZero(t *testing.T) {
	tr := zombieTree(t)
	require.NoError(t, tr.Mount().Entity("overworld", 7).Kill())
	assert.Equal(t, "0", tr.EntityField("overworld", 7, mcfs.FieldHealth))
}

func TestEntityMalformedFields(t *testing.T) {
	tr := mcfstest.New(t)
	tr.World("overworld")
	tr.Entity("overworld", 7, mcfstest.Entity{Type: "cow", Position: "1,2", Health: "lots"})
	e := tr.Mount().Entity("overworld", 7)

	_, err := e.Position()
	var pe *mcfs.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "1,2", pe.Raw)

	_, err = e.Health()
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "health", pe.Kind)
	assert.Equal(t, "lots", pe.Raw)
}

func TestEntityGoneReturnsIOError(t *testing.T) {
	m := zombieTree(t).Mount()
	e := m.Entity("overworld", 7)

	require.NoError(t, os.RemoveAll(m.EntityDir("overworld", 7)))
	_, err := e.Position()
	var ioErr *mcfs.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, mcfs.OpRead, ioErr.Op)

	// markers of a vanished entity are simply absent
	alive, err := e.Alive()
	require.NoError(t, err)
	assert.False(t, alive)
}

func TestBlockType(t *testing.T) {
	tr := mcfstest.New(t)
	tr.World("overworld")
	pos := mcfs.BlockPos{X: 4, Y: 60, Z: -9}
	tr.Block("overworld", pos, "grass_block\n")
	m := tr.Mount()
	b := m.Block("overworld", pos)

	assert.Equal(t, pos, b.Pos())
	assert.Equal(t, "overworld", b.World())
	typ, err := b.Type()
	require.NoError(t, err)
	assert.Equal(t, "grass_block", typ)

	require.NoError(t, b.SetType("stone"))
	assert.Equal(t, "stone", tr.BlockType("overworld", pos))

	_, err = m.Block("overworld", mcfs.BlockPos{}).Type()
	var ioErr *mcfs.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "worlds/overworld/blocks/0,0,0/type", ioErr.Path)
}
