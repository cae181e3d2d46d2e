package mcfs_test

import (
	"os"
	"slices"
	"testing"

	"github.com/DomWilliams0/minecraft-fs/internal/mcfs"
	"github.com/DomWilliams0/minecraft-fs/internal/mcfs/mcfstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func ids(t *testing.T, m *mcfs.Mount, q mcfs.Query) []int {
	t.Helper()
	seq, err := m.Entities(q)
	require.NoError(t, err)
	var out []int
	for e := range seq {
		out = append(out, e.ID())
	}
	return out
}

func mixedWorld(t *testing.T) *mcfstest.Tree {
	tr := mcfstest.New(t)
	tr.World("overworld")
	tr.Entity("overworld", 1, mcfstest.Entity{Type: "pig", Position: "0,0,0", Health: "10", Alive: true, Living: true})
	tr.Entity("overworld", 2, mcfstest.Entity{Type: "item", Position: "0,0,0", Health: "5", Alive: true})
	tr.Entity("overworld", 3, mcfstest.Entity{Type: "cow", Position: "0,0,0", Health: "10", Alive: true, Living: true})
	return tr
}

func TestEntitiesLivingFilter(t *testing.T) {
	m := mixedWorld(t).Mount()

	assert.Equal(t, []int{1, 3}, ids(t, m, mcfs.Query{World: "overworld", Living: mcfs.OnlyLiving}))
	assert.Equal(t, []int{2}, ids(t, m, mcfs.Query{World: "overworld", Living: mcfs.OnlyNonLiving}))
	assert.Equal(t, []int{1, 2, 3}, ids(t, m, mcfs.Query{World: "overworld"}))
}

func TestEntitiesAliveOnly(t *testing.T) {
	tr := mixedWorld(t)
	tr.Entity("overworld", 4, mcfstest.Entity{Type: "zombie", Position: "0,0,0", Health: "0", Living: true})
	m := tr.Mount()

	assert.Equal(t, []int{1, 2, 3, 4}, ids(t, m, mcfs.Query{World: "overworld"}))
	assert.Equal(t, []int{1, 3}, ids(t, m, mcfs.Query{World: "overworld", Living: mcfs.OnlyLiving, AliveOnly: true}))
}

func TestEntitiesSkipsMalformedEntries(t *testing.T) {
	tr := mixedWorld(t)
	byID := tr.Path("worlds", "overworld", "entities", "by-id")
	require.NoError(t, os.Mkdir(tr.Path("worlds", "overworld", "entities", "by-id", "not-a-number"), 0o755))
	// a file, not an entity dir
	tr.Write("", "worlds", "overworld", "entities", "by-id", "99")
	// despawned mid-scan
	require.NoError(t, os.Symlink("gone", byID+"/100"))
	// living marker loops
	tr.Entity("overworld", 5, mcfstest.Entity{Type: "bat", Position: "0,0,0", Health: "1"})
	require.NoError(t, os.Symlink("living", byID+"/5/living"))
	m := tr.Mount()

	assert.Equal(t, []int{1, 3}, ids(t, m, mcfs.Query{World: "overworld", Living: mcfs.OnlyLiving}))
	assert.Equal(t, []int{2}, ids(t, m, mcfs.Query{World: "overworld", Living: mcfs.OnlyNonLiving}))
	assert.Equal(t, []int{1, 2, 3, 5}, ids(t, m, mcfs.Query{World: "overworld"}))
}

// onStat runs fn when the mount traces a stat of path.
type onStat struct {
	zapcore.Core
	path string
	fn   func()
}

func (c *onStat) Enabled(zapcore.Level) bool { return true }
func (c *onStat) With([]zapcore.Field) zapcore.Core { return c }

func (c *onStat) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	return ce.AddCore(ent, c)
}

func (c *onStat) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	if ent.Message != "stat" {
		return nil
	}
	for _, f := range fields {
		if f.Key == "path" && f.String == c.path {
			c.fn()
		}
	}
	return nil
}

func TestEntitiesDespawnDuringMarkerCheck(t *testing.T) {
	tr := mixedWorld(t)
	core := &onStat{
		Core: zapcore.NewNopCore(),
		path: "worlds/overworld/entities/by-id/2/living",
		fn: func() {
			// the item despawns right as its living marker is checked
			require.NoError(t, os.RemoveAll(tr.Path("worlds", "overworld", "entities", "by-id", "2")))
		},
	}
	m := tr.Mount(mcfs.WithLogger(zap.New(core)))

	assert.Empty(t, ids(t, m, mcfs.Query{World: "overworld", Living: mcfs.OnlyNonLiving}))
	assert.Equal(t, []int{1, 3}, ids(t, m, mcfs.Query{World: "overworld"}))
}

func TestEntitiesIsRestartable(t *testing.T) {
	tr := mixedWorld(t)
	m := tr.Mount()
	seq, err := m.Entities(mcfs.Query{World: "overworld"})
	require.NoError(t, err)

	first := slices.Collect(seq)
	require.Len(t, first, 3)

	require.NoError(t, os.RemoveAll(m.EntityDir("overworld", 2)))
	tr.Entity("overworld", 8, mcfstest.Entity{Type: "sheep", Position: "0,0,0", Health: "8", Living: true})

	var second []int
	for e := range seq {
		second = append(second, e.ID())
	}
	assert.Equal(t, []int{1, 3, 8}, second)
}

func TestEntitiesStopsEarly(t *testing.T) {
	m := mixedWorld(t).Mount()
	seq, err := m.Entities(mcfs.Query{World: "overworld"})
	require.NoError(t, err)

	n := 0
	for range seq {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestEntitiesDefaultsToPlayerWorld(t *testing.T) {
	tr := mixedWorld(t)
	tr.World("nether")
	tr.Entity("nether", 50, mcfstest.Entity{Type: "ghast", Position: "0,0,0", Health: "10", Living: true})
	tr.Player("Steve", "nether", 50)
	m := tr.Mount()

	seq, err := m.Entities(mcfs.Query{})
	require.NoError(t, err)
	got := slices.Collect(seq)
	require.Len(t, got, 1)
	assert.Equal(t, "nether", got[0].World())
	assert.Equal(t, 50, got[0].ID())
}

func TestEntitiesWithoutPlayerWorld(t *testing.T) {
	m := mixedWorld(t).Mount()
	_, err := m.Entities(mcfs.Query{})
	var ioErr *mcfs.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "player/world", ioErr.Path)
}

func TestEntitiesMissingWorldYieldsNothing(t *testing.T) {
	m := mcfstest.New(t).Mount()
	assert.Empty(t, ids(t, m, mcfs.Query{World: "end"}))
}
