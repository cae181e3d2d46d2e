package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DomWilliams0/minecraft-fs/internal/mcfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPatternPlacements(t *testing.T) {
	p := DefaultPattern()
	assert.Equal(t, "pillar", p.Name)

	got := p.Placements(mcfs.BlockPos{X: 10, Y: 64, Z: -5}, "")
	assert.Equal(t, []Placement{
		{Pos: mcfs.BlockPos{X: 12, Y: 64, Z: -5}, Type: "stone"},
		{Pos: mcfs.BlockPos{X: 12, Y: 65, Z: -5}, Type: "stone"},
		{Pos: mcfs.BlockPos{X: 12, Y: 66, Z: -5}, Type: "glowstone"},
	}, got)
}

func TestPlacementsOverride(t *testing.T) {
	got := DefaultPattern().Placements(mcfs.BlockPos{}, "gold_block")
	for _, pl := range got {
		assert.Equal(t, "gold_block", pl.Type)
	}
}

func TestLoadPattern(t *testing.T) {
	p := filepath.Join(t.TempDir(), "arch.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
name: arch
blocks:
  - offset: [0, 0, 0]
    type: oak_planks
  - offset: [0, 1, 1]
    type: oak_planks
`), 0o644))

	pat, err := LoadPattern(p)
	require.NoError(t, err)
	assert.Equal(t, "arch", pat.Name)
	assert.Len(t, pat.Blocks, 2)
	assert.Equal(t, [3]int{0, 1, 1}, pat.Blocks[1].Offset)
}

func TestParsePatternInvalid(t *testing.T) {
	cases := map[string]string{
		"empty":      "name: nothing\nblock: stone\n",
		"no type":    "name: x\nblocks:\n  - offset: [0,0,0]\n",
		"not yaml":   "blocks: [",
		"bad offset": "block: stone\nblocks:\n  - offset: a\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePattern([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestLoadPatternMissing(t *testing.T) {
	_, err := LoadPattern(filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read pattern")
}
