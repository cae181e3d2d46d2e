package data

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/DomWilliams0/minecraft-fs/internal/mcfs"
	"gopkg.in/yaml.v3"
)

//go:embed patterns/pillar.yaml
var pillarYAML []byte

// PatternBlock is one block of a pattern, relative to the placement origin.
type PatternBlock struct {
	Offset [3]int `yaml:"offset"`
	Type   string `yaml:"type"` // empty = pattern default
}

// Pattern is a small structure placed by the place-blocks demo.
type Pattern struct {
	Name   string         `yaml:"name"`
	Block  string         `yaml:"block"`
	Blocks []PatternBlock `yaml:"blocks"`
}

// Placement is a resolved block write.
type Placement struct {
	Pos  mcfs.BlockPos
	Type string
}

// LoadPattern loads a pattern YAML file.
func LoadPattern(path string) (*Pattern, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	p, err := ParsePattern(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func ParsePattern(raw []byte) (*Pattern, error) {
	var p Pattern
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse pattern: %w", err)
	}
	if len(p.Blocks) == 0 {
		return nil, fmt.Errorf("pattern %q has no blocks", p.Name)
	}
	for i, b := range p.Blocks {
		if b.Type == "" && p.Block == "" {
			return nil, fmt.Errorf("pattern %q: block %d has no type and there is no default", p.Name, i)
		}
	}
	return &p, nil
}

// DefaultPattern returns the built-in pillar.
func DefaultPattern() *Pattern {
	p, err := ParsePattern(pillarYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in pattern: %v", err))
	}
	return p
}

// Placements resolves the pattern at origin. If override is non-empty it
// replaces every block type.
func (p *Pattern) Placements(origin mcfs.BlockPos, override string) []Placement {
	out := make([]Placement, 0, len(p.Blocks))
	for _, b := range p.Blocks {
		typ := b.Type
		if typ == "" {
			typ = p.Block
		}
		if override != "" {
			typ = override
		}
		out = append(out, Placement{
			Pos:  origin.Add(b.Offset[0], b.Offset[1], b.Offset[2]),
			Type: typ,
		})
	}
	return out
}
