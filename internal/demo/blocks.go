package demo

import (
	"errors"
	"flag"
	"io"

	"github.com/DomWilliams0/minecraft-fs/internal/data"
	"github.com/DomWilliams0/minecraft-fs/internal/mcfs"
)

func placeBlocks(env *Env) error {
	fs := flag.NewFlagSet("place-blocks", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	patternFile := fs.String("pattern", env.Config.Demo.PatternFile, "pattern YAML file (default: built-in pillar)")
	blockType := fs.String("type", "", "replace every block type with this one")
	if err := fs.Parse(env.Args); err != nil {
		return err
	}

	pattern := data.DefaultPattern()
	if *patternFile != "" {
		p, err := data.LoadPattern(*patternFile)
		if err != nil {
			return err
		}
		pattern = p
	}

	p, ok := env.Mount.Player()
	if !ok {
		return errNoPlayer
	}
	pos, err := p.Position()
	if err != nil {
		return err
	}

	placed := 0
	for _, pl := range pattern.Placements(pos.BlockPos(), *blockType) {
		b := env.Mount.Block(p.World(), pl.Pos)
		if err := b.SetType(pl.Type); err != nil {
			var ioErr *mcfs.IOError
			if errors.As(err, &ioErr) {
				env.printf("failed to place %s at %s: %v\n", pl.Type, pl.Pos, err)
				continue
			}
			return err
		}
		placed++
		env.printf("placed %s at %s\n", pl.Type, pl.Pos)
	}
	env.printf("%s: placed %d/%d blocks\n", pattern.Name, placed, len(pattern.Blocks))
	return nil
}
