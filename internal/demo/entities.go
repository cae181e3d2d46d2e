package demo

import (
	"flag"
	"io"
	"sort"

	"github.com/DomWilliams0/minecraft-fs/internal/mcfs"
)

// teleportAll gathers every living entity at the player's position, or at
// the first living entity's position when there is no player.
func teleportAll(env *Env) error {
	var (
		target   mcfs.Position
		haveDest bool
		skipID   = -1
	)
	world := env.world()
	if p, ok := env.Mount.Player(); ok && (world == "" || world == p.World()) {
		pos, err := p.Position()
		if err != nil {
			return err
		}
		target, haveDest, skipID, world = pos, true, p.ID(), p.World()
	}

	seq, err := env.Mount.Entities(mcfs.Query{World: world, Living: mcfs.OnlyLiving})
	if err != nil {
		return err
	}

	for e := range seq {
		if e.ID() == skipID {
			continue
		}
		if !haveDest {
			pos, err := e.Position()
			if err != nil {
				if env.skip("read position of", e.ID(), err) {
					continue
				}
				return err
			}
			target, haveDest = pos, true
			continue
		}
		if err := e.Teleport(target); err != nil {
			if env.skip("tp", e.ID(), err) {
				continue
			}
			return err
		}
		env.printf("teleported %d\n", e.ID())
	}
	return nil
}

func killAll(env *Env) error {
	skipID := -1
	world := env.world()
	// ids are only unique within a world
	if p, ok := env.Mount.Player(); ok && (world == "" || world == p.World()) {
		skipID = p.ID()
	}

	seq, err := env.Mount.Entities(mcfs.Query{World: world, Living: mcfs.OnlyLiving})
	if err != nil {
		return err
	}

	for e := range seq {
		if e.ID() == skipID {
			continue
		}
		if err := e.Kill(); err != nil {
			if env.skip("kill", e.ID(), err) {
				continue
			}
			return err
		}
		env.printf("killed %d\n", e.ID())
	}
	return nil
}

type ranked struct {
	entity   *mcfs.Entity
	typ      string
	distance float64
}

func nearest(env *Env) error {
	fs := flag.NewFlagSet("nearest", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	limit := fs.Int("n", env.Config.Demo.NearestLimit, "number of entities to list")
	if err := fs.Parse(env.Args); err != nil {
		return err
	}

	p, ok := env.Mount.Player()
	if !ok {
		return errNoPlayer
	}
	origin, err := p.Position()
	if err != nil {
		return err
	}

	seq, err := env.Mount.Entities(mcfs.Query{World: p.World(), Living: mcfs.OnlyLiving})
	if err != nil {
		return err
	}

	var found []ranked
	for e := range seq {
		if e.ID() == p.ID() {
			continue
		}
		pos, err := e.Position()
		if err != nil {
			if env.skip("read position of", e.ID(), err) {
				continue
			}
			return err
		}
		typ, err := e.Type()
		if err != nil {
			if env.skip("read type of", e.ID(), err) {
				continue
			}
			return err
		}
		found = append(found, ranked{entity: e, typ: typ, distance: origin.DistanceTo(pos)})
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].distance < found[j].distance })
	if *limit >= 0 && len(found) > *limit {
		found = found[:*limit]
	}
	for _, r := range found {
		env.printf("%d\t%s\t%.1f\n", r.entity.ID(), r.typ, r.distance)
	}
	return nil
}
