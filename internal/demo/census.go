package demo

import (
	"flag"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/DomWilliams0/minecraft-fs/internal/mcfs"
	"github.com/DomWilliams0/minecraft-fs/internal/persist"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// typeLabel turns a type tag like "cave_spider" into "Cave Spider".
func typeLabel(typ string) string {
	typ = strings.TrimPrefix(typ, "minecraft:")
	return titleCaser.String(strings.ReplaceAll(typ, "_", " "))
}

func census(env *Env) error {
	fs := flag.NewFlagSet("census", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	world := fs.String("world", env.world(), "world to count (default: player's world)")
	dbPath := fs.String("db", env.Config.Census.DB, "record the census in this SQLite file")
	if err := fs.Parse(env.Args); err != nil {
		return err
	}

	if *world == "" {
		w, err := env.Mount.PlayerWorld()
		if err != nil {
			return err
		}
		*world = w
	}

	seq, err := env.Mount.Entities(mcfs.Query{World: *world})
	if err != nil {
		return err
	}

	snap := persist.CensusSnapshot{World: *world, TakenAt: time.Now()}
	counts := make(map[string]int)
	for e := range seq {
		row, err := observe(e)
		if err != nil {
			if env.skip("observe", e.ID(), err) {
				continue
			}
			return err
		}
		snap.Entities = append(snap.Entities, row)
		counts[row.Type]++
	}

	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		if counts[types[i]] != counts[types[j]] {
			return counts[types[i]] > counts[types[j]]
		}
		return types[i] < types[j]
	})
	for _, t := range types {
		env.printf("%5d  %s\n", counts[t], typeLabel(t))
	}
	env.printf("%5d  total in %s\n", len(snap.Entities), *world)

	if *dbPath == "" {
		return nil
	}
	db, err := persist.Open(env.Ctx, *dbPath, env.Log)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := persist.NewCensusRepo(db)
	prev, err := repo.Latest(env.Ctx, *world)
	if err != nil {
		return err
	}
	id, err := repo.Record(env.Ctx, snap)
	if err != nil {
		return err
	}
	env.printf("recorded census #%d in %s\n", id, *dbPath)
	if prev != nil {
		env.printf("change since census #%d: %+d\n", prev.ID, len(snap.Entities)-prev.EntityCount)
	}
	return nil
}

// observe reads every field of e. The reads are independent, so the row may
// mix moments if the game changes the entity in between.
func observe(e *mcfs.Entity) (persist.CensusEntity, error) {
	row := persist.CensusEntity{EntityID: e.ID()}
	var err error
	if row.Type, err = e.Type(); err != nil {
		return row, err
	}
	if row.Position, err = e.Position(); err != nil {
		return row, err
	}
	if row.Health, err = e.Health(); err != nil {
		return row, err
	}
	if row.Living, err = e.Living(); err != nil {
		return row, err
	}
	return row, nil
}
