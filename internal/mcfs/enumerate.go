package mcfs

import (
	"iter"
	"os"
	"slices"
	"strconv"

	"go.uber.org/zap"
)

// LivingFilter restricts enumeration by the living marker.
type LivingFilter int

const (
	AnyLiving     LivingFilter = iota // marker not checked
	OnlyLiving                        // creatures only
	OnlyNonLiving                     // items, projectiles, vehicles...
)

func (f LivingFilter) String() string {
	switch f {
	case OnlyLiving:
		return "living"
	case OnlyNonLiving:
		return "non-living"
	default:
		return "any"
	}
}

// Query selects entities for Entities.
type Query struct {
	World     string // empty means the player's current world
	Living    LivingFilter
	AliveOnly bool // skip entities without the alive marker
}

// Entities lists the entities of a world as a lazy sequence. Each range over
// the result scans the directory afresh. Enumeration is best effort: entries
// that are not integer ids, that vanish mid-scan, or whose markers cannot be
// checked are skipped. The returned error only reports a failure to resolve
// the player's world when q.World is empty.
func (m *Mount) Entities(q Query) (iter.Seq[*Entity], error) {
	world := q.World
	if world == "" {
		w, err := m.PlayerWorld()
		if err != nil {
			return nil, err
		}
		world = w
	}

	return func(yield func(*Entity) bool) {
		for _, id := range m.entityIDs(world) {
			e := m.Entity(world, id)
			if !m.matches(e, q) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}, nil
}

// entityIDs returns the sorted ids currently listed for world.
func (m *Mount) entityIDs(world string) []int {
	dir := m.EntitiesDir(world)
	entries, err := os.ReadDir(dir)
	if err != nil {
		m.log.Warn("list entities failed", zap.String("path", m.Rel(dir)), zap.Error(err))
		return nil
	}

	ids := make([]int, 0, len(entries))
	for _, entry := range entries {
		id, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// present reports whether the entity directory is still there. Entries may
// be symlinks.
func (m *Mount) present(e *Entity) bool {
	info, err := os.Stat(m.EntityDir(e.world, e.id))
	return err == nil && info.IsDir()
}

func (m *Mount) matches(e *Entity, q Query) bool {
	if !m.present(e) {
		return false
	}

	if q.AliveOnly {
		alive, err := e.Alive()
		if err != nil || !alive {
			return false
		}
	}

	if q.Living != AnyLiving {
		living, err := e.Living()
		if err != nil {
			m.log.Debug("skip entity", zap.Int("id", e.id), zap.Error(err))
			return false
		}
		// a missing marker is also what a despawned entity looks like
		if !living && !m.present(e) {
			return false
		}
		if living != (q.Living == OnlyLiving) {
			return false
		}
	}
	return true
}
