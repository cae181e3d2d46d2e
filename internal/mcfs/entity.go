package mcfs

import (
	"strconv"
	"strings"
)

// Entity is a proxy for one entity in a world. It holds only the location of
// the entity's directory; every accessor re-reads or re-writes the tree. When
// the entity despawns its files disappear and accessors start returning
// IOErrors.
type Entity struct {
	mount *Mount
	world string
	id    int
}

// Entity returns a proxy for entity id in world. No I/O is performed.
func (m *Mount) Entity(world string, id int) *Entity {
	return &Entity{mount: m, world: world, id: id}
}

// EntityInPlayerWorld returns a proxy for entity id in the world the player
// is currently in.
func (m *Mount) EntityInPlayerWorld(id int) (*Entity, error) {
	world, err := m.PlayerWorld()
	if err != nil {
		return nil, err
	}
	return m.Entity(world, id), nil
}

func (e *Entity) ID() int { return e.id }

// World is fixed at construction; writes never move an entity across worlds.
func (e *Entity) World() string { return e.world }

func (e *Entity) path(field string) string {
	return e.mount.EntityField(e.world, e.id, field)
}

// Type returns the entity's type tag, e.g. "zombie".
func (e *Entity) Type() (string, error) {
	s, err := e.mount.ReadText(e.path(FieldType))
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(s, "\n"), nil
}

func (e *Entity) Position() (Position, error) {
	s, err := e.mount.ReadText(e.path(FieldPosition))
	if err != nil {
		return Position{}, err
	}
	return ParsePosition(s)
}

// SetPosition moves the entity within its current world.
func (e *Entity) SetPosition(p Position) error {
	return e.mount.WriteText(e.path(FieldPosition), p.String(), Truncate)
}

func (e *Entity) Health() (float64, error) {
	s, err := e.mount.ReadText(e.path(FieldHealth))
	if err != nil {
		return 0, err
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &ParseError{Kind: "health", Raw: s, Err: err}
	}
	return h, nil
}

func (e *Entity) SetHealth(h float64) error {
	return e.mount.WriteText(e.path(FieldHealth), formatFloat(h), Truncate)
}

// Alive reports whether the entity's alive marker is present.
func (e *Entity) Alive() (bool, error) {
	return e.mount.Exists(e.path(FieldAlive))
}

// Living reports whether the entity is a creature rather than an inert
// object such as a dropped item or minecart.
func (e *Entity) Living() (bool, error) {
	return e.mount.Exists(e.path(FieldLiving))
}

func (e *Entity) Teleport(target Position) error {
	return e.SetPosition(target)
}

// Kill sets the entity's health to 0.
func (e *Entity) Kill() error {
	return e.SetHealth(0)
}
