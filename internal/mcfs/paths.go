package mcfs

import (
	"path/filepath"
	"strconv"
)

// Directory and file names of the mounted tree.
const (
	playerDir   = "player"
	worldsDir   = "worlds"
	entitiesDir = "entities"
	byIDDir     = "by-id"
	blocksDir   = "blocks"
	controlDir  = "control"

	playerEntityLink = "entity"
	playerWorldLink  = "world"
)

// Field file names.
const (
	FieldType     = "type"
	FieldPosition = "position"
	FieldHealth   = "health"
	FieldAlive    = "alive"
	FieldLiving   = "living"
	FieldName     = "name"
	FieldTime     = "time"

	ControlSay  = "say"
	ControlJump = "jump"
	ControlMove = "move"
)

func (m *Mount) PlayerDir() string { return filepath.Join(m.root, playerDir) }

// PlayerEntityLink points at the current player's entity directory.
func (m *Mount) PlayerEntityLink() string { return filepath.Join(m.root, playerDir, playerEntityLink) }

// PlayerWorldLink points at the current player's world directory.
func (m *Mount) PlayerWorldLink() string { return filepath.Join(m.root, playerDir, playerWorldLink) }

func (m *Mount) PlayerField(field string) string {
	return filepath.Join(m.root, playerDir, field)
}

func (m *Mount) ControlField(control string) string {
	return filepath.Join(m.root, playerDir, controlDir, control)
}

func (m *Mount) WorldsDir() string { return filepath.Join(m.root, worldsDir) }

func (m *Mount) WorldDir(world string) string {
	return filepath.Join(m.root, worldsDir, world)
}

func (m *Mount) WorldField(world, field string) string {
	return filepath.Join(m.WorldDir(world), field)
}

// EntitiesDir is the directory holding one subdirectory per entity id.
func (m *Mount) EntitiesDir(world string) string {
	return filepath.Join(m.WorldDir(world), entitiesDir, byIDDir)
}

func (m *Mount) EntityDir(world string, id int) string {
	return filepath.Join(m.EntitiesDir(world), strconv.Itoa(id))
}

func (m *Mount) EntityField(world string, id int, field string) string {
	return filepath.Join(m.EntityDir(world, id), field)
}

func (m *Mount) BlockDir(world string, pos BlockPos) string {
	return filepath.Join(m.WorldDir(world), blocksDir, pos.String())
}

func (m *Mount) BlockField(world string, pos BlockPos, field string) string {
	return filepath.Join(m.BlockDir(world, pos), field)
}

// Rel returns path relative to the mount root. Paths outside the mount are
// returned unchanged.
func (m *Mount) Rel(path string) string {
	rel, err := filepath.Rel(m.root, path)
	if err != nil {
		return path
	}
	return rel
}
