package mcfs

import (
	"fmt"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
)

// Player returns the current player's entity. The second result is false when
// there is no current player (not in game, or the links are broken); this is
// a normal state, not an error.
func (m *Mount) Player() (*Entity, bool) {
	entityDir, err := filepath.EvalSymlinks(m.PlayerEntityLink())
	if err != nil {
		m.log.Debug("no player entity", zap.Error(err))
		return nil, false
	}
	id, err := strconv.Atoi(filepath.Base(entityDir))
	if err != nil {
		m.log.Debug("player entity is not an id", zap.String("target", filepath.Base(entityDir)))
		return nil, false
	}

	world, err := m.PlayerWorld()
	if err != nil {
		m.log.Debug("no player world", zap.Error(err))
		return nil, false
	}
	return m.Entity(world, id), true
}

// PlayerWorld returns the name of the world the player is currently in.
func (m *Mount) PlayerWorld() (string, error) {
	link := m.PlayerWorldLink()
	target, err := filepath.EvalSymlinks(link)
	if err != nil {
		return "", m.ioError(link, OpRead, err)
	}
	name := filepath.Base(target)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("player world link %q has no world name", m.Rel(link))
	}
	return name, nil
}
