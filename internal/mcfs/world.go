package mcfs

import (
	"os"
	"sort"
	"strconv"
	"strings"
)

// Worlds lists the world names present under worlds/.
func (m *Mount) Worlds() ([]string, error) {
	dir := m.WorldsDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, m.ioError(dir, OpRead, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || e.Type()&os.ModeSymlink != 0 {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// WorldTime returns the world's time of day in ticks.
func (m *Mount) WorldTime(world string) (int64, error) {
	s, err := m.ReadText(m.WorldField(world, FieldTime))
	if err != nil {
		return 0, err
	}
	t, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, &ParseError{Kind: "time", Raw: s, Err: err}
	}
	return t, nil
}

func (m *Mount) SetWorldTime(world string, t int64) error {
	return m.WriteText(m.WorldField(world, FieldTime), strconv.FormatInt(t, 10), Truncate)
}

// PlayerName returns the logged-in player's name.
func (m *Mount) PlayerName() (string, error) {
	s, err := m.ReadText(m.PlayerField(FieldName))
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(s, "\n"), nil
}

// Say sends msg to chat as the player.
func (m *Mount) Say(msg string) error {
	return m.WriteText(m.ControlField(ControlSay), msg, Truncate)
}

// Jump makes the player jump. The written content is ignored by the game.
func (m *Mount) Jump() error {
	return m.WriteText(m.ControlField(ControlJump), "1", Truncate)
}

// Move walks the player towards target.
func (m *Mount) Move(target Position) error {
	return m.WriteText(m.ControlField(ControlMove), target.String(), Truncate)
}
