package mcfs

import "strings"

// Block is a proxy for the block at a fixed position in a world.
type Block struct {
	mount *Mount
	world string
	pos   BlockPos
}

func (m *Mount) Block(world string, pos BlockPos) *Block {
	return &Block{mount: m, world: world, pos: pos}
}

func (b *Block) Pos() BlockPos { return b.pos }

func (b *Block) World() string { return b.world }

// Type returns the block's material, e.g. "stone".
func (b *Block) Type() (string, error) {
	s, err := b.mount.ReadText(b.mount.BlockField(b.world, b.pos, FieldType))
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(s, "\n"), nil
}

func (b *Block) SetType(t string) error {
	return b.mount.WriteText(b.mount.BlockField(b.world, b.pos, FieldType), t, Truncate)
}
