package scripting

import (
	"fmt"

	"github.com/DomWilliams0/minecraft-fs/internal/mcfs"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

const (
	entityType = "mcfs.entity"
	blockType  = "mcfs.block"
)

func (e *Engine) register() {
	L := e.vm
	L.SetGlobal("print", L.NewFunction(e.luaPrint))

	mc := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"player":   e.mcPlayer,
		"entity":   e.mcEntity,
		"entities": e.mcEntities,
		"block":    e.mcBlock,
		"worlds":   e.mcWorlds,
		"time":     e.mcTime,
		"set_time": e.mcSetTime,
		"say":      e.mcSay,
		"jump":     e.mcJump,
		"move":     e.mcMove,
		"print":    e.luaPrint,
		"log":      e.mcLog,
	})
	L.SetGlobal("mc", mc)

	emt := L.NewTypeMetatable(entityType)
	L.SetField(emt, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"id":         entityID,
		"world":      entityWorld,
		"type":       entityTypeTag,
		"position":   entityPosition,
		"teleport":   entityTeleport,
		"health":     entityHealth,
		"set_health": entitySetHealth,
		"kill":       entityKill,
		"alive":      entityAlive,
		"living":     entityLiving,
	}))
	L.SetField(emt, "__tostring", L.NewFunction(func(L *lua.LState) int {
		ent := checkEntity(L)
		L.Push(lua.LString(fmt.Sprintf("entity(%s#%d)", ent.World(), ent.ID())))
		return 1
	}))

	bmt := L.NewTypeMetatable(blockType)
	L.SetField(bmt, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"type":     blockTypeTag,
		"set_type": blockSetType,
		"pos":      blockPos,
	}))
	L.SetField(bmt, "__tostring", L.NewFunction(func(L *lua.LState) int {
		b := checkBlock(L)
		L.Push(lua.LString(fmt.Sprintf("block(%s@%s)", b.World(), b.Pos())))
		return 1
	}))
}

// raise turns a Go error into a Lua error. It does not return.
func raise(L *lua.LState, err error) int {
	L.RaiseError("%s", err.Error())
	return 0
}

func newEntity(L *lua.LState, ent *mcfs.Entity) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = ent
	L.SetMetatable(ud, L.GetTypeMetatable(entityType))
	return ud
}

func pushEntity(L *lua.LState, ent *mcfs.Entity) {
	L.Push(newEntity(L, ent))
}

func checkEntity(L *lua.LState) *mcfs.Entity {
	ud := L.CheckUserData(1)
	if ent, ok := ud.Value.(*mcfs.Entity); ok {
		return ent
	}
	L.ArgError(1, "entity expected")
	return nil
}

func pushBlock(L *lua.LState, b *mcfs.Block) {
	ud := L.NewUserData()
	ud.Value = b
	L.SetMetatable(ud, L.GetTypeMetatable(blockType))
	L.Push(ud)
}

func checkBlock(L *lua.LState) *mcfs.Block {
	ud := L.CheckUserData(1)
	if b, ok := ud.Value.(*mcfs.Block); ok {
		return b
	}
	L.ArgError(1, "block expected")
	return nil
}

func pushPosition(L *lua.LState, p mcfs.Position) int {
	L.Push(lua.LNumber(p.X))
	L.Push(lua.LNumber(p.Y))
	L.Push(lua.LNumber(p.Z))
	return 3
}

func checkPosition(L *lua.LState, n int) mcfs.Position {
	return mcfs.Position{
		X: float64(L.CheckNumber(n)),
		Y: float64(L.CheckNumber(n + 1)),
		Z: float64(L.CheckNumber(n + 2)),
	}
}

// ── mc table ──────────────────────────────────────────────────────

func (e *Engine) mcPlayer(L *lua.LState) int {
	p, ok := e.mount.Player()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	pushEntity(L, p)
	return 1
}

// mc.entity(world, id) or mc.entity(id) for the player's world.
func (e *Engine) mcEntity(L *lua.LState) int {
	if L.GetTop() == 1 {
		ent, err := e.mount.EntityInPlayerWorld(L.CheckInt(1))
		if err != nil {
			return raise(L, err)
		}
		pushEntity(L, ent)
		return 1
	}
	pushEntity(L, e.mount.Entity(L.CheckString(1), L.CheckInt(2)))
	return 1
}

// mc.entities{world=, living=true|false, alive_only=} returns an array.
func (e *Engine) mcEntities(L *lua.LState) int {
	var q mcfs.Query
	if opts := L.OptTable(1, nil); opts != nil {
		if w, ok := opts.RawGetString("world").(lua.LString); ok {
			q.World = string(w)
		}
		switch opts.RawGetString("living") {
		case lua.LTrue:
			q.Living = mcfs.OnlyLiving
		case lua.LFalse:
			q.Living = mcfs.OnlyNonLiving
		}
		q.AliveOnly = lua.LVAsBool(opts.RawGetString("alive_only"))
	}

	seq, err := e.mount.Entities(q)
	if err != nil {
		return raise(L, err)
	}
	t := L.NewTable()
	for ent := range seq {
		t.Append(newEntity(L, ent))
	}
	L.Push(t)
	return 1
}

func (e *Engine) mcBlock(L *lua.LState) int {
	pos := mcfs.BlockPos{X: L.CheckInt(2), Y: L.CheckInt(3), Z: L.CheckInt(4)}
	pushBlock(L, e.mount.Block(L.CheckString(1), pos))
	return 1
}

func (e *Engine) mcWorlds(L *lua.LState) int {
	names, err := e.mount.Worlds()
	if err != nil {
		return raise(L, err)
	}
	t := L.NewTable()
	for _, n := range names {
		t.Append(lua.LString(n))
	}
	L.Push(t)
	return 1
}

func (e *Engine) mcTime(L *lua.LState) int {
	t, err := e.mount.WorldTime(L.CheckString(1))
	if err != nil {
		return raise(L, err)
	}
	L.Push(lua.LNumber(t))
	return 1
}

func (e *Engine) mcSetTime(L *lua.LState) int {
	if err := e.mount.SetWorldTime(L.CheckString(1), int64(L.CheckInt64(2))); err != nil {
		return raise(L, err)
	}
	return 0
}

func (e *Engine) mcSay(L *lua.LState) int {
	if err := e.mount.Say(L.CheckString(1)); err != nil {
		return raise(L, err)
	}
	return 0
}

func (e *Engine) mcJump(L *lua.LState) int {
	if err := e.mount.Jump(); err != nil {
		return raise(L, err)
	}
	return 0
}

// mc.move(x, y, z) walks the player towards a position.
func (e *Engine) mcMove(L *lua.LState) int {
	if err := e.mount.Move(checkPosition(L, 1)); err != nil {
		return raise(L, err)
	}
	return 0
}

func (e *Engine) mcLog(L *lua.LState) int {
	e.log.Info("script", zap.String("msg", L.CheckString(1)))
	return 0
}

// ── entity methods ────────────────────────────────────────────────

func entityID(L *lua.LState) int {
	L.Push(lua.LNumber(checkEntity(L).ID()))
	return 1
}

func entityWorld(L *lua.LState) int {
	L.Push(lua.LString(checkEntity(L).World()))
	return 1
}

func entityTypeTag(L *lua.LState) int {
	t, err := checkEntity(L).Type()
	if err != nil {
		return raise(L, err)
	}
	L.Push(lua.LString(t))
	return 1
}

func entityPosition(L *lua.LState) int {
	p, err := checkEntity(L).Position()
	if err != nil {
		return raise(L, err)
	}
	return pushPosition(L, p)
}

func entityTeleport(L *lua.LState) int {
	ent := checkEntity(L)
	if err := ent.Teleport(checkPosition(L, 2)); err != nil {
		return raise(L, err)
	}
	return 0
}

func entityHealth(L *lua.LState) int {
	h, err := checkEntity(L).Health()
	if err != nil {
		return raise(L, err)
	}
	L.Push(lua.LNumber(h))
	return 1
}

func entitySetHealth(L *lua.LState) int {
	ent := checkEntity(L)
	if err := ent.SetHealth(float64(L.CheckNumber(2))); err != nil {
		return raise(L, err)
	}
	return 0
}

func entityKill(L *lua.LState) int {
	if err := checkEntity(L).Kill(); err != nil {
		return raise(L, err)
	}
	return 0
}

func entityAlive(L *lua.LState) int {
	ok, err := checkEntity(L).Alive()
	if err != nil {
		return raise(L, err)
	}
	L.Push(lua.LBool(ok))
	return 1
}

func entityLiving(L *lua.LState) int {
	ok, err := checkEntity(L).Living()
	if err != nil {
		return raise(L, err)
	}
	L.Push(lua.LBool(ok))
	return 1
}

// ── block methods ─────────────────────────────────────────────────

func blockTypeTag(L *lua.LState) int {
	t, err := checkBlock(L).Type()
	if err != nil {
		return raise(L, err)
	}
	L.Push(lua.LString(t))
	return 1
}

func blockSetType(L *lua.LState) int {
	b := checkBlock(L)
	if err := b.SetType(L.CheckString(2)); err != nil {
		return raise(L, err)
	}
	return 0
}

func blockPos(L *lua.LState) int {
	p := checkBlock(L).Pos()
	L.Push(lua.LNumber(p.X))
	L.Push(lua.LNumber(p.Y))
	L.Push(lua.LNumber(p.Z))
	return 3
}
