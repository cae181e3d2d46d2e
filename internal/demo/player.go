package demo

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func player(env *Env) error {
	p, ok := env.Mount.Player()
	if !ok {
		env.printf("not in game\n")
		return nil
	}
	name, err := env.Mount.PlayerName()
	if err != nil {
		return err
	}
	pos, err := p.Position()
	if err != nil {
		return err
	}
	health, err := p.Health()
	if err != nil {
		return err
	}
	env.printf("name:     %s\nworld:    %s\nentity:   %d\nposition: %s\nblock:    %s\nhealth:   %g\n",
		name, p.World(), p.ID(), pos, pos.BlockPos(), health)
	return nil
}

func worldTime(env *Env) error {
	fs := flag.NewFlagSet("time", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	world := fs.String("world", env.world(), "world (default: player's world)")
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

	if fs.NArg() > 0 {
		t, err := strconv.ParseInt(fs.Arg(0), 10, 64)
		if err != nil {
			return fmt.Errorf("time must be a tick count: %w", err)
		}
		if err := env.Mount.SetWorldTime(*world, t); err != nil {
			return err
		}
	}

	t, err := env.Mount.WorldTime(*world)
	if err != nil {
		return err
	}
	env.printf("%s: %d\n", *world, t)
	return nil
}

func say(env *Env) error {
	if len(env.Args) == 0 {
		return errors.New("say: nothing to say")
	}
	return env.Mount.Say(strings.Join(env.Args, " "))
}
