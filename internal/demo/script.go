package demo

import (
	"errors"

	"github.com/DomWilliams0/minecraft-fs/internal/scripting"
)

func script(env *Env) error {
	if len(env.Args) == 0 {
		return errors.New("script: missing script path")
	}
	e := scripting.NewEngine(env.Mount, env.Out, env.Log)
	defer e.Close()

	if dir := env.Config.Scripting.Dir; dir != "" {
		if err := e.LoadDir(dir); err != nil {
			return err
		}
	}
	return e.RunFile(env.Args[0], env.Args[1:])
}
