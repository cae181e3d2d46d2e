package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/DomWilliams0/minecraft-fs/internal/config"
	"github.com/DomWilliams0/minecraft-fs/internal/demo"
	"github.com/DomWilliams0/minecraft-fs/internal/logging"
	"github.com/DomWilliams0/minecraft-fs/internal/mcfs"
	"go.uber.org/zap"
)

// exitError carries a message that is printed as-is, without the "fatal:" prefix.
type exitError struct{ msg string }

func (e *exitError) Error() string { return e.msg }

func main() {
	ignoreSigpipe()

	if err := run(os.Args[1:], &pipeWriter{w: os.Stdout}); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.msg)
		} else {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return &exitError{"expected mnt directory as first arg"}
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	mount, err := mcfs.Open(args[0], mcfs.WithLogger(log.Named("mcfs")))
	if err != nil {
		return &exitError{fmt.Sprintf("error: %v", err)}
	}

	var name string
	if len(args) > 1 {
		name = args[1]
	}
	d, ok := demo.Lookup(name)
	if !ok {
		return &exitError{fmt.Sprintf("unknown demo %q, expected one of: %s", name, strings.Join(demo.Names(), ", "))}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debug("running demo", zap.String("demo", d.Name), zap.String("mount", mount.Root()))
	return d.Run(&demo.Env{
		Ctx:    ctx,
		Mount:  mount,
		Config: cfg,
		Log:    log.Named(d.Name),
		Out:    out,
		Args:   args[2:],
	})
}
