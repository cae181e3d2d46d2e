package main

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ignoreSigpipe keeps the runtime from killing the process when stdout is
// closed early, e.g. `mcfs /mnt census | head -1`. Writes then fail with
// EPIPE instead, which pipeWriter handles.
func ignoreSigpipe() {
	signal.Ignore(syscall.SIGPIPE)
}

var exit = os.Exit

// pipeWriter exits cleanly once the reader has gone away.
type pipeWriter struct {
	w io.Writer
}

func (p *pipeWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	if err != nil && errors.Is(err, syscall.EPIPE) {
		exit(0)
	}
	return n, err
}
