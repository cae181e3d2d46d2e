package mcfs

import (
	"errors"
	"io/fs"
	"os"
	"syscall"

	"go.uber.org/zap"
)

// WriteMode selects how WriteText opens the target file.
type WriteMode int

const (
	// Truncate replaces the whole value. Used by every single-value field.
	Truncate WriteMode = iota
	// Append adds to the existing contents.
	Append
)

// ReadText returns the current contents of path.
func (m *Mount) ReadText(path string) (string, error) {
	m.log.Debug("read", zap.String("path", m.Rel(path)))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", m.ioError(path, OpRead, err)
	}
	return string(data), nil
}

// WriteText writes value to an existing file. Files are never created: a
// field that does not exist in the tree is an error.
func (m *Mount) WriteText(path, value string, mode WriteMode) error {
	m.log.Debug("write", zap.String("path", m.Rel(path)), zap.String("value", value))

	flag := os.O_WRONLY | os.O_TRUNC
	if mode == Append {
		flag = os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return m.ioError(path, OpWrite, err)
	}
	if _, err := f.WriteString(value); err != nil {
		_ = f.Close()
		return m.ioError(path, OpWrite, err)
	}
	// The mounted filesystem may only commit the write on release.
	if err := f.Close(); err != nil {
		return m.ioError(path, OpWrite, err)
	}
	return nil
}

// Exists reports whether path exists, following symlinks. A missing file is
// false, never an error; only genuine faults (permissions, I/O, symlink
// loops) produce an IOError.
func (m *Mount) Exists(path string) (bool, error) {
	m.log.Debug("stat", zap.String("path", m.Rel(path)))
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return false, nil
	default:
		return false, m.ioError(path, OpCheckExistence, err)
	}
}

// ioError strips the absolute path from the underlying *fs.PathError so the
// mount location never leaks into messages.
func (m *Mount) ioError(path string, op Op, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &IOError{Path: m.Rel(path), Op: op, Err: err}
}
