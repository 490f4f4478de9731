package core

import (
	"errors"
	"fmt"
)

// ErrUnknownCommandTemplate is returned by Parse for a recognized command
// whose operands do not match its template.
var ErrUnknownCommandTemplate = errors.New("unknown command template")

// UnknownVariableError is returned when resolving a variable reference that
// does not name an integer or string.
type UnknownVariableError struct{ Name string }

func (err UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable $%v", err.Name)
}

// UndefinedVariableError is returned when a command names a variable that is
// absent or holds the wrong kind of value.
type UndefinedVariableError struct {
	Name string
	Kind string
}

func (err UndefinedVariableError) Error() string {
	if err.Kind == "" {
		return fmt.Sprintf("undefined variable %q", err.Name)
	}
	return fmt.Sprintf("undefined %v variable %q", err.Kind, err.Name)
}

// IncorrectIndexError is returned when an index or offset is not within Bound.
type IncorrectIndexError struct {
	Index uint
	Bound uint
}

func (err IncorrectIndexError) Error() string {
	return fmt.Sprintf("incorrect index %v for bound %v", err.Index, err.Bound)
}

// ReadOnlyFileError is returned when writing to a file opened with open_file.
type ReadOnlyFileError struct{ Name string }

func (err ReadOnlyFileError) Error() string {
	return fmt.Sprintf("writing to read only file %q", err.Name)
}

// IOError wraps a failed file system operation.
type IOError struct {
	Op   string
	Name string
	Err  error
}

func (err IOError) Error() string {
	return fmt.Sprintf("io error: %v %q: %v", err.Op, err.Name, err.Err)
}

func (err IOError) Unwrap() error { return err.Err }

// LimitError indicates that allocating a buffer would exceed the memory limit.
type LimitError struct {
	Size  uint
	Limit uint
	Op    string
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("memory limit %v exceeded by %v of %v bytes", lim.Limit, lim.Op, lim.Size)
}
