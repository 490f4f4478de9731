// Package core implements the byte editing engine: the variable table, the
// buffers and files it holds, and the commands that operate on them.
package core

import (
	"fmt"

	"github.com/gofmod/fmod/internal/token"
)

// Core executes commands against its variable table.
type Core struct {
	Vars Variables

	fs       FS
	columns  uint
	format   CellFormat
	memLimit uint
	logfn    func(mess string, args ...interface{})
}

// New creates a Core, applying the given options over defaults of 16 hex
// columns, a DefaultMemLimit bound, and files relative to the working
// directory.
func New(opts ...Option) *Core {
	var core Core
	defaultOptions.apply(&core)
	Options(opts...).apply(&core)
	return &core
}

// Close closes every file held by the variable table.
func (core *Core) Close() error { return core.Vars.Close() }

// ParseLine runs a line through tokenizing, variable resolution, and parsing.
func (core *Core) ParseLine(line string) (Command, error) {
	toks, err := token.Tokenize(line)
	if err != nil {
		return nil, err
	}
	ops, err := Resolve(&core.Vars, toks)
	if err != nil {
		return nil, err
	}
	return Parse(ops)
}

// Execute runs one command. Every failure is reported before any state is
// changed; short transfers are reported in the output instead of failing.
func (core *Core) Execute(cmd Command) (*Output, error) {
	var out Output
	var err error
	switch cmd := cmd.(type) {
	case Nop:
	case MakeBuffer:
		err = core.makeBuffer(&out, cmd)
	case FillBuffer:
		err = core.fillBuffer(&out, cmd)
	case ShowBuffer:
		err = core.showBuffer(&out, cmd)
	case BufferInfo:
		err = core.bufferInfo(&out, cmd)
	case BufferSetByte:
		err = core.bufferSetByte(&out, cmd)
	case BufferWriteBytes:
		err = core.bufferWriteBytes(&out, cmd)
	case MergeBuffers:
		err = core.mergeBuffers(&out, cmd)
	case PullOutSlice:
		err = core.pullOutSlice(&out, cmd)
	case CreateFile:
		err = core.createFile(&out, cmd)
	case OpenFile:
		err = core.openFile(&out, cmd)
	case ShowFile:
		err = core.showFile(&out, cmd)
	case FromFileToBuffer:
		err = core.fromFileToBuffer(&out, cmd)
	case FromBufferToFile:
		err = core.fromBufferToFile(&out, cmd)
	case TurnBufferToFile:
		err = core.turnBufferToFile(&out, cmd)
	case TurnFileToBuffer:
		err = core.turnFileToBuffer(&out, cmd)
	case SetVariableInteger:
		err = core.setVariableInteger(&out, cmd)
	case SetVariableString:
		err = core.setVariableString(&out, cmd)
	case GetVariable:
		err = core.getVariable(&out, cmd)
	case VariablesList:
		core.variablesList(&out)
	default:
		err = fmt.Errorf("unsupported command %T", cmd)
	}
	if err != nil {
		core.logf("%v failed: %v", CommandName(cmd), err)
		return nil, err
	}
	return &out, nil
}

func (core *Core) logf(mess string, args ...interface{}) {
	if core.logfn != nil {
		core.logfn(mess, args...)
	}
}

func (core *Core) buffer(name string) (*Buffer, error) {
	if buf, ok := core.Vars.Buffer(name); ok {
		return buf, nil
	}
	return nil, UndefinedVariableError{name, "buffer"}
}

func (core *Core) file(name string) (File, error) {
	if f, ok := core.Vars.File(name); ok {
		return f, nil
	}
	return nil, UndefinedVariableError{name, "file"}
}

func (core *Core) checkLimit(op string, size uint) error {
	if core.memLimit != 0 && size > core.memLimit {
		return LimitError{size, core.memLimit, op}
	}
	return nil
}

// bind reports errors closing a replaced file as warnings; the new value is
// bound regardless.
func (core *Core) bind(out *Output, err error) {
	if err != nil {
		out.Warnf("%v", err)
	}
}
