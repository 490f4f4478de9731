package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gofmod/fmod/internal/config"
	"github.com/gofmod/fmod/internal/core"
	"github.com/gofmod/fmod/internal/fileinput"
	"github.com/gofmod/fmod/internal/flushio"
	"github.com/gofmod/fmod/internal/panicerr"
	"github.com/gofmod/fmod/internal/token"
)

// Shell reads command lines from its Input, executes them against a core, and
// renders each result to its output.
type Shell struct {
	logging
	fileinput.Input
	out     flushio.WriteFlusher
	closers []io.Closer

	core     *core.Core
	coreOpts []core.Option
	presets  []config.Assignment

	prompt      string
	interactive bool
	style       styles
}

// Close closes the core's files, any remaining input, and anything else the
// shell was given ownership of.
func (sh *Shell) Close() (err error) {
	if sh.core != nil {
		err = sh.core.Close()
	}
	if cerr := sh.Input.Close(); err == nil {
		err = cerr
	}
	for i := len(sh.closers) - 1; i >= 0; i-- {
		if cerr := sh.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

var errExit = errors.New("exit")

func (sh *Shell) run(ctx context.Context) error {
	sh.logf("#", "start")
	defer sh.logf("#", "stop")

	if err := sh.applyPresets(); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if sh.interactive {
			if _, err := io.WriteString(sh.out, sh.prompt); err != nil {
				return err
			}
		}
		if err := sh.out.Flush(); err != nil {
			return err
		}

		line, err := sh.ReadLine()
		if errors.Is(err, io.EOF) {
			return err
		} else if err != nil {
			return fmt.Errorf("failed to read %v: %w", sh.Location(), err)
		}
		sh.logf(">", "%v", line)

		if err := sh.handle(line.Text); errors.Is(err, errExit) {
			return err
		} else if err != nil {
			sh.logf("!", "%v: %v", line.Location, err)
			if err := sh.renderError(err); err != nil {
				return err
			}
		}
	}
}

// handle runs one line, returning any error that should be reported to the
// user, or errExit.
func (sh *Shell) handle(text string) error {
	text = stripComment(text)

	if out, handled, err := sh.meta(strings.Fields(text)); err != nil {
		return err
	} else if handled {
		return sh.render(out)
	}

	cmd, err := sh.core.ParseLine(text)
	if err != nil {
		return err
	}

	var out *core.Output
	if err := panicerr.Recover(core.CommandName(cmd), func() (err error) {
		out, err = sh.core.Execute(cmd)
		return err
	}); err != nil {
		if panicerr.IsPanic(err) {
			sh.logf("!", "%+v", err)
		}
		return err
	}
	return sh.render(out)
}

func stripComment(text string) string {
	if i := strings.Index(text, "//"); i >= 0 {
		return text[:i]
	}
	return text
}

// applyPresets binds variable assignments given before the first line.
// Values that are neither unsigned integers nor names are warned about and
// skipped.
func (sh *Shell) applyPresets() error {
	var out core.Output
	for _, a := range sh.presets {
		cmd, ok := presetCommand(a)
		if !ok {
			out.Warnf("Could not parse variable assignment %v.", a)
			continue
		}
		sh.logf("#", "preset %v", a)
		if _, err := sh.core.Execute(cmd); err != nil {
			out.Warnf("%v: %v", a, err)
		}
	}
	return sh.render(&out)
}

func presetCommand(a config.Assignment) (core.Command, bool) {
	if !token.IsName(a.Name) {
		return nil, false
	}
	toks, err := token.Tokenize(a.Value)
	if err != nil || len(toks) != 1 {
		return nil, false
	}
	switch tok := toks[0]; tok.Kind {
	case token.UInt:
		return core.SetVariableInteger{Name: a.Name, Value: tok.Num}, true
	case token.Word:
		return core.SetVariableString{Name: a.Name, Value: tok.Text}, true
	}
	return nil, false
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
