package main

import (
	"context"
	"errors"
	"io"

	"github.com/gofmod/fmod/internal/config"
	"github.com/gofmod/fmod/internal/core"
	"github.com/gofmod/fmod/internal/panicerr"
)

func New(opts ...ShellOption) *Shell {
	var sh Shell
	sh.apply(opts...)
	sh.style = newStyles(sh.out, sh.style.enabled)
	sh.core = core.New(append(sh.coreOpts, core.WithLogf(func(mess string, args ...interface{}) {
		sh.logf("#", mess, args...)
	}))...)
	return &sh
}

// Run reads and executes lines until input runs out, an exit command, or ctx
// is done. Errors executing a line are printed and do not stop the shell.
func (sh *Shell) Run(ctx context.Context) error {
	err := panicerr.Recover("shell", func() error {
		return sh.run(ctx)
	})
	if ferr := sh.out.Flush(); err == nil || errors.Is(err, io.EOF) || errors.Is(err, errExit) {
		err = ferr
	}
	return err
}

func WithInput(r io.Reader) ShellOption                      { return withInput(r) }
func WithOutput(w io.Writer) ShellOption                     { return withOutput(w) }
func WithTee(w io.Writer) ShellOption                        { return withTee(w) }
func WithCloser(c io.Closer) ShellOption                     { return withCloser(c) }
func WithPrompt(prompt string) ShellOption                   { return withPrompt(prompt) }
func WithInteractive(interactive bool) ShellOption           { return withInteractive(interactive) }
func WithStyle(enabled bool) ShellOption                     { return withStyle(enabled) }
func WithCoreOptions(opts ...core.Option) ShellOption        { return withCoreOptions(opts...) }
func WithVariables(presets ...config.Assignment) ShellOption { return withVariables(presets...) }

func WithLogf(logfn func(mess string, args ...interface{})) ShellOption { return withLogfn(logfn) }
