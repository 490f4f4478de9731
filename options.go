package main

import (
	"io"

	"github.com/gofmod/fmod/internal/config"
	"github.com/gofmod/fmod/internal/core"
	"github.com/gofmod/fmod/internal/flushio"
)

type ShellOption interface{ apply(sh *Shell) }

var defaults = []ShellOption{
	withOutput(io.Discard),
	withPrompt(config.DefaultPrompt),
}

func (sh *Shell) apply(opts ...ShellOption) {
	for _, opt := range defaults {
		if opt != nil {
			opt.apply(sh)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(sh)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(sh *Shell) {
	sh.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type closerOption struct{ io.Closer }
type promptOption string
type interactiveOption bool
type styleOption bool
type coreOptions []core.Option
type variablesOption []config.Assignment

func withInput(r io.Reader) inputOption                          { return inputOption{r} }
func withOutput(w io.Writer) outputOption                        { return outputOption{w} }
func withTee(w io.Writer) teeOption                              { return teeOption{w} }
func withCloser(c io.Closer) closerOption                        { return closerOption{c} }
func withPrompt(prompt string) promptOption                      { return promptOption(prompt) }
func withInteractive(interactive bool) interactiveOption         { return interactiveOption(interactive) }
func withStyle(enabled bool) styleOption                         { return styleOption(enabled) }
func withCoreOptions(opts ...core.Option) coreOptions            { return coreOptions(opts) }
func withVariables(presets ...config.Assignment) variablesOption { return variablesOption(presets) }

func (i inputOption) apply(sh *Shell) {
	sh.Input.Push(i.Reader)
}

func (o outputOption) apply(sh *Shell) {
	if sh.out != nil {
		sh.out.Flush()
	}
	sh.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(sh *Shell) {
	sh.out = flushio.WriteFlushers(sh.out, flushio.NewWriteFlusher(o.Writer))
}

func (c closerOption) apply(sh *Shell) {
	sh.closers = append(sh.closers, c.Closer)
}

func (prompt promptOption) apply(sh *Shell) {
	sh.prompt = string(prompt)
}

func (interactive interactiveOption) apply(sh *Shell) {
	sh.interactive = bool(interactive)
}

func (enabled styleOption) apply(sh *Shell) {
	sh.style.enabled = bool(enabled)
}

func (opts coreOptions) apply(sh *Shell) {
	sh.coreOpts = append(sh.coreOpts, opts...)
}

func (presets variablesOption) apply(sh *Shell) {
	sh.presets = append(sh.presets, presets...)
}
