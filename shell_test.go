package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofmod/fmod/internal/config"
	"github.com/gofmod/fmod/internal/core"
	"github.com/gofmod/fmod/internal/fileinput"
	"github.com/gofmod/fmod/internal/logio"
)

func TestShell(t *testing.T) {
	shellTestCases{
		shellTest("no input").
			expectOutput(""),

		shellTest("buffer round trip").
			withColumns(4).
			withInput(
				"make_buffer b 6",
				"buffer_write_bytes b 2 0xff 255",
				"show_buffer b 0 6",
			).
			expectOutput(lines(
				"- Buffer with name b and size 6 was created.",
				"- Bytes in buffer 'b' starting from 2 were written. Count of written bytes: 2.",
				"  | 0  1  2  3",
				"0 | 00 00 ff ff",
				"4 | 00 00",
			)),

		shellTest("comments and blank lines").
			withInput(
				"// nothing to see here",
				"",
				"   ",
				"make_buffer b 1 // one byte",
				"make_buffer//glued",
			).
			expectOutput(lines(
				"- Buffer with name b and size 1 was created.",
				"Error: make_buffer: unknown command template",
			)),

		shellTest("errors do not stop the shell").
			withInput(
				"show_buffer nope 0 1",
				"make_buffer x",
				"frobnicate the widget",
				"make_buffer $missing 1",
				"make_buffer b -1",
				"make_buffer b 1",
			).
			expectOutput(lines(
				`Error: undefined buffer variable "nope"`,
				"Error: make_buffer: unknown command template",
				"Error: unknown variable $missing",
				`Error: could not tokenize word "-1"`,
				"- Buffer with name b and size 1 was created.",
			)).
			expectVariable("b", "<buffer>"),

		shellTest("warnings follow info").
			withInput(
				"make_buffer b 2",
				"buffer_write_bytes b 1 1 2 3",
				"show_buffer b 2 4",
			).
			expectOutput(lines(
				"- Buffer with name b and size 2 was created.",
				"- Bytes in buffer 'b' starting from 1 were written. Count of written bytes: 1.",
				"",
				"Warning: Not all bytes were written.",
				"Warning: Buffer 'b' doesn't have index 2.",
			)),

		shellTest("variables substitute operands").
			withColumns(2).
			withInput(
				"set_variable size 3",
				"set_variable name buf",
				"make_buffer $name $(size)",
				"fill_buffer buf 7 0 $size",
				"show_buffer $(name) 0 $size",
			).
			expectOutput(lines(
				"- Value in size variable was set to '3' value.",
				"- Value in name variable was set to 'buf' value.",
				"- Buffer with name buf and size 3 was created.",
				"- Bytes in the amount of 3 pieces were filled by 7 value in buffer 'buf'.",
				"  | 0  1",
				"0 | 07 07",
				"2 | 07",
			)),

		shellTest("files").
			withTempDir().
			withInput(
				"create_file out.bin 4",
				"make_buffer b 4",
				"buffer_set_byte b 0 0x41",
				"from_buffer_to_file b out.bin 4 0 0",
				"open_file out.bin",
				"from_buffer_to_file b out.bin 1 0 0",
			).
			expectOutput(lines(
				"- File with name out.bin and size 4 was created.",
				"- Buffer with name b and size 4 was created.",
				"- Index 0 in buffer with name b was set to 65.",
				"- Bytes of buffer b in the amount of 4 pieces were written to file out.bin.",
				"- The file out.bin is opened.",
				`Error: writing to read only file "out.bin"`,
			)).
			expectFile("out.bin", "A\x00\x00\x00").
			expectVariable("out.bin", "<file>"),

		shellTest("inputs share variables").
			withInput("make_buffer b 1").
			withInput("buffer_info b").
			expectOutput(lines(
				"- Buffer with name b and size 1 was created.",
				"- Name: b.",
				"- Size: 1 bytes.",
			)),

		shellTest("exit").
			withInput(
				"make_buffer a 1",
				"exit",
				"make_buffer b 1",
			).
			expectOutput(lines(
				"- Buffer with name a and size 1 was created.",
			)).
			expectVariable("a", "<buffer>").
			expectNoVariable("b"),

		shellTest("exit ignores operands").
			withInput(
				"exit now",
				"make_buffer b 1",
			).
			expectOutput("").
			expectNoVariable("b"),

		shellTest("help topics").
			withInput(
				"help make_buffer",
				"help buffer_write_bytes",
				"help exit",
				"help nope",
				"help show_file please",
			).
			expectOutput(lines(
				"make_buffer <name> <size>  creates a zero filled buffer",
				"buffer_write_bytes <name> <start> <byte...>  writes bytes into a buffer starting at start",
				"exit  stops reading commands",
				"Error: command not found: nope",
				"show_file <file> <start> <end>  shows the range [start, end) of a file as a table",
			)),

		shellTest("help lists every command").
			withInput("help").
			expectOutputFunc(func(t *testing.T, output string) {
				for _, tmpl := range core.Templates() {
					assert.Contains(t, output, tmpl.Usage())
				}
				assert.Contains(t, output, "help [<command>]")
				assert.True(t, strings.HasPrefix(output, "- fmod edits buffers and files byte by byte"))
				assert.Equal(t, 2+len(core.Templates())+len(metaHelp), strings.Count(output, "\n"))
			}),

		shellTest("presets").
			withOptions(WithVariables(
				config.Assignment{Name: "size", Value: "0x10"},
				config.Assignment{Name: "n", Value: "mbr"},
				config.Assignment{Name: "bad", Value: "-"},
			)).
			withInput(
				"make_buffer $n $size",
				"variables_list",
			).
			expectOutput(lines(
				"Warning: Could not parse variable assignment bad=-.",
				"- Buffer with name mbr and size 16 was created.",
				"- mbr = <buffer>",
				"- n = mbr",
				"- size = 16",
			)),

		shellTest("interactive prompt").
			withOptions(WithInteractive(true), WithPrompt("> ")).
			withInput("make_buffer b 1").
			expectOutput("> - Buffer with name b and size 1 was created.\n> "),

		shellTest("decimal cells").
			withOptions(WithCoreOptions(core.WithCellFormat(core.CellDecimal), core.WithColumns(4))).
			withInput(
				"make_buffer b 2",
				"buffer_write_bytes b 0 200 5",
				"show_buffer b 0 2",
			).
			expectOutput(lines(
				"- Buffer with name b and size 2 was created.",
				"- Bytes in buffer 'b' starting from 0 were written. Count of written bytes: 2.",
				"  | 0   1 2 3",
				"0 | 200 5",
			)),

		shellTest("memory limit").
			withOptions(WithCoreOptions(core.WithMemLimit(8))).
			withInput(
				"make_buffer b 9",
				"make_buffer b 8",
			).
			expectOutput(lines(
				"Error: memory limit 8 exceeded by make_buffer of 9 bytes",
				"- Buffer with name b and size 8 was created.",
			)),

		shellTest("cancelled").
			withContext(func(ctx context.Context) context.Context {
				ctx, cancel := context.WithCancel(ctx)
				cancel()
				return ctx
			}).
			withInput("make_buffer b 1").
			expectError(context.Canceled).
			expectOutput("").
			expectNoVariable("b"),
	}.run(t)
}

func TestShell_tee(t *testing.T) {
	var out, tee strings.Builder
	sh := New(
		WithInput(strings.NewReader("make_buffer b 1\n")),
		WithOutput(&out),
		WithTee(&tee),
		WithLogf(t.Logf),
	)
	require.NoError(t, sh.Run(context.Background()))
	require.NoError(t, sh.Close())
	assert.Equal(t, "- Buffer with name b and size 1 was created.\n", out.String())
	assert.Equal(t, out.String(), tee.String())
}

func TestShell_readError(t *testing.T) {
	errGone := errors.New("device gone")
	var out strings.Builder
	sh := New(
		WithInput(fileinput.NamedReader("script", io.MultiReader(
			strings.NewReader("make_buffer b 1\n"),
			iotest.ErrReader(errGone),
		))),
		WithOutput(&out),
		WithLogf(t.Logf),
	)
	err := sh.Run(context.Background())
	assert.True(t, errors.Is(err, errGone), "unexpected error: %v", err)
	assert.EqualError(t, err, "failed to read script:2: device gone")
	assert.Equal(t, "- Buffer with name b and size 1 was created.\n", out.String())
	require.NoError(t, sh.Close())
}

func TestShell_style(t *testing.T) {
	var out strings.Builder
	sh := New(
		WithInput(strings.NewReader("show_buffer b 0 1\nmake_buffer b 1\nshow_buffer b 1 2\n")),
		WithOutput(&out),
		WithStyle(true),
	)
	require.NoError(t, sh.Run(context.Background()))
	require.NoError(t, sh.Close())
	assert.Contains(t, out.String(), "\x1b[", "expected ANSI styling")
	assert.Contains(t, out.String(), "Error:")
	assert.Contains(t, out.String(), "Warning:")
	assert.Contains(t, out.String(), "Buffer with name b and size 1 was created.")
}

func TestPresetCommand(t *testing.T) {
	for _, tc := range []struct {
		in   config.Assignment
		cmd  core.Command
		fail bool
	}{
		{in: config.Assignment{Name: "n", Value: "16"}, cmd: core.SetVariableInteger{Name: "n", Value: 16}},
		{in: config.Assignment{Name: "n", Value: "0x10"}, cmd: core.SetVariableInteger{Name: "n", Value: 16}},
		{in: config.Assignment{Name: "n", Value: "mbr"}, cmd: core.SetVariableString{Name: "n", Value: "mbr"}},
		{in: config.Assignment{Name: "n", Value: "$x"}, fail: true},
		{in: config.Assignment{Name: "n", Value: "a b"}, fail: true},
		{in: config.Assignment{Name: "n", Value: ""}, fail: true},
		{in: config.Assignment{Name: "9n", Value: "1"}, fail: true},
	} {
		t.Run(tc.in.String(), func(t *testing.T) {
			cmd, ok := presetCommand(tc.in)
			if tc.fail {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tc.cmd, cmd)
		})
	}
}

func TestStripComment(t *testing.T) {
	assert.Equal(t, "make_buffer b 1 ", stripComment("make_buffer b 1 // note"))
	assert.Equal(t, "", stripComment("// all comment"))
	assert.Equal(t, "a / b", stripComment("a / b"))
}

type shellTestCases []shellTestCase

func (sts shellTestCases) run(t *testing.T) {
	for _, st := range sts {
		if !t.Run(st.name, st.run) {
			return
		}
	}
}

func shellTest(name string) (st shellTestCase) {
	st.name = name
	return st
}

type shellTestCase struct {
	name    string
	opts    []func(t *testing.T) ShellOption
	expect  []func(t *testing.T, sh *Shell)
	ctx     func(ctx context.Context) context.Context
	wantErr error

	dir         *string
	nextInputID int
}

func (st shellTestCase) withOptions(opts ...ShellOption) shellTestCase {
	for _, opt := range opts {
		opt := opt
		st.opts = append(st.opts, func(t *testing.T) ShellOption { return opt })
	}
	return st
}

func (st shellTestCase) withColumns(n uint) shellTestCase {
	return st.withOptions(WithCoreOptions(core.WithColumns(n)))
}

func (st shellTestCase) withInput(lines ...string) shellTestCase {
	id := st.nextInputID
	st.nextInputID++
	input := strings.Join(lines, "\n") + "\n"
	st.opts = append(st.opts, func(t *testing.T) ShellOption {
		name := t.Name() + "/input"
		if id > 0 {
			name += "_" + string(rune('1'+id))
		}
		return WithInput(fileinput.NamedReader(name, strings.NewReader(input)))
	})
	return st
}

func (st shellTestCase) withTempDir() shellTestCase {
	dir := new(string)
	st.dir = dir
	st.opts = append(st.opts, func(t *testing.T) ShellOption {
		*dir = t.TempDir()
		return WithCoreOptions(core.WithFS(core.OSFS{Dir: *dir}))
	})
	return st
}

func (st shellTestCase) withContext(ctx func(ctx context.Context) context.Context) shellTestCase {
	st.ctx = ctx
	return st
}

func (st shellTestCase) expectError(err error) shellTestCase {
	st.wantErr = err
	return st
}

func (st shellTestCase) expectOutput(output string) shellTestCase {
	return st.expectOutputFunc(func(t *testing.T, got string) {
		assert.Equal(t, output, got, "expected output")
	})
}

func (st shellTestCase) expectOutputFunc(check func(t *testing.T, output string)) shellTestCase {
	var out strings.Builder
	st.opts = append(st.opts, func(t *testing.T) ShellOption {
		out.Reset()
		return WithOutput(&out)
	})
	st.expect = append(st.expect, func(t *testing.T, sh *Shell) {
		check(t, out.String())
	})
	return st
}

func (st shellTestCase) expectVariable(name, display string) shellTestCase {
	st.expect = append(st.expect, func(t *testing.T, sh *Shell) {
		val, ok := sh.core.Vars.Get(name)
		if assert.True(t, ok, "expected variable %q to be bound", name) {
			assert.Equal(t, display, core.Variable{Name: name, Value: val}.Display(), "expected variable %q value", name)
		}
	})
	return st
}

func (st shellTestCase) expectNoVariable(name string) shellTestCase {
	st.expect = append(st.expect, func(t *testing.T, sh *Shell) {
		_, ok := sh.core.Vars.Get(name)
		assert.False(t, ok, "expected variable %q to be unbound", name)
	})
	return st
}

func (st shellTestCase) expectFile(name, content string) shellTestCase {
	dir := st.dir
	st.expect = append(st.expect, func(t *testing.T, sh *Shell) {
		require.NotNil(t, dir, "expectFile requires withTempDir")
		b, err := os.ReadFile(filepath.Join(*dir, name))
		if assert.NoError(t, err) {
			assert.Equal(t, content, string(b), "expected %v content", name)
		}
	})
	return st
}

func (st shellTestCase) run(t *testing.T) {
	var opts []ShellOption
	for _, opt := range st.opts {
		opts = append(opts, opt(t))
	}
	opts = append(opts,
		WithLogf(t.Logf),
		WithTee(&logio.Writer{Logf: t.Logf, Mark: "<"}),
	)
	sh := New(opts...)
	defer func() {
		assert.NoError(t, sh.Close(), "unexpected close error")
	}()

	ctx := context.Background()
	if st.ctx != nil {
		ctx = st.ctx(ctx)
	}
	if err := sh.Run(ctx); st.wantErr != nil {
		assert.True(t, errors.Is(err, st.wantErr), "expected error: %v\ngot: %+v", st.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected shell run error")
	}

	for _, expect := range st.expect {
		expect(t, sh)
	}
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}
