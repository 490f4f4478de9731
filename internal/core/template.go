package core

import (
	"sort"
	"strings"
)

type argKind uint8

const (
	nameArg argKind = iota
	uintArg
	byteArg
	scalarArg
)

type arg struct {
	name string
	kind argKind
}

// Template is the fixed operand signature of one command.
type Template struct {
	Name string
	Desc string

	args  []arg
	tail  *arg
	build func(args []Operand) Command
}

// Usage renders the template like "make_buffer <name> <size>".
func (tmpl Template) Usage() string {
	var sb strings.Builder
	sb.WriteString(tmpl.Name)
	for _, a := range tmpl.args {
		sb.WriteString(" <")
		sb.WriteString(a.name)
		sb.WriteString(">")
	}
	if tmpl.tail != nil {
		sb.WriteString(" <")
		sb.WriteString(tmpl.tail.name)
		sb.WriteString("...>")
	}
	return sb.String()
}

func (tmpl Template) match(args []Operand) bool {
	if tmpl.tail == nil && len(args) != len(tmpl.args) {
		return false
	}
	if len(args) < len(tmpl.args) {
		return false
	}
	for i, op := range args {
		a := tmpl.tail
		if i < len(tmpl.args) {
			a = &tmpl.args[i]
		}
		if !a.kind.accepts(op) {
			return false
		}
	}
	return true
}

func (kind argKind) accepts(op Operand) bool {
	switch kind {
	case nameArg:
		return op.IsName()
	case uintArg:
		return op.IsUInt()
	case byteArg:
		return op.IsUInt() && op.Num <= 0xff
	case scalarArg:
		return op.IsUInt() || op.IsName()
	}
	return false
}

func nameParam(s string) arg { return arg{s, nameArg} }
func uintParam(s string) arg { return arg{s, uintArg} }
func byteParam(s string) arg { return arg{s, byteArg} }

var templates = map[string]Template{}

func define(tmpl Template) {
	templates[tmpl.Name] = tmpl
}

// LookupTemplate returns the template for a command name.
func LookupTemplate(cmdName string) (Template, bool) {
	tmpl, ok := templates[cmdName]
	return tmpl, ok
}

// Templates returns every command template, sorted by name.
func Templates() []Template {
	all := make([]Template, 0, len(templates))
	for _, tmpl := range templates {
		all = append(all, tmpl)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

func init() {
	define(Template{
		Name: "make_buffer",
		Desc: "creates a zero filled buffer",
		args: []arg{nameParam("name"), uintParam("size")},
		build: func(a []Operand) Command {
			return MakeBuffer{a[0].Name, a[1].Num}
		},
	})
	define(Template{
		Name: "fill_buffer",
		Desc: "fills the range [start, end) of a buffer with value",
		args: []arg{nameParam("name"), byteParam("value"), uintParam("start"), uintParam("end")},
		build: func(a []Operand) Command {
			return FillBuffer{a[0].Name, byte(a[1].Num), a[2].Num, a[3].Num}
		},
	})
	define(Template{
		Name: "show_buffer",
		Desc: "shows the range [start, end) of a buffer as a table",
		args: []arg{nameParam("name"), uintParam("start"), uintParam("end")},
		build: func(a []Operand) Command {
			return ShowBuffer{a[0].Name, a[1].Num, a[2].Num}
		},
	})
	define(Template{
		Name: "buffer_info",
		Desc: "shows the name and size of a buffer",
		args: []arg{nameParam("name")},
		build: func(a []Operand) Command {
			return BufferInfo{a[0].Name}
		},
	})
	define(Template{
		Name: "buffer_set_byte",
		Desc: "sets one byte of a buffer",
		args: []arg{nameParam("name"), uintParam("index"), byteParam("value")},
		build: func(a []Operand) Command {
			return BufferSetByte{a[0].Name, a[1].Num, byte(a[2].Num)}
		},
	})
	define(Template{
		Name: "create_file",
		Desc: "creates a new zero filled file, failing if it exists",
		args: []arg{nameParam("file"), uintParam("size")},
		build: func(a []Operand) Command {
			return CreateFile{a[0].Name, a[1].Num}
		},
	})
	define(Template{
		Name: "from_file_to_buffer",
		Desc: "copies count bytes of a file into a buffer",
		args: []arg{nameParam("file"), nameParam("buffer"), uintParam("count"), uintParam("file_start"), uintParam("buffer_start")},
		build: func(a []Operand) Command {
			return FromFileToBuffer{a[0].Name, a[1].Name, a[2].Num, a[3].Num, a[4].Num}
		},
	})
	define(Template{
		Name: "from_buffer_to_file",
		Desc: "copies count bytes of a buffer into a created file",
		args: []arg{nameParam("buffer"), nameParam("file"), uintParam("count"), uintParam("buffer_start"), uintParam("file_start")},
		build: func(a []Operand) Command {
			return FromBufferToFile{a[0].Name, a[1].Name, a[2].Num, a[3].Num, a[4].Num}
		},
	})
	define(Template{
		Name: "open_file",
		Desc: "opens an existing file read only",
		args: []arg{nameParam("file")},
		build: func(a []Operand) Command {
			return OpenFile{a[0].Name}
		},
	})
	define(Template{
		Name: "show_file",
		Desc: "shows the range [start, end) of a file as a table",
		args: []arg{nameParam("file"), uintParam("start"), uintParam("end")},
		build: func(a []Operand) Command {
			return ShowFile{a[0].Name, a[1].Num, a[2].Num}
		},
	})
	define(Template{
		Name: "buffer_write_bytes",
		Desc: "writes bytes into a buffer starting at start",
		args: []arg{nameParam("name"), uintParam("start")},
		tail: &arg{"byte", byteArg},
		build: func(a []Operand) Command {
			bytes := make([]byte, 0, len(a)-2)
			for _, op := range a[2:] {
				bytes = append(bytes, byte(op.Num))
			}
			return BufferWriteBytes{a[0].Name, a[1].Num, bytes}
		},
	})
	define(Template{
		Name: "merge_buffers",
		Desc: "creates a new buffer holding left followed by right",
		args: []arg{nameParam("left"), nameParam("right"), nameParam("new")},
		build: func(a []Operand) Command {
			return MergeBuffers{a[0].Name, a[1].Name, a[2].Name}
		},
	})
	define(Template{
		Name: "pull_out_slice",
		Desc: "copies the range [start, end) of a buffer into a new buffer",
		args: []arg{nameParam("name"), nameParam("new"), uintParam("start"), uintParam("end")},
		build: func(a []Operand) Command {
			return PullOutSlice{a[0].Name, a[1].Name, a[2].Num, a[3].Num}
		},
	})
	define(Template{
		Name: "turn_buffer_to_file",
		Desc: "creates a new file holding a copy of a buffer",
		args: []arg{nameParam("buffer"), nameParam("file")},
		build: func(a []Operand) Command {
			return TurnBufferToFile{a[0].Name, a[1].Name}
		},
	})
	define(Template{
		Name: "turn_file_to_buffer",
		Desc: "creates a new buffer holding a copy of a file",
		args: []arg{nameParam("file"), nameParam("buffer")},
		build: func(a []Operand) Command {
			return TurnFileToBuffer{a[0].Name, a[1].Name}
		},
	})
	define(Template{
		Name: "set_variable",
		Desc: "binds an integer or a name to a variable",
		args: []arg{nameParam("name"), {"value", scalarArg}},
		build: func(a []Operand) Command {
			if a[1].IsUInt() {
				return SetVariableInteger{a[0].Name, a[1].Num}
			}
			return SetVariableString{a[0].Name, a[1].Name}
		},
	})
	define(Template{
		Name: "get_variable",
		Desc: "shows the value of a variable",
		args: []arg{nameParam("name")},
		build: func(a []Operand) Command {
			return GetVariable{a[0].Name}
		},
	})
	define(Template{
		Name: "variables_list",
		Desc: "lists every variable",
		build: func(a []Operand) Command {
			return VariablesList{}
		},
	})
}
