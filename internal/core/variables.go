package core

import (
	"fmt"
	"sort"
)

// Value is held by a variable: a *Buffer, a File, an Integer, or a String.
type Value interface{ kind() string }

// Integer is an unsigned integer variable value.
type Integer uint

// String is a name valued variable value.
type String string

func (*Buffer) kind() string   { return "buffer" }
func (*NewFile) kind() string  { return "file" }
func (*ReadFile) kind() string { return "file" }
func (Integer) kind() string   { return "integer" }
func (String) kind() string    { return "string" }

// Variable is one named slot listed by Variables.All.
type Variable struct {
	Name  string
	Value Value
}

// Display renders the variable value, with a placeholder for buffers and
// files.
func (v Variable) Display() string {
	switch val := v.Value.(type) {
	case *Buffer:
		return "<buffer>"
	case File:
		return "<file>"
	case Integer:
		return fmt.Sprint(uint(val))
	case String:
		return string(val)
	}
	return fmt.Sprintf("<%T>", v.Value)
}

func (v Variable) String() string { return fmt.Sprintf("%v = %v", v.Name, v.Display()) }

// Variables is the session's name to value table. Every name holds at most
// one value; binding a name replaces whatever it held before, closing any
// replaced file.
type Variables struct {
	values map[string]Value
}

func (vars *Variables) Len() int { return len(vars.values) }

// Get returns whatever value name holds, if any.
func (vars *Variables) Get(name string) (Value, bool) {
	v, ok := vars.values[name]
	return v, ok
}

func (vars *Variables) Buffer(name string) (*Buffer, bool) {
	buf, ok := vars.values[name].(*Buffer)
	return buf, ok
}

func (vars *Variables) File(name string) (File, bool) {
	f, ok := vars.values[name].(File)
	return f, ok
}

func (vars *Variables) Integer(name string) (uint, bool) {
	n, ok := vars.values[name].(Integer)
	return uint(n), ok
}

func (vars *Variables) String(name string) (string, bool) {
	s, ok := vars.values[name].(String)
	return string(s), ok
}

func (vars *Variables) BindBuffer(name string, buf *Buffer) error { return vars.bind(name, buf) }
func (vars *Variables) BindFile(name string, f File) error        { return vars.bind(name, f) }
func (vars *Variables) BindInteger(name string, n uint) error     { return vars.bind(name, Integer(n)) }
func (vars *Variables) BindString(name string, s string) error    { return vars.bind(name, String(s)) }

// bind always replaces; any error is from closing a replaced file.
func (vars *Variables) bind(name string, v Value) error {
	if vars.values == nil {
		vars.values = make(map[string]Value)
	}
	prior := vars.values[name]
	vars.values[name] = v
	if f, ok := prior.(File); ok && prior != v {
		return f.Close()
	}
	return nil
}

// All returns every variable, sorted by name.
func (vars *Variables) All() []Variable {
	all := make([]Variable, 0, len(vars.values))
	for name, v := range vars.values {
		all = append(all, Variable{name, v})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Close closes every bound file, returning the first error.
func (vars *Variables) Close() (err error) {
	for _, v := range vars.All() {
		if f, ok := v.Value.(File); ok {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
	}
	return err
}
