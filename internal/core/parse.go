package core

import "fmt"

// Parse matches operands against the template named by the first one.
//
// Lines that do not start with a known command name parse as Nop. A known
// command whose remaining operands do not fit its template, by count, kind,
// or byte range, fails with ErrUnknownCommandTemplate.
func Parse(ops []Operand) (Command, error) {
	if len(ops) == 0 || !ops[0].IsName() {
		return Nop{}, nil
	}
	tmpl, ok := LookupTemplate(ops[0].Name)
	if !ok {
		return Nop{}, nil
	}
	args := ops[1:]
	if !tmpl.match(args) {
		return nil, fmt.Errorf("%v: %w", tmpl.Name, ErrUnknownCommandTemplate)
	}
	return tmpl.build(args), nil
}
