package core

import (
	"fmt"

	"github.com/gofmod/fmod/internal/token"
)

// OperandKind distinguishes integer operands from name operands.
type OperandKind uint8

const (
	UIntOperand OperandKind = iota + 1
	NameOperand
)

// Operand is a resolved token: a literal unsigned integer or a name.
type Operand struct {
	Kind OperandKind
	Num  uint
	Name string
}

func UInt(n uint) Operand       { return Operand{Kind: UIntOperand, Num: n} }
func Name(s string) Operand     { return Operand{Kind: NameOperand, Name: s} }
func (op Operand) IsUInt() bool { return op.Kind == UIntOperand }
func (op Operand) IsName() bool { return op.Kind == NameOperand }

func (op Operand) String() string {
	if op.IsUInt() {
		return fmt.Sprintf("UInt(%d)", op.Num)
	}
	return fmt.Sprintf("Name(%s)", op.Name)
}

// Resolve turns tokens into operands, substituting variable references with
// the integer or string they hold. Referencing anything else fails the whole
// line with an UnknownVariableError.
func Resolve(vars *Variables, toks []token.Token) ([]Operand, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	ops := make([]Operand, 0, len(toks))
	for _, tok := range toks {
		switch tok.Kind {
		case token.UInt:
			ops = append(ops, UInt(tok.Num))
		case token.Word:
			ops = append(ops, Name(tok.Text))
		case token.Variable:
			if n, ok := vars.Integer(tok.Text); ok {
				ops = append(ops, UInt(n))
			} else if s, ok := vars.String(tok.Text); ok {
				ops = append(ops, Name(s))
			} else {
				return nil, UnknownVariableError{tok.Text}
			}
		default:
			return nil, fmt.Errorf("invalid token %v", tok)
		}
	}
	return ops, nil
}
