// Package token splits command lines into typed words.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a Token.
type Kind uint8

// Token kinds, in classification priority order.
const (
	UInt Kind = iota + 1
	Word
	Variable
)

func (k Kind) String() string {
	switch k {
	case UInt:
		return "UInt"
	case Word:
		return "Word"
	case Variable:
		return "Variable"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Token is one classified word of an input line. Num is only meaningful for
// UInt tokens, Text holds the word or the referenced variable name otherwise.
type Token struct {
	Kind Kind
	Num  uint
	Text string
}

func UIntToken(n uint) Token          { return Token{Kind: UInt, Num: n} }
func WordToken(s string) Token        { return Token{Kind: Word, Text: s} }
func VariableToken(name string) Token { return Token{Kind: Variable, Text: name} }

func (tok Token) String() string {
	if tok.Kind == UInt {
		return fmt.Sprintf("UInt(%d)", tok.Num)
	}
	return fmt.Sprintf("%v(%s)", tok.Kind, tok.Text)
}

// Error is returned for a word that is neither an integer, a name, nor a
// variable reference.
type Error struct {
	Word string
	Err  error
}

func (err Error) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("could not tokenize word %q: %v", err.Word, err.Err)
	}
	return fmt.Sprintf("could not tokenize word %q", err.Word)
}

func (err Error) Unwrap() error { return err.Err }

// ErrOverflow is wrapped by an Error for integer literals that do not fit a uint.
var ErrOverflow = errors.New("integer literal out of range")

// Tokenize splits line on runs of whitespace and classifies every word. The
// first unclassifiable word fails the whole line.
func Tokenize(line string) ([]Token, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil, nil
	}
	toks := make([]Token, 0, len(words))
	for _, word := range words {
		tok, err := classify(word)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

func classify(word string) (Token, error) {
	if digits, base, ok := integerDigits(word); ok {
		n, err := strconv.ParseUint(digits, base, strconv.IntSize)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				err = ErrOverflow
			}
			return Token{}, Error{word, err}
		}
		return UIntToken(uint(n)), nil
	}
	if IsName(word) {
		return WordToken(word), nil
	}
	if name, ok := variableName(word); ok {
		return VariableToken(name), nil
	}
	return Token{}, Error{Word: word}
}

func integerDigits(word string) (digits string, base int, ok bool) {
	if hex := strings.TrimPrefix(word, "0x"); hex != word {
		return hex, 16, hex != "" && allOf(hex, isHexDigit)
	}
	return word, 10, word != "" && allOf(word, isDigit)
}

// IsName reports whether s matches [A-Za-z_.][A-Za-z_.0-9]*.
func IsName(s string) bool {
	if s == "" || !isNameStart(s[0]) {
		return false
	}
	return allOf(s[1:], isNameByte)
}

func variableName(word string) (string, bool) {
	if !strings.HasPrefix(word, "$") {
		return "", false
	}
	name := word[1:]
	if strings.HasPrefix(name, "(") {
		if !strings.HasSuffix(name, ")") {
			return "", false
		}
		name = name[1 : len(name)-1]
	}
	return name, IsName(name)
}

func allOf(s string, pred func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if !pred(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool    { return '0' <= c && c <= '9' }
func isNameByte(c byte) bool { return isNameStart(c) || isDigit(c) }
func isHexDigit(c byte) bool { return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F') }

func isNameStart(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_' || c == '.'
}
