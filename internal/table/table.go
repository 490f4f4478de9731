// Package table lays out labeled grids of short strings as aligned text.
package table

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxShortLen is the maximum rune count of a ShortString.
const MaxShortLen = 4

// ErrTooLong is returned when constructing a ShortString from a longer string.
var ErrTooLong = errors.New("short string too long")

// ShortString is a cell sized string of at most MaxShortLen runes.
type ShortString struct{ s string }

// NewShortString validates s, returning ErrTooLong if it has too many runes.
func NewShortString(s string) (ShortString, error) {
	if utf8.RuneCountInString(s) > MaxShortLen {
		return ShortString{}, fmt.Errorf("%w: %q", ErrTooLong, s)
	}
	return ShortString{s}, nil
}

// MustShortString is like NewShortString but panics on error.
func MustShortString(s string) ShortString {
	ss, err := NewShortString(s)
	if err != nil {
		panic(err)
	}
	return ss
}

func (ss ShortString) String() string { return ss.s }
func (ss ShortString) Len() int       { return utf8.RuneCountInString(ss.s) }

// Block is anything rendered into the structured section of command output.
type Block interface {
	Render() string
}

// Table is a grid with a name for every row and column. Cells are stored
// row-major, and may only be set once.
type Table struct {
	rows    []string
	columns []ShortString
	data    []ShortString
	set     []bool
}

// New creates an empty table with the given row and column names.
func New(rows []string, columns []ShortString) *Table {
	n := len(rows) * len(columns)
	return &Table{
		rows:    rows,
		columns: columns,
		data:    make([]ShortString, n),
		set:     make([]bool, n),
	}
}

func (t *Table) Rows() []string               { return t.rows }
func (t *Table) Columns() []ShortString       { return t.columns }
func (t *Table) Get(row, col int) ShortString { return t.data[t.index(row, col)] }

// Set writes a cell; it panics if the cell is out of range or already set.
func (t *Table) Set(row, col int, v ShortString) {
	i := t.index(row, col)
	if t.set[i] {
		panic(fmt.Sprintf("table cell [%d, %d] already set", row, col))
	}
	t.data[i] = v
	t.set[i] = true
}

func (t *Table) index(row, col int) int {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= len(t.columns) {
		panic(fmt.Sprintf("table cell [%d, %d] out of range %dx%d",
			row, col, len(t.rows), len(t.columns)))
	}
	return row*len(t.columns) + col
}

// Render implements Block.
func (t *Table) Render() string { return Render(t) }

const separator = " | "

// Render lays the table out as a header line followed by one line per row.
// The row name strip comes first, then a separator, then every column strip
// padded to its widest entry and separated by a single space.
func Render(t *Table) string {
	strips := make([][]string, 0, len(t.columns)+1)

	names := make([]string, 0, len(t.rows)+1)
	names = append(names, "")
	names = append(names, t.rows...)
	strips = append(strips, names)

	for col, name := range t.columns {
		strip := make([]string, 0, len(t.rows)+1)
		strip = append(strip, name.String())
		for row := range t.rows {
			strip = append(strip, t.Get(row, col).String())
		}
		strips = append(strips, strip)
	}
	for _, strip := range strips {
		padStrip(strip)
	}

	var sb strings.Builder
	for line := 0; line <= len(t.rows); line++ {
		var lb strings.Builder
		lb.WriteString(strips[0][line])
		lb.WriteString(separator)
		for i, strip := range strips[1:] {
			if i > 0 {
				lb.WriteByte(' ')
			}
			lb.WriteString(strip[line])
		}
		sb.WriteString(strings.TrimRight(lb.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func padStrip(strip []string) {
	width := 0
	for _, s := range strip {
		if n := utf8.RuneCountInString(s); n > width {
			width = n
		}
	}
	for i, s := range strip {
		if n := utf8.RuneCountInString(s); n < width {
			strip[i] = s + strings.Repeat(" ", width-n)
		}
	}
}
