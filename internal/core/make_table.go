package core

import (
	"fmt"
	"strconv"

	"github.com/gofmod/fmod/internal/table"
)

// CellFormat selects how makeTable renders byte cells.
type CellFormat uint8

const (
	CellHex CellFormat = iota
	CellDecimal
)

func (cf CellFormat) cell(b byte) table.ShortString {
	if cf == CellDecimal {
		return table.MustShortString(strconv.Itoa(int(b)))
	}
	return table.MustShortString(fmt.Sprintf("%02x", b))
}

// ParseCellFormat parses "hex" or "dec".
func ParseCellFormat(s string) (CellFormat, error) {
	switch s {
	case "", "hex":
		return CellHex, nil
	case "dec", "decimal":
		return CellDecimal, nil
	}
	return 0, fmt.Errorf("invalid cell format %q, expected hex or dec", s)
}

// makeTable lays bytes read from offset start into rows of cols cells. Rows are
// named by the absolute offset of their first column, so a run that does not
// start on a row boundary leaves the leading cells of its first row empty.
func makeTable(bytes []byte, start uint, cols uint, format CellFormat) *table.Table {
	columns := make([]table.ShortString, cols)
	for i := range columns {
		columns[i] = table.MustShortString(strconv.Itoa(i))
	}
	if len(bytes) == 0 {
		return table.New(nil, columns)
	}

	firstRow := start / cols
	lastRow := (start + uint(len(bytes)) - 1) / cols
	rows := make([]string, 0, lastRow-firstRow+1)
	for row := firstRow; row <= lastRow; row++ {
		rows = append(rows, strconv.FormatUint(uint64(row*cols), 10))
	}

	tab := table.New(rows, columns)
	for i, b := range bytes {
		at := start + uint(i)
		tab.Set(int(at/cols-firstRow), int(at%cols), format.cell(b))
	}
	return tab
}
