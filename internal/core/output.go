package core

import (
	"fmt"

	"github.com/gofmod/fmod/internal/table"
)

// Output accumulates what one command execution reports: info lines,
// structured blocks, then warnings.
type Output struct {
	Info     []string
	Other    []table.Block
	Warnings []string
}

func (out *Output) Infof(mess string, args ...interface{}) {
	out.Info = append(out.Info, fmt.Sprintf(mess, args...))
}

func (out *Output) Warnf(mess string, args ...interface{}) {
	out.Warnings = append(out.Warnings, fmt.Sprintf(mess, args...))
}

func (out *Output) PushOther(block table.Block) {
	out.Other = append(out.Other, block)
}

// Empty is true if there is nothing to render.
func (out *Output) Empty() bool {
	return out == nil || len(out.Info)+len(out.Other)+len(out.Warnings) == 0
}
