package main

import (
	"fmt"
	"strings"

	"github.com/gofmod/fmod/internal/core"
	"github.com/gofmod/fmod/internal/table"
)

var metaHelp = table.Pairs{
	{Key: "exit", Value: "stops reading commands"},
	{Key: "help [<command>]", Value: "lists every command, or shows the usage of one"},
}

type commandNotFoundError string

func (name commandNotFoundError) Error() string {
	return fmt.Sprintf("command not found: %v", string(name))
}

// meta handles lines that configure or stop the shell itself rather than
// operate on variables; handled is false for any other line.
func (sh *Shell) meta(fields []string) (out *core.Output, handled bool, err error) {
	if len(fields) == 0 {
		return nil, false, nil
	}
	switch fields[0] {
	case "exit":
		return nil, true, errExit
	case "help":
		out = &core.Output{}
		if len(fields) == 1 {
			out.Infof("fmod edits buffers and files byte by byte; every command is listed below.")
			out.PushOther(sh.helpBlock(helpPairs()))
			return out, true, nil
		}
		pair, ok := helpTopic(fields[1])
		if !ok {
			return nil, true, commandNotFoundError(fields[1])
		}
		out.PushOther(sh.helpBlock(table.Pairs{pair}))
		return out, true, nil
	}
	return nil, false, nil
}

func helpPairs() table.Pairs {
	tmpls := core.Templates()
	pairs := make(table.Pairs, 0, len(tmpls)+len(metaHelp))
	for _, tmpl := range tmpls {
		pairs = append(pairs, table.Pair{Key: tmpl.Usage(), Value: tmpl.Desc})
	}
	return append(pairs, metaHelp...)
}

func helpTopic(name string) (table.Pair, bool) {
	if tmpl, ok := core.LookupTemplate(name); ok {
		return table.Pair{Key: tmpl.Usage(), Value: tmpl.Desc}, true
	}
	for _, p := range metaHelp {
		if metaName, _, _ := strings.Cut(p.Key, " "); metaName == name {
			return p, true
		}
	}
	return table.Pair{}, false
}

type helpBlock struct {
	table.Pairs
	style func(string) string
}

func (hb helpBlock) Render() string { return hb.Pairs.RenderWith(hb.style) }

func (sh *Shell) helpBlock(pairs table.Pairs) table.Block {
	if !sh.style.enabled {
		return pairs
	}
	return helpBlock{pairs, func(s string) string { return sh.style.usage.Render(s) }}
}
