package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/gofmod/fmod/internal/core"
)

type styles struct {
	enabled bool
	err     lipgloss.Style
	warning lipgloss.Style
	bullet  lipgloss.Style
	usage   lipgloss.Style
}

// newStyles creates styles rendering for w; when not enabled every label is
// written plain.
func newStyles(w io.Writer, enabled bool) styles {
	if !enabled {
		return styles{}
	}
	r := lipgloss.NewRenderer(w)
	if r.ColorProfile() == termenv.Ascii {
		r.SetColorProfile(termenv.ANSI)
	}
	return styles{
		enabled: true,
		err:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		bullet:  r.NewStyle().Faint(true),
		usage:   r.NewStyle().Faint(true).Italic(true),
	}
}

func (st styles) label(style lipgloss.Style, text string) string {
	if !st.enabled {
		return text
	}
	return style.Render(text)
}

// render writes info lines, then blocks, then warnings, with a blank line
// between each non-empty section.
func (sh *Shell) render(out *core.Output) error {
	if out.Empty() {
		return nil
	}

	var sections []string
	if len(out.Info) > 0 {
		var sb strings.Builder
		for _, info := range out.Info {
			sb.WriteString(sh.style.label(sh.style.bullet, "-"))
			sb.WriteByte(' ')
			sb.WriteString(info)
			sb.WriteByte('\n')
		}
		sections = append(sections, sb.String())
	}
	if len(out.Other) > 0 {
		var sb strings.Builder
		for _, block := range out.Other {
			sb.WriteString(block.Render())
		}
		sections = append(sections, sb.String())
	}
	if len(out.Warnings) > 0 {
		var sb strings.Builder
		for _, warning := range out.Warnings {
			sb.WriteString(sh.style.label(sh.style.warning, "Warning:"))
			sb.WriteByte(' ')
			sb.WriteString(warning)
			sb.WriteByte('\n')
		}
		sections = append(sections, sb.String())
	}

	_, err := io.WriteString(sh.out, strings.Join(sections, "\n"))
	return err
}

func (sh *Shell) renderError(err error) error {
	_, werr := io.WriteString(sh.out, sh.style.label(sh.style.err, "Error:")+" "+err.Error()+"\n")
	return werr
}
