package table

import "strings"

// Pair is one line of a two column listing.
type Pair struct {
	Key   string
	Value string
}

// Pairs is a two column listing, keys padded to align values.
type Pairs []Pair

// Render implements Block.
func (ps Pairs) Render() string { return ps.RenderWith(nil) }

// RenderWith renders like Render, passing each padded key through style if
// it is not nil.
func (ps Pairs) RenderWith(style func(string) string) string {
	keys := make([]string, len(ps))
	for i, p := range ps {
		keys[i] = p.Key
	}
	padStrip(keys)

	var sb strings.Builder
	for i, p := range ps {
		key := keys[i]
		if p.Value == "" {
			key = strings.TrimRight(key, " ")
		}
		if style != nil {
			key = style(key)
		}
		sb.WriteString(key)
		if p.Value != "" {
			sb.WriteString("  ")
			sb.WriteString(p.Value)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
