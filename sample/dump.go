package sample

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/hexforge/grid"
	"github.com/katalvlaran/hexforge/layout"
)

// Dump writes g as text, one line per layout row, mapping each value through
// glyphs. Nothing is written if any value is unmapped.
func Dump[L layout.Layout, T comparable](w io.Writer, g *grid.Grid[L, T], glyphs map[T]rune) error {
	s, err := DumpString(g, glyphs)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(s); err != nil {
		return fmt.Errorf("sample: write: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("sample: write: %w", err)
	}
	return nil
}

// DumpString renders g as text; see Dump.
func DumpString[L layout.Layout, T comparable](g *grid.Grid[L, T], glyphs map[T]rune) (string, error) {
	var sb strings.Builder
	for _, row := range g.Layout().Rows() {
		sb.WriteString(strings.Repeat(" ", row.Indent))
		for i, c := range row.Coords {
			v := g.Get(c)
			r, ok := glyphs[v]
			if !ok {
				return "", fmt.Errorf("%v at %v: %w", v, c, ErrUnknownValue)
			}
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
