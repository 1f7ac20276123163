package sample

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/hexforge/grid"
	"github.com/katalvlaran/hexforge/layout"
)

// Parse reads a hexagonal grid from text, mapping each symbol through
// symbols. A trailing newline is optional; trailing blanks on a line are
// ignored.
func Parse[T any](text string, symbols map[rune]T) (*grid.Grid[layout.Hexagonal, T], error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptySample
	}
	if len(lines)%2 == 0 {
		return nil, fmt.Errorf("%d rows, want an odd count: %w", len(lines), ErrMalformedRow)
	}

	l := layout.Hexagonal{Radius: (len(lines) + 1) / 2}
	g := grid.New(l, *new(T))
	for i, row := range l.Rows() {
		if err := parseRow(g, row, strings.TrimRight(lines[i], " \t"), symbols); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return g, nil
}

func parseRow[T any](g *grid.Grid[layout.Hexagonal, T], row layout.Row, line string, symbols map[rune]T) error {
	indent := len(line) - len(strings.TrimLeft(line, " "))
	if indent != row.Indent {
		return fmt.Errorf("indent %d, want %d: %w", indent, row.Indent, ErrMalformedRow)
	}
	rest := line[indent:]
	for i, c := range row.Coords {
		if i > 0 {
			if !strings.HasPrefix(rest, " ") {
				return fmt.Errorf("missing separator before cell %d: %w", i+1, ErrMalformedRow)
			}
			rest = rest[1:]
		}
		r, size := utf8.DecodeRuneInString(rest)
		if size == 0 {
			return fmt.Errorf("%d cells, want %d: %w", i, len(row.Coords), ErrMalformedRow)
		}
		if r == ' ' {
			return fmt.Errorf("double separator before cell %d: %w", i+1, ErrMalformedRow)
		}
		v, ok := symbols[r]
		if !ok {
			return fmt.Errorf("%q at %v: %w", r, c, ErrUnknownSymbol)
		}
		g.Set(c, v)
		rest = rest[size:]
	}
	if rest != "" {
		return fmt.Errorf("extra text %q after %d cells: %w", rest, len(row.Coords), ErrMalformedRow)
	}
	return nil
}

// ParseReader reads all of r and parses it.
func ParseReader[T any](r io.Reader, symbols map[rune]T) (*grid.Grid[layout.Hexagonal, T], error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("sample: read: %w", err)
	}
	return Parse(string(b), symbols)
}

// ParseFile parses the sample stored at path.
func ParseFile[T any](path string, symbols map[rune]T) (*grid.Grid[layout.Hexagonal, T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sample: %w", err)
	}
	defer f.Close()

	g, err := ParseReader(f, symbols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
