package nonio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/nonogram/grid"
	"github.com/katalvlaran/nonogram/tile"
)

// NON format grammar, grounded on original_source's parse_input_file_non_format:
// a sequence of keyword-led lines, any order, terminated by EOF:
//
//	title "name"
//	width 5
//	height 5
//	catalogue "..."   by "..."   copyright "..."   license ...   (metadata)
//	goal "..X.X..."                                               (optional solution)
//	rows
//	2,1
//	...
//	columns
//	...
//
// A constraint line is comma-separated integers; a bare 0 means no segments.

var nonMetadataKeys = map[string]bool{"catalogue": true, "by": true, "copyright": true, "license": true}

// ReadNON parses a single NON-format grid, plus its optional goal solution.
func ReadNON(r io.Reader, source string) (grid.InputGrid, *grid.OutputGrid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	g := grid.InputGrid{}
	var goal *grid.OutputGrid
	var width, height int
	section := "" // "" | rows | columns
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if section != "" {
			if isNonKeyword(firstToken(line)) {
				section = ""
			} else {
				segs, err := parseCommaInts(line)
				if err != nil {
					return g, nil, parseErr(source, lineNo, err)
				}
				if section == "rows" {
					g.Rows = append(g.Rows, segs)
				} else {
					g.Cols = append(g.Cols, segs)
				}
				continue
			}
		}

		key, rest := firstToken(line), strings.TrimSpace(strings.TrimPrefix(line, firstToken(line)))
		rest = extractQuotedOrTrim(rest)
		switch key {
		case "title":
			g.Name = rest
		case "width":
			width, _ = strconv.Atoi(rest)
		case "height":
			height, _ = strconv.Atoi(rest)
		case "rows":
			if height == 0 {
				return g, nil, parseErr(source, lineNo, fmt.Errorf("%w: rows before height", ErrMalformedLine))
			}
			section = "rows"
		case "columns":
			if width == 0 {
				return g, nil, parseErr(source, lineNo, fmt.Errorf("%w: columns before width", ErrMalformedLine))
			}
			section = "columns"
		case "goal":
			if width == 0 || height == 0 {
				return g, nil, parseErr(source, lineNo, fmt.Errorf("%w: goal before size", ErrMalformedLine))
			}
			if len(rest) != width*height {
				return g, nil, parseErr(source, lineNo, fmt.Errorf("%w: goal size mismatch", ErrMalformedLine))
			}
			og := buildOutputGrid(rest, width, height, g.Name)
			goal = &og
		case "color":
			// recognized, intentionally ignored (no color rendering in this port)
		default:
			if nonMetadataKeys[key] {
				if g.Metadata == nil {
					g.Metadata = map[string]string{}
				}
				g.Metadata[key] = rest
			} else {
				return g, nil, parseErr(source, lineNo, fmt.Errorf("%w: %q", ErrUnknownDirective, key))
			}
		}
	}
	if err := sc.Err(); err != nil {
		return g, nil, err
	}
	return g, goal, nil
}

func isNonKeyword(tok string) bool {
	switch tok {
	case "title", "width", "height", "rows", "columns", "goal", "color":
		return true
	}
	return nonMetadataKeys[tok]
}

func firstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func extractQuotedOrTrim(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func parseCommaInts(line string) ([]int, error) {
	fields := strings.Split(line, ",")
	segs := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, f)
		}
		if n == 0 {
			break
		}
		segs = append(segs, n)
	}
	return segs, nil
}

func buildOutputGrid(s string, width, height int, name string) grid.OutputGrid {
	tiles := make([]tile.Tile, width*height)
	for i, c := range s {
		switch c {
		case 'X', 'x', '#':
			tiles[i] = tile.Filled
		case '.', '_', '0':
			tiles[i] = tile.Empty
		default:
			tiles[i] = tile.Unknown
		}
	}
	return grid.OutputGrid{Width: width, Height: height, Name: name, Tiles: tiles}
}

// WriteNON renders g (and an optional goal solution) in NON format.
func WriteNON(w io.Writer, g grid.InputGrid, goal *grid.OutputGrid) error {
	bw := bufio.NewWriter(w)
	if g.Name != "" {
		fmt.Fprintf(bw, "title %q\n", g.Name)
	}
	for _, key := range []string{"catalogue", "by", "copyright"} {
		if v, ok := g.Metadata[key]; ok {
			fmt.Fprintf(bw, "%s %q\n", key, v)
		}
	}
	if v, ok := g.Metadata["license"]; ok {
		fmt.Fprintf(bw, "license %s\n", v)
	}
	fmt.Fprintf(bw, "width %d\n", g.Width())
	fmt.Fprintf(bw, "height %d\n", g.Height())
	if goal != nil {
		fmt.Fprintf(bw, "goal %q\n", outputGridBitmap(*goal))
	}
	fmt.Fprintln(bw, "rows")
	writeCommaLines(bw, g.Rows)
	fmt.Fprintln(bw, "columns")
	writeCommaLines(bw, g.Cols)
	return bw.Flush()
}

func outputGridBitmap(o grid.OutputGrid) string {
	var sb strings.Builder
	for _, t := range o.Tiles {
		switch t {
		case tile.Filled:
			sb.WriteByte('X')
		case tile.Empty:
			sb.WriteByte('.')
		default:
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

func writeCommaLines(bw *bufio.Writer, clues [][]int) {
	for _, segs := range clues {
		if len(segs) == 0 {
			bw.WriteString("0\n")
			continue
		}
		for i, n := range segs {
			if i > 0 {
				bw.WriteByte(',')
			}
			fmt.Fprintf(bw, "%d", n)
		}
		bw.WriteByte('\n')
	}
}
