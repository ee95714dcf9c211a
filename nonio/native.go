package nonio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nonogram/grid"
)

// native format grammar, grounded on original_source's
// picross_io.cpp native reader/writer:
//
//	# comment lines anywhere, ignored
//	GRID <name>
//	---            (optional, opens a YAML metadata block)
//	key: value
//	---            (closes it)
//	ROWS
//	[ 1 2 3 ]
//	...
//	COLUMNS
//	[ 2 ]
//	...
//
// Blank lines are skipped. A file may hold multiple GRID blocks back to
// back; ReadNative returns one grid.InputGrid per block in file order.

const (
	dirGrid    = "GRID"
	dirRows    = "ROWS"
	dirColumns = "COLUMNS"
	metaFence  = "---"
)

// ReadNative parses every GRID block in r, in order.
func ReadNative(r io.Reader, source string) ([]grid.InputGrid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var grids []grid.InputGrid
	var cur *grid.InputGrid
	var section string // "" | ROWS | COLUMNS
	var metaLines []string
	inMeta := false
	lineNo := 0

	flushMeta := func() error {
		if len(metaLines) == 0 {
			return nil
		}
		meta := map[string]string{}
		if err := yaml.Unmarshal([]byte(strings.Join(metaLines, "\n")), &meta); err != nil {
			return fmt.Errorf("%w: metadata block: %s", ErrMalformedLine, err)
		}
		cur.Metadata = meta
		metaLines = nil
		return nil
	}

	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		line := strings.TrimSpace(raw)

		if inMeta {
			if line == metaFence {
				inMeta = false
				if err := flushMeta(); err != nil {
					return nil, parseErr(source, lineNo, err)
				}
				continue
			}
			metaLines = append(metaLines, raw)
			continue
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == metaFence {
			if cur == nil {
				return nil, parseErr(source, lineNo, fmt.Errorf("%w: metadata block before GRID", ErrMalformedLine))
			}
			inMeta = true
			continue
		}

		switch {
		case strings.HasPrefix(line, dirGrid):
			if cur != nil {
				grids = append(grids, *cur)
			}
			name := strings.TrimSpace(strings.TrimPrefix(line, dirGrid))
			cur = &grid.InputGrid{Name: name}
			section = ""
		case line == dirRows:
			if cur == nil {
				return nil, parseErr(source, lineNo, fmt.Errorf("%w: ROWS before GRID", ErrMalformedLine))
			}
			section = dirRows
		case line == dirColumns:
			if cur == nil {
				return nil, parseErr(source, lineNo, fmt.Errorf("%w: COLUMNS before GRID", ErrMalformedLine))
			}
			section = dirColumns
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			if cur == nil || section == "" {
				return nil, parseErr(source, lineNo, fmt.Errorf("%w: constraint line outside ROWS/COLUMNS", ErrMalformedLine))
			}
			segs, err := parseBracketedInts(line)
			if err != nil {
				return nil, parseErr(source, lineNo, err)
			}
			if section == dirRows {
				cur.Rows = append(cur.Rows, segs)
			} else {
				cur.Cols = append(cur.Cols, segs)
			}
		default:
			return nil, parseErr(source, lineNo, fmt.Errorf("%w: %q", ErrUnknownDirective, line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		grids = append(grids, *cur)
	}
	return grids, nil
}

// parseBracketedInts parses "[ 1 2 3 ]" into []int{1,2,3}; "[ 0 ]" or "[ ]"
// both parse to an empty clue (no filled segments).
func parseBracketedInts(line string) ([]int, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
	fields := strings.Fields(body)
	segs := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, f)
		}
		if n == 0 {
			continue
		}
		segs = append(segs, n)
	}
	return segs, nil
}

// WriteNative renders grids in native format, one GRID block each.
func WriteNative(w io.Writer, grids []grid.InputGrid) error {
	bw := bufio.NewWriter(w)
	for i, g := range grids {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "%s %s\n", dirGrid, g.Name)
		if len(g.Metadata) > 0 {
			meta, err := yaml.Marshal(g.Metadata)
			if err != nil {
				return err
			}
			fmt.Fprintln(bw, metaFence)
			bw.Write(meta)
			fmt.Fprintln(bw, metaFence)
		}
		fmt.Fprintln(bw, dirRows)
		writeBracketedLines(bw, g.Rows)
		fmt.Fprintln(bw, dirColumns)
		writeBracketedLines(bw, g.Cols)
	}
	return bw.Flush()
}

func writeBracketedLines(bw *bufio.Writer, clues [][]int) {
	for _, segs := range clues {
		bw.WriteString("[")
		if len(segs) == 0 {
			bw.WriteString(" 0")
		}
		for _, n := range segs {
			fmt.Fprintf(bw, " %d", n)
		}
		bw.WriteString(" ]\n")
	}
}
