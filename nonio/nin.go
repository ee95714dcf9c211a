package nonio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/nonogram/grid"
)

// NIN format grammar, grounded on original_source's parse_input_file_nin_format:
//
//	width height
//	<height row-constraint lines, space-separated ints, "0" for empty>
//	<width column-constraint lines, space-separated ints, "0" for empty>
//
// One grid per file; no name, no metadata.

// ReadNIN parses a single NIN-format grid from r.
func ReadNIN(r io.Reader, source string) (grid.InputGrid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0

	next := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			return line, true
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		return grid.InputGrid{}, parseErr(source, lineNo, ErrUnexpectedEOF)
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return grid.InputGrid{}, parseErr(source, lineNo, fmt.Errorf("%w: header %q", ErrMalformedLine, header))
	}
	width, err1 := strconv.Atoi(fields[0])
	height, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return grid.InputGrid{}, parseErr(source, lineNo, fmt.Errorf("%w: header %q", ErrMalformedLine, header))
	}

	g := grid.InputGrid{Rows: make([][]int, 0, height), Cols: make([][]int, 0, width)}
	for i := 0; i < height; i++ {
		line, ok := next()
		if !ok {
			return grid.InputGrid{}, parseErr(source, lineNo, ErrUnexpectedEOF)
		}
		segs, err := parseSpaceInts(line)
		if err != nil {
			return grid.InputGrid{}, parseErr(source, lineNo, err)
		}
		g.Rows = append(g.Rows, segs)
	}
	for i := 0; i < width; i++ {
		line, ok := next()
		if !ok {
			return grid.InputGrid{}, parseErr(source, lineNo, ErrUnexpectedEOF)
		}
		segs, err := parseSpaceInts(line)
		if err != nil {
			return grid.InputGrid{}, parseErr(source, lineNo, err)
		}
		g.Cols = append(g.Cols, segs)
	}
	return g, nil
}

func parseSpaceInts(line string) ([]int, error) {
	fields := strings.Fields(line)
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

// WriteNIN renders g in NIN format.
func WriteNIN(w io.Writer, g grid.InputGrid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.Width(), g.Height())
	for _, segs := range g.Rows {
		writeSpaceInts(bw, segs)
	}
	for _, segs := range g.Cols {
		writeSpaceInts(bw, segs)
	}
	return bw.Flush()
}

func writeSpaceInts(bw *bufio.Writer, segs []int) {
	if len(segs) == 0 {
		bw.WriteString("0\n")
		return
	}
	for i, n := range segs {
		if i > 0 {
			bw.WriteByte(' ')
		}
		fmt.Fprintf(bw, "%d", n)
	}
	bw.WriteByte('\n')
}
