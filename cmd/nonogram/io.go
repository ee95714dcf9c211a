package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/nonogram/grid"
	"github.com/katalvlaran/nonogram/nonio"
)

// loadInputs reads every grid described by path, auto-detecting the format
// from its extension unless format overrides it.
func loadInputs(path, format string) ([]grid.InputGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapLoad(err)
	}
	defer f.Close()

	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	switch format {
	case "nin":
		g, err := nonio.ReadNIN(f, path)
		if err != nil {
			return nil, wrapLoad(err)
		}
		return []grid.InputGrid{g}, nil
	case "non":
		g, _, err := nonio.ReadNON(f, path)
		if err != nil {
			return nil, wrapLoad(err)
		}
		return []grid.InputGrid{g}, nil
	case "native", "txt", "":
		grids, err := nonio.ReadNative(f, path)
		if err != nil {
			return nil, wrapLoad(err)
		}
		return grids, nil
	default:
		return nil, wrapLoad(fmt.Errorf("nonogram: unrecognized format %q", format))
	}
}
