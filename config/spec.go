package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load reads a topology configuration file, choosing the decoder by
// extension: .hcl/.tg for HCL, .yaml/.yml for YAML.
func Load(path string) (*Spec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl", ".tg":
		return LoadHCL(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrDecode, filepath.Ext(path))
	}
}

// edgePairs checks that every raw edge entry is exactly a pair.
func edgePairs(raw [][]int) ([][2]int, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([][2]int, 0, len(raw))
	for i, e := range raw {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: edges[%d] has %d entries, want 2", ErrBadField, i, len(e))
		}
		out = append(out, [2]int{e[0], e[1]})
	}
	return out, nil
}

// colorTriples checks that every raw color entry is a (u, v, class) triple.
func colorTriples(raw [][]int) ([]ColorSpec, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]ColorSpec, 0, len(raw))
	for i, c := range raw {
		if len(c) != 3 {
			return nil, fmt.Errorf("%w: colors[%d] has %d entries, want 3 (u, v, class)", ErrBadField, i, len(c))
		}
		out = append(out, ColorSpec{U: c[0], V: c[1], Color: c[2]})
	}
	return out, nil
}
