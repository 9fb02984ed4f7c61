package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlFile mirrors the YAML layout before normalization. length and
// periodic accept a scalar or a per-axis list, so they decode as untyped
// values and are resolved by shape.
type yamlFile struct {
	Graph   *yamlGraph   `yaml:"graph"`
	Hilbert *yamlHilbert `yaml:"hilbert"`
}

type yamlGraph struct {
	Name        string  `yaml:"name"`
	Dimension   int     `yaml:"dimension"`
	Length      any     `yaml:"length"`
	Periodic    any     `yaml:"periodic"`
	Reflections bool    `yaml:"reflections"`
	Edges       [][]int `yaml:"edges"`
	Colors      [][]int `yaml:"colors"`
	Size        int     `yaml:"size"`
}

type yamlHilbert struct {
	Size int `yaml:"size"`
}

// ParseYAML decodes YAML source into a normalized Spec.
func ParseYAML(src []byte) (*Spec, error) {
	var raw yamlFile
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return raw.normalize()
}

// LoadYAML reads and decodes one YAML topology file.
func LoadYAML(path string) (*Spec, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return ParseYAML(src)
}

// normalize converts the raw YAML shape into a Spec.
func (f *yamlFile) normalize() (*Spec, error) {
	spec := &Spec{}
	if f.Hilbert != nil {
		spec.Hilbert = &HilbertSpec{Size: f.Hilbert.Size}
	}
	if f.Graph == nil {
		return spec, nil
	}

	g := &GraphSpec{
		Name:        f.Graph.Name,
		Dimension:   f.Graph.Dimension,
		Reflections: f.Graph.Reflections,
		Size:        f.Graph.Size,
	}

	var err error
	if g.Lengths, err = intsFromAny(f.Graph.Length, "length"); err != nil {
		return nil, err
	}
	if g.Periodic, err = boolsFromAny(f.Graph.Periodic, "periodic"); err != nil {
		return nil, err
	}
	if g.Edges, err = edgePairs(f.Graph.Edges); err != nil {
		return nil, err
	}
	if g.Colors, err = colorTriples(f.Graph.Colors); err != nil {
		return nil, err
	}

	spec.Graph = g
	return spec, nil
}

// intsFromAny resolves a scalar-or-list numeric YAML value.
func intsFromAny(v any, field string) ([]int, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case int:
		return []int{t}, nil
	case []any:
		out := make([]int, 0, len(t))
		for _, e := range t {
			n, ok := e.(int)
			if !ok {
				return nil, fmt.Errorf("%w: %s element %v is not an integer", ErrBadField, field, e)
			}
			out = append(out, n)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be an integer or a list of integers", ErrBadField, field)
	}
}

// boolsFromAny resolves a scalar-or-list boolean YAML value.
func boolsFromAny(v any, field string) ([]bool, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return []bool{t}, nil
	case []any:
		out := make([]bool, 0, len(t))
		for _, e := range t {
			b, ok := e.(bool)
			if !ok {
				return nil, fmt.Errorf("%w: %s element %v is not a bool", ErrBadField, field, e)
			}
			out = append(out, b)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a bool or a list of bools", ErrBadField, field)
	}
}
