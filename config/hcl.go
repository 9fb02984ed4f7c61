package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclFile mirrors the on-disk HCL layout before normalization.
type hclFile struct {
	Graph   *hclGraph   `hcl:"graph,block"`
	Hilbert *hclHilbert `hcl:"hilbert,block"`
}

type hclGraph struct {
	Name      string `hcl:"name,optional"`
	Dimension int    `hcl:"dimension,optional"`
	// length and periodic accept a scalar or a per-axis list, so they are
	// captured unevaluated and resolved against the value's type.
	Length      hcl.Expression `hcl:"length,optional"`
	Periodic    hcl.Expression `hcl:"periodic,optional"`
	Reflections bool           `hcl:"reflections,optional"`
	Edges       [][]int        `hcl:"edges,optional"`
	Colors      [][]int        `hcl:"colors,optional"`
	Size        int            `hcl:"size,optional"`
}

type hclHilbert struct {
	Size int `hcl:"size"`
}

// ParseHCL decodes HCL source into a normalized Spec. filename is used for
// diagnostics only.
func ParseHCL(src []byte, filename string) (*Spec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrDecode, diags.Error())
	}
	var raw hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrDecode, diags.Error())
	}
	return raw.normalize()
}

// LoadHCL reads and decodes one HCL topology file.
func LoadHCL(path string) (*Spec, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return ParseHCL(src, path)
}

// normalize converts the raw HCL shape into a Spec.
func (f *hclFile) normalize() (*Spec, error) {
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

	lengths, err := intsFromExpr(f.Graph.Length, "length")
	if err != nil {
		return nil, err
	}
	g.Lengths = lengths

	periodic, err := boolsFromExpr(f.Graph.Periodic, "periodic")
	if err != nil {
		return nil, err
	}
	g.Periodic = periodic

	g.Edges, err = edgePairs(f.Graph.Edges)
	if err != nil {
		return nil, err
	}
	g.Colors, err = colorTriples(f.Graph.Colors)
	if err != nil {
		return nil, err
	}

	spec.Graph = g
	return spec, nil
}

// intsFromExpr resolves a scalar-or-list numeric attribute.
func intsFromExpr(expr hcl.Expression, field string) ([]int, error) {
	val, ok, err := evalExpr(expr, field)
	if err != nil || !ok {
		return nil, err
	}
	if val.Type() == cty.Number {
		var n int
		if err := gocty.FromCtyValue(val, &n); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBadField, field, err)
		}
		return []int{n}, nil
	}
	if val.Type().IsTupleType() || val.Type().IsListType() {
		var out []int
		for it := val.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			var n int
			if err := gocty.FromCtyValue(ev, &n); err != nil {
				return nil, fmt.Errorf("%w: %s element: %v", ErrBadField, field, err)
			}
			out = append(out, n)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s must be a number or a list of numbers", ErrBadField, field)
}

// boolsFromExpr resolves a scalar-or-list boolean attribute.
func boolsFromExpr(expr hcl.Expression, field string) ([]bool, error) {
	val, ok, err := evalExpr(expr, field)
	if err != nil || !ok {
		return nil, err
	}
	if val.Type() == cty.Bool {
		return []bool{val.True()}, nil
	}
	if val.Type().IsTupleType() || val.Type().IsListType() {
		var out []bool
		for it := val.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			if ev.Type() != cty.Bool {
				return nil, fmt.Errorf("%w: %s element must be a bool", ErrBadField, field)
			}
			out = append(out, ev.True())
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s must be a bool or a list of bools", ErrBadField, field)
}

// evalExpr evaluates an optional literal attribute; ok is false when the
// attribute was absent.
func evalExpr(expr hcl.Expression, field string) (cty.Value, bool, error) {
	if expr == nil {
		return cty.NilVal, false, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, false, fmt.Errorf("%w: %s: %s", ErrBadField, field, diags.Error())
	}
	if val.IsNull() {
		return cty.NilVal, false, nil
	}
	return val, true, nil
}
