package config

import (
	"fmt"
	"log/slog"

	"github.com/manybody/topograph/hypercube"
	"github.com/manybody/topograph/topo"
)

// Build is the dispatcher: it selects a generator from the normalized spec
// and returns the constructed graph. It owns no algorithmic logic — pure
// selection and forwarding.
//
// Selection order follows the classic input convention:
//
//  1. graph block named "Hypercube" → the lattice generator.
//  2. graph block named "Custom", nameless, or carrying a custom-style body
//     under an unrecognized name → CustomGraph.
//  3. no graph block but hilbert.size present → edgeless graph of that size.
//  4. otherwise → ErrUnknownGraph / ErrNoTopology.
func Build(spec *Spec) (topo.Graph, error) {
	if spec == nil {
		return nil, ErrNoTopology
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	if g := spec.Graph; g != nil {
		switch {
		case g.Name == NameHypercube:
			slog.Debug("building hypercube lattice", "dimension", g.Dimension, "lengths", g.Lengths)
			return buildHypercube(g)
		case g.Name == NameCustom || g.Name == "":
			slog.Debug("building custom graph", "edges", len(g.Edges), "size", g.Size)
			return buildCustom(g)
		case g.hasCustomBody():
			// Unrecognized name, but the block reads as a custom graph:
			// keep the permissive fallback the original inputs relied on.
			slog.Debug("unrecognized graph name, falling back to custom", "name", g.Name)
			return buildCustom(g)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownGraph, g.Name)
		}
	}

	if spec.Hilbert != nil {
		slog.Debug("no graph block, synthesizing edgeless graph", "size", spec.Hilbert.Size)
		return topo.NewCustom(nil, topo.WithSiteCount(spec.Hilbert.Size))
	}

	return nil, ErrNoTopology
}

// buildHypercube maps the graph block onto hypercube.New options.
func buildHypercube(g *GraphSpec) (topo.Graph, error) {
	dim := g.Dimension
	if dim == 0 {
		// A fully per-axis length list fixes the dimension on its own.
		if len(g.Lengths) > 1 {
			dim = len(g.Lengths)
		} else {
			return nil, fmt.Errorf("%w: hypercube needs a dimension or per-axis lengths", ErrMissingField)
		}
	}
	if len(g.Lengths) == 0 {
		return nil, fmt.Errorf("%w: hypercube needs a side length", ErrMissingField)
	}

	opts := make([]hypercube.Option, 0, 4)
	if len(g.Lengths) == 1 {
		opts = append(opts, hypercube.WithLength(g.Lengths[0]))
	} else {
		opts = append(opts, hypercube.WithLengths(g.Lengths...))
	}
	if len(g.Periodic) > 0 {
		opts = append(opts, hypercube.WithPeriodic(g.Periodic...))
	}
	if g.Reflections {
		opts = append(opts, hypercube.WithReflections())
	}
	return hypercube.New(dim, opts...)
}

// buildCustom maps the graph block onto topo.NewCustom options.
func buildCustom(g *GraphSpec) (topo.Graph, error) {
	opts := make([]topo.Option, 0, 2)
	if g.Size > 0 {
		opts = append(opts, topo.WithSiteCount(g.Size))
	}
	if len(g.Colors) > 0 {
		colors := make(map[topo.EdgeKey]int, len(g.Colors))
		for _, c := range g.Colors {
			colors[topo.NewEdgeKey(c.U, c.V)] = c.Color
		}
		opts = append(opts, topo.WithEdgeColors(colors))
	}
	return topo.NewCustom(g.Edges, opts...)
}
