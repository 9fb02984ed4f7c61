// Package config turns a topology configuration into a constructed
// topo.Graph: it is the thin selection-and-forwarding layer between a
// simulation's input file and the graph generators, and owns no algorithmic
// logic of its own.
//
// What:
//
//   - Load / ParseHCL / ParseYAML — read a configuration file (HCL or YAML,
//     chosen by extension) into a normalized Spec. Heterogeneous attributes
//     are accepted the way simulation inputs write them: `length = 4` or
//     `length = [4, 6]`, `periodic = true` or `periodic = [true, false]`.
//   - Build — the dispatcher. "Hypercube" selects the lattice generator;
//     "Custom", a nameless graph block, or an unrecognized name with a
//     well-formed custom body selects CustomGraph; a bare `hilbert { size }`
//     with no graph block yields an edgeless graph of that size. Anything
//     else is a configuration error naming the offending graph type.
//
// Spec shape (HCL flavor):
//
//	graph {
//	  name      = "Hypercube"
//	  dimension = 2
//	  length    = [4, 6]
//	  periodic  = [true, false]
//	}
//
//	graph {
//	  name   = "Custom"
//	  edges  = [[0, 1], [1, 2]]
//	  colors = [[0, 1, 1]]   # u, v, class
//	  size   = 5
//	}
//
//	hilbert {
//	  size = 10
//	}
//
// Errors:
//
//   - ErrDecode — unreadable or syntactically invalid file.
//   - ErrBadField — a field with the wrong shape (ragged edge pair,
//     color triple, failed schema validation).
//   - ErrMissingField — a generator selected without its required inputs.
//   - ErrUnknownGraph — a graph name matching no generator and no custom body.
//   - ErrNoTopology — neither a graph block nor a hilbert size present.
//
// Generator-side failures (bad indices, duplicate edges, malformed lattice
// dimensions) pass through unchanged from topo and hypercube.
package config
