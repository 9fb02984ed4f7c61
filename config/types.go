// Package config defines the normalized topology specification and its
// sentinel errors.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for configuration handling.
var (
	// ErrDecode indicates an unreadable or syntactically invalid file.
	ErrDecode = errors.New("config: cannot decode topology configuration")

	// ErrBadField indicates a field with the wrong shape or value.
	ErrBadField = errors.New("config: malformed field")

	// ErrMissingField indicates a generator selected without required inputs.
	ErrMissingField = errors.New("config: missing required field")

	// ErrUnknownGraph indicates a graph name matching no generator.
	ErrUnknownGraph = errors.New("config: unknown graph type")

	// ErrNoTopology indicates neither a graph block nor a hilbert size.
	ErrNoTopology = errors.New("config: no topology specified")
)

// Graph type names recognized by the dispatcher.
const (
	NameHypercube = "Hypercube"
	NameCustom    = "Custom"
)

// Spec is the normalized, loader-independent topology configuration.
type Spec struct {
	Graph   *GraphSpec
	Hilbert *HilbertSpec
}

// GraphSpec describes one graph block. Which fields matter depends on the
// generator the dispatcher selects; unused fields are ignored.
type GraphSpec struct {
	Name string

	// Hypercube inputs. Lengths holds either one uniform entry or one per
	// axis; Periodic likewise. Dimension may be omitted when Lengths is
	// fully per-axis.
	Dimension   int    `validate:"min=0"`
	Lengths     []int  `validate:"omitempty,dive,min=1"`
	Periodic    []bool `validate:"omitempty"`
	Reflections bool

	// Custom inputs.
	Edges  [][2]int
	Colors []ColorSpec `validate:"omitempty,dive"`
	Size   int         `validate:"min=0"`
}

// ColorSpec assigns coupling class Color to the edge {U, V}.
type ColorSpec struct {
	U     int `validate:"min=0"`
	V     int `validate:"min=0"`
	Color int `validate:"min=0"`
}

// HilbertSpec carries the site-count fallback used when no graph block is
// present.
type HilbertSpec struct {
	Size int `validate:"min=1"`
}

// validate is shared; Validate is the only entry point.
var validate = validator.New()

// Validate runs schema-level checks on the normalized spec. Generator-level
// validation (index ranges, duplicate edges) happens at construction.
func (s *Spec) Validate() error {
	if s == nil {
		return ErrNoTopology
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrBadField, err)
	}
	return nil
}

// hasCustomBody reports whether the graph block carries enough custom-graph
// material for the dispatcher's fallback path.
func (g *GraphSpec) hasCustomBody() bool {
	return len(g.Edges) > 0 || g.Size > 0
}
