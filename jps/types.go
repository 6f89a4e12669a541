package jps

import "github.com/katalvlaran/jpsmaze/position"

// sqrt2 is the diagonal step weight, named once here rather than re-derived
// at each call site.
const sqrt2 = 1.4142135623730951

// Child is a successor produced by Generator.GenerateChildren: the node
// itself and the straight-line weight from the node that generated it.
type Child struct {
	Node   position.Position
	Weight float64
}
