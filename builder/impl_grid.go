package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// Grid builds an R×C lattice with labels "r,c", registered row-major so
// label "r,c" receives index r·cols+c. Each cell gets a directed edge
// east ("r,c"→"r,c+1") and south ("r,c"→"r+1,c") where those exist,
// east before south. The result is acyclic. WeightFunc receives linear
// row-major indices. Requires rows ≥ 1 and cols ≥ 1 (ErrInvalidDimensions).
// Complexity: O(rows·cols).
func Grid(rows, cols int, opts ...Option) (*core.Graph[string, int64], error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	cfg := newConfig(opts...)
	gopts := append([]core.GraphOption{core.WithNodeHint(rows * cols)}, cfg.gopts...)
	b := core.NewBuilder[string, int64](gopts...)

	// Register all cells first so index assignment is pure row-major,
	// independent of edge emission.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if _, err := b.AddNode(cellID(r, c)); err != nil {
				return nil, fmt.Errorf("Grid: %w", err)
			}
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				if err := b.AddEdge(cellID(r, c), cellID(r, c+1), cfg.weightFn(u, u+1)); err != nil {
					return nil, fmt.Errorf("Grid: %w", err)
				}
			}
			if r+1 < rows {
				if err := b.AddEdge(cellID(r, c), cellID(r+1, c), cfg.weightFn(u, u+cols)); err != nil {
					return nil, fmt.Errorf("Grid: %w", err)
				}
			}
		}
	}

	return b.Build()
}

// cellID formats the canonical "r,c" grid label.
func cellID(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
