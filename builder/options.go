package builder

import "github.com/katalvlaran/digraph/core"

// WeightFunc computes the weight carried by a generated edge from its
// endpoint indices (linear row-major indices for Grid).
type WeightFunc func(u, v int) int64

// Option configures generator behavior.
type Option func(*config)

// config is the resolved, immutable generator configuration.
type config struct {
	weightFn WeightFunc
	gopts    []core.GraphOption
}

// defaultConfig returns the generator defaults: uniform weight 1 and no
// extra core options.
func defaultConfig() config {
	return config{weightFn: func(int, int) int64 { return 1 }}
}

// newConfig resolves options deterministically, left to right.
func newConfig(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWeightFunc sets the per-edge weight function. A nil fn has no
// effect (the uniform default is retained).
func WithWeightFunc(fn WeightFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithUniformWeight sets every generated edge weight to w.
func WithUniformWeight(w int64) Option {
	return func(c *config) {
		c.weightFn = func(int, int) int64 { return w }
	}
}

// WithGraphOptions forwards core construction options (for example
// core.WithInEdges) to the generated graph.
func WithGraphOptions(gopts ...core.GraphOption) Option {
	return func(c *config) { c.gopts = append(c.gopts, gopts...) }
}
