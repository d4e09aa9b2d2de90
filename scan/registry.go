package scan

import (
	"fmt"
	"slices"
	"sync"

	"github.com/cwbudde/algo-osmo/features"
	"github.com/cwbudde/algo-osmo/loader"
)

// Registry maps kinds to analyzers. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	analyzers map[Kind]Analyzer
}

// NewRegistry returns a registry holding analyzers. Later analyzers replace
// earlier ones of the same kind.
func NewRegistry(analyzers ...Analyzer) *Registry {
	r := &Registry{analyzers: make(map[Kind]Analyzer, len(analyzers))}
	for _, a := range analyzers {
		r.Register(a)
	}
	return r
}

// DefaultRegistry returns a registry with the osmoscan and oxygenscan
// analyzers, both configured by opts.
func DefaultRegistry(opts ...features.Option) *Registry {
	return NewRegistry(NewOsmoAnalyzer(opts...), NewOxyAnalyzer(opts...))
}

// Register adds or replaces the analyzer for a.Kind().
func (r *Registry) Register(a Analyzer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.analyzers[a.Kind()] = a
}

// Lookup returns the analyzer for k.
func (r *Registry) Lookup(k Kind) (Analyzer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.analyzers[k]
	if !ok {
		return nil, fmt.Errorf("scan: %w: %s", ErrUnknownKind, k)
	}
	return a, nil
}

// Kinds returns the registered kinds in ascending order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Kind, 0, len(r.analyzers))
	for k := range r.analyzers {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// AnalyzeFile loads the export at path with the schema of kind k and
// analyses its curve.
func (r *Registry) AnalyzeFile(path string, k Kind, opts ...loader.Option) (*Result, error) {
	a, err := r.Lookup(k)
	if err != nil {
		return nil, err
	}

	f, err := loader.Load(path, a.Schema(), opts...)
	if err != nil {
		return nil, err
	}

	c, err := f.Curve()
	if err != nil {
		return nil, err
	}

	res, err := a.Analyze(c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	res.Source = path
	return res, nil
}
