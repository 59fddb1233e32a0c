package regionfactory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/ports"
)

// Registry maps region names (case-insensitive) to factories.
type Registry struct {
	factories map[string]ports.VehicleFactory
}

type Option func(*Registry)

// WithFactory registers (or replaces) the factory for region.
func WithFactory(region string, f ports.VehicleFactory) Option {
	return func(r *Registry) {
		if f != nil {
			r.factories[normalize(region)] = f
		}
	}
}

// NewRegistry returns a registry preloaded with the us and eu factories.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		factories: map[string]ports.VehicleFactory{
			"us": US{},
			"eu": EU{},
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the factory for region.
func (r *Registry) Lookup(region string) (ports.VehicleFactory, error) {
	f, ok := r.factories[normalize(region)]
	if !ok {
		return nil, &domain.OpError{
			Op:   "regionfactory.lookup",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%w: region %q (known: %s)", domain.ErrNotFound, region, strings.Join(r.Regions(), ", ")),
		}
	}
	return f, nil
}

// Regions lists registered region names in sorted order.
func (r *Registry) Regions() []string {
	out := make([]string, 0, len(r.factories))
	for k := range r.factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func normalize(region string) string {
	return strings.ToLower(strings.TrimSpace(region))
}
