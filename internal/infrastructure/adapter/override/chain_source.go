package override

import (
	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
	"github.com/amirhossein-jamali/logcat/internal/domain/port/core"
)

// ChainSource consults its sources in order; the first one with an entry wins
type ChainSource []core.OverrideSource

// NewChainSource builds a chain, skipping nil sources
func NewChainSource(sources ...core.OverrideSource) ChainSource {
	chain := make(ChainSource, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			chain = append(chain, s)
		}
	}
	return chain
}

// Lookup returns the first override found for tag
func (c ChainSource) Lookup(tag string) (entity.Priority, bool) {
	for _, s := range c {
		if p, ok := s.Lookup(tag); ok {
			return p, true
		}
	}
	return 0, false
}
