package model

import (
	"fmt"
	"sync"
)

// Key is the configuration tuple a bundle is resolved by. Requests with the
// same key share one bundle instance.
type Key struct {
	OCR         bool
	ShowLog     bool
	Lang        string
	LayoutModel string
	Formula     bool
	Table       bool
}

// Builder constructs a bundle for a configuration key.
type Builder func(Key) (*Bundle, error)

// Provider caches bundles by configuration key so repeated document passes
// with the same toggles reuse the already-loaded engines. The cache itself
// is safe for concurrent lookups; the bundles it hands out are not.
type Provider struct {
	mu      sync.Mutex
	build   Builder
	bundles map[Key]*Bundle
}

// NewProvider wraps a bundle builder with a key cache.
func NewProvider(build Builder) *Provider {
	return &Provider{build: build, bundles: make(map[Key]*Bundle)}
}

// Bundle returns the cached bundle for key, building it on first use.
func (p *Provider) Bundle(key Key) (*Bundle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if b, ok := p.bundles[key]; ok {
		return b, nil
	}
	b, err := p.build(key)
	if err != nil {
		return nil, fmt.Errorf("build model bundle: %w", err)
	}
	p.bundles[key] = b
	return b, nil
}
