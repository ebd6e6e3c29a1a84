package model

import (
	"errors"
	"testing"
)

func TestProviderCachesByKey(t *testing.T) {
	builds := 0
	p := NewProvider(func(Key) (*Bundle, error) {
		builds++
		return &Bundle{}, nil
	})

	a := Key{OCR: true, Lang: "en"}
	b1, err := p.Bundle(a)
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}
	b2, err := p.Bundle(a)
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}
	if b1 != b2 {
		t.Fatalf("same key must return the shared bundle")
	}
	if builds != 1 {
		t.Fatalf("builder ran %d times", builds)
	}

	if _, err := p.Bundle(Key{OCR: true, Lang: "de"}); err != nil {
		t.Fatalf("Bundle: %v", err)
	}
	if builds != 2 {
		t.Fatalf("different key should build a new bundle, builds = %d", builds)
	}
}

func TestProviderBuildError(t *testing.T) {
	p := NewProvider(func(Key) (*Bundle, error) {
		return nil, errors.New("weights missing")
	})
	if _, err := p.Bundle(Key{}); err == nil {
		t.Fatalf("expected builder error to propagate")
	}
	// A failed build is not cached.
	calls := 0
	p = NewProvider(func(Key) (*Bundle, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient")
		}
		return &Bundle{}, nil
	})
	if _, err := p.Bundle(Key{}); err == nil {
		t.Fatalf("first build should fail")
	}
	if _, err := p.Bundle(Key{}); err != nil {
		t.Fatalf("second build should succeed: %v", err)
	}
}
