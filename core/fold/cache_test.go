package fold

import (
	"context"
	"errors"
	"testing"
)

func TestCacheMemoizes(t *testing.T) {
	o := &countingOracle{res: Result{Energy: -3.2}}
	c, err := NewCache(o, 8)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		r, err := c.Fold(ctx, "ACGTACGTAC", 37)
		if err != nil {
			t.Fatalf("Fold: %v", err)
		}
		if r.Energy != -3.2 {
			t.Fatalf("got energy %v", r.Energy)
		}
	}
	if o.calls != 1 {
		t.Fatalf("inner oracle called %d times, want 1", o.calls)
	}

	// A different temperature is a different key.
	if _, err := c.Fold(ctx, "ACGTACGTAC", 60); err != nil {
		t.Fatalf("Fold: %v", err)
	}
	if o.calls != 2 {
		t.Fatalf("temperature must be part of the key, calls=%d", o.calls)
	}
	if c.Len() != 2 {
		t.Fatalf("cache len %d, want 2", c.Len())
	}
}

func TestCacheDoesNotCacheErrors(t *testing.T) {
	o := &countingOracle{err: errors.New("transient")}
	c, err := NewCache(o, 4)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := c.Fold(ctx, "ACGTACGT", 37); err == nil {
			t.Fatalf("want error")
		}
	}
	if o.calls != 2 {
		t.Fatalf("errors must not be cached, calls=%d", o.calls)
	}
}
