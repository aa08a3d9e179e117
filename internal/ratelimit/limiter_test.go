package ratelimit

import (
	"context"
	"testing"
)

func TestMemoryLimiter_BurstThenDeny(t *testing.T) {
	limiter := NewMemoryLimiter(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("allow: %v", err)
		}
		if !ok {
			t.Fatalf("request %d denied within burst", i+1)
		}
	}

	ok, err := limiter.Allow(ctx, "10.0.0.1")
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if ok {
		t.Error("request beyond burst was allowed")
	}
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewMemoryLimiter(1)
	ctx := context.Background()

	if ok, _ := limiter.Allow(ctx, "10.0.0.1"); !ok {
		t.Fatal("first key denied")
	}
	if ok, _ := limiter.Allow(ctx, "10.0.0.2"); !ok {
		t.Error("second key throttled by first key's usage")
	}
}
