package cache

import (
	"context"
	"testing"
	"time"

	"github.com/mlehnert/binsight/internal/core/domain"
)

func TestMemory_GetSet(t *testing.T) {
	c := NewMemory(0)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "4012345678901"); ok {
		t.Error("empty cache must miss")
	}

	p := domain.Product{ID: "4012345678901", Name: "Apfelschorle"}
	c.Set(ctx, p)

	got, ok := c.Get(ctx, "4012345678901")
	if !ok {
		t.Fatal("expected hit")
	}
	if got.Name != "Apfelschorle" {
		t.Errorf("got %q", got.Name)
	}
	if c.Size() != 1 {
		t.Errorf("size = %d, want 1", c.Size())
	}
}

func TestMemory_IgnoresProductsWithoutID(t *testing.T) {
	c := NewMemory(0)
	c.Set(context.Background(), domain.Product{Name: "nameless"})
	if c.Size() != 0 {
		t.Error("products without an identifier must not be cached")
	}
}

func TestMemory_TTLExpiry(t *testing.T) {
	c := NewMemory(10 * time.Millisecond)
	ctx := context.Background()

	c.Set(ctx, domain.Product{ID: "4012345678901", Name: "Apfelschorle"})
	if _, ok := c.Get(ctx, "4012345678901"); !ok {
		t.Fatal("fresh entry must hit")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get(ctx, "4012345678901"); ok {
		t.Error("expired entry must miss")
	}
}

func TestMemory_Clear(t *testing.T) {
	c := NewMemory(0)
	ctx := context.Background()

	c.Set(ctx, domain.Product{ID: "1", Name: "a"})
	c.Set(ctx, domain.Product{ID: "2", Name: "b"})
	c.Clear()

	if c.Size() != 0 {
		t.Errorf("size after clear = %d", c.Size())
	}
	if _, ok := c.Get(ctx, "1"); ok {
		t.Error("cleared entry must miss")
	}
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	c := NewMemory(0)
	ctx := context.Background()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			c.Set(ctx, domain.Product{ID: "4012345678901", Name: "Apfelschorle"})
		}
	}()
	for i := 0; i < 1000; i++ {
		c.Get(ctx, "4012345678901")
	}
	<-done
}
