package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLGetSet(t *testing.T) {
	c := NewTTL[string, int](time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("a", 1, 0)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	c.Delete("a")
	_, ok = c.Get("a")
	assert.False(t, ok)
}

func TestTTLExpiry(t *testing.T) {
	c := NewTTL[string, string](time.Minute)
	c.Set("k", "v", time.Nanosecond)
	time.Sleep(time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok, "expired entry still visible")
}

func TestTTLSweepOnSet(t *testing.T) {
	c := NewTTL[int, int](time.Nanosecond)
	for i := 0; i < 10; i++ {
		c.Set(i, i, time.Nanosecond)
	}
	time.Sleep(time.Millisecond)

	// The next Set sweeps everything that already expired.
	c.Set(100, 100, time.Minute)
	assert.Equal(t, 1, c.Len())
}
