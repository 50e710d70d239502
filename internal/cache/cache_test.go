package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newFrozen() (*Cache, *time.Time) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	c := New()
	c.now = func() time.Time { return now }
	return c, &now
}

func TestGetRespectsTTL(t *testing.T) {
	c, now := newFrozen()
	c.Set("profile", "snapshot", DefaultTTL)

	got, ok := c.Get("profile")
	assert.True(t, ok)
	assert.Equal(t, "snapshot", got)

	*now = now.Add(DefaultTTL + time.Second)
	_, ok = c.Get("profile")
	assert.False(t, ok)
}

func TestGetStaleKeepsPreviousPage(t *testing.T) {
	c, now := newFrozen()
	c.Set("transactions:1", []int{1, 2, 3}, DefaultTTL)

	*now = now.Add(10 * time.Minute)
	value, fresh, ok := c.GetStale("transactions:1")
	assert.True(t, ok)
	assert.False(t, fresh)
	assert.Equal(t, []int{1, 2, 3}, value)

	_, _, ok = c.GetStale("transactions:2")
	assert.False(t, ok)
}

func TestInvalidateByPrefix(t *testing.T) {
	c, _ := newFrozen()
	c.Set("transactions:1", "a", DefaultTTL)
	c.Set("transactions:2", "b", DefaultTTL)
	c.Set("profile", "c", DefaultTTL)

	c.Invalidate("transactions")

	_, ok := c.Get("transactions:1")
	assert.False(t, ok)
	_, ok = c.Get("transactions:2")
	assert.False(t, ok)
	_, ok = c.Get("profile")
	assert.True(t, ok)
}

func TestFlush(t *testing.T) {
	c, _ := newFrozen()
	c.Set("profile", "c", DefaultTTL)
	c.Flush()
	_, ok := c.Get("profile")
	assert.False(t, ok)
}
