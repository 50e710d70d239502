package worker

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolRunsAllTasks(t *testing.T) {
	pool := NewPool(3, 8)
	var ran int64
	for i := 0; i < 8; i++ {
		pool.Exec(func() error {
			atomic.AddInt64(&ran, 1)
			return nil
		})
	}
	assert.NoError(t, pool.Wait())
	assert.Equal(t, int64(8), atomic.LoadInt64(&ran))
}

func TestPoolReportsFirstError(t *testing.T) {
	pool := NewPool(2, 4)
	boom := errors.New("fetch failed")
	pool.Exec(func() error { return nil })
	pool.Exec(func() error { return boom })
	err := pool.Wait()
	assert.ErrorIs(t, err, boom)
}

func TestResizeDown(t *testing.T) {
	pool := NewPool(4, 4)
	pool.Resize(1)
	pool.Exec(func() error { return nil })
	assert.NoError(t, pool.Wait())
}
