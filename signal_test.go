package reactor_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluxgraph/reactor"
)

func TestSignal(t *testing.T) {
	t.Run("read and write", func(t *testing.T) {
		s := reactor.NewSignal(1)
		assert.Equal(t, 1, s.Get())

		s.Set(2)
		assert.Equal(t, 2, s.Get())
	})

	t.Run("concurrent goroutines each get their own domain", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				s := reactor.NewSignal(i)
				assert.Equal(t, i, s.Get())
				s.Set(i * 10)
				assert.Equal(t, i*10, s.Get())
			}()
		}
		wg.Wait()
	})

	t.Run("zero value as the initial value", func(t *testing.T) {
		s := reactor.NewSignal("")
		assert.Equal(t, "", s.Get())
	})

	t.Run("equal write is a no-op", func(t *testing.T) {
		s := reactor.NewSignal(5)
		runs := 0
		reactor.NewEffect(func() func() {
			_ = s.Get()
			runs++
			return nil
		})
		assert.Equal(t, 1, runs)

		s.Set(5)
		assert.Equal(t, 1, runs, "writing the same value must not re-run dependents")

		s.Set(6)
		assert.Equal(t, 2, runs)
	})

	t.Run("update derives next from previous", func(t *testing.T) {
		s := reactor.NewSignal(10)
		s.Update(func(prev int) int { return prev + 1 })
		assert.Equal(t, 11, s.Get())
	})
}
