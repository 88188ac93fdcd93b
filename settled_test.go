package reactor_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluxgraph/reactor"
)

func TestOnSettled(t *testing.T) {
	t.Run("runs once the flush finishes", func(t *testing.T) {
		s := reactor.NewSignal(0)
		reactor.NewEffect(func() func() { s.Get(); return nil })

		settled := 0
		reactor.Batch(func() {
			s.Set(1)
			reactor.OnSettled(func() { settled++ })
		})
		assert.Equal(t, 1, settled)
	})

	t.Run("waits for chained effects (A writes B)", func(t *testing.T) {
		a := reactor.NewSignal(0)
		b := reactor.NewSignal(0)

		reactor.NewEffect(func() func() {
			v := a.Get()
			reactor.Untrack(func() { b.Set(v + 1) })
			return nil
		})

		var bAtSettle int
		reactor.NewEffect(func() func() {
			bAtSettle = b.Get()
			return nil
		})

		settled := 0
		reactor.OnSettled(func() { settled++ })
		a.Set(5)

		assert.Equal(t, 1, settled)
		assert.Equal(t, 6, bAtSettle)
	})

	t.Run("runs once across two separate writes in two different flushes", func(t *testing.T) {
		s := reactor.NewSignal(0)
		reactor.NewEffect(func() func() { s.Get(); return nil })

		settled := 0
		reactor.OnSettled(func() { settled++ })
		s.Set(1)
		assert.Equal(t, 1, settled)

		reactor.OnSettled(func() { settled++ })
		s.Set(2)
		assert.Equal(t, 2, settled)
	})

	t.Run("works from a goroutine with its own domain", func(t *testing.T) {
		var wg sync.WaitGroup
		wg.Add(1)
		var settled bool
		go func() {
			defer wg.Done()
			s := reactor.NewSignal(0)
			reactor.NewEffect(func() func() { s.Get(); return nil })
			reactor.OnSettled(func() { settled = true })
			s.Set(1)
		}()
		wg.Wait()
		assert.True(t, settled)
	})
}

func TestOnUserSettled(t *testing.T) {
	t.Run("runs after user effects", func(t *testing.T) {
		s := reactor.NewSignal(0)
		var order []string

		reactor.NewEffect(func() func() {
			s.Get()
			order = append(order, "user-effect")
			return nil
		})
		reactor.OnUserSettled(func() { order = append(order, "user-settled") })

		s.Set(1)
		// the first "user-effect" is the effect's run at construction
		assert.Equal(t, []string{"user-effect", "user-effect", "user-settled"}, order)
	})
}
