package reactor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluxgraph/reactor"
)

func TestOwner(t *testing.T) {
	t.Run("run and dispose", func(t *testing.T) {
		cleaned := false
		root := reactor.CreateRoot(func(o *reactor.Owner) {
			reactor.OnCleanup(func() { cleaned = true })
		})
		assert.False(t, cleaned)
		root.Dispose()
		assert.True(t, cleaned)
	})

	t.Run("dispose is idempotent", func(t *testing.T) {
		runs := 0
		root := reactor.CreateRoot(func(o *reactor.Owner) {
			reactor.OnCleanup(func() { runs++ })
		})
		root.Dispose()
		root.Dispose()
		assert.Equal(t, 1, runs)
	})

	t.Run("nested owners dispose LIFO", func(t *testing.T) {
		var log []string
		root := reactor.CreateRoot(func(o *reactor.Owner) {
			reactor.OnCleanup(func() { log = append(log, "outer") })

			o.RunChild(func(child *reactor.Owner) {
				reactor.OnCleanup(func() { log = append(log, "inner-a") })
			})
			o.RunChild(func(child *reactor.Owner) {
				reactor.OnCleanup(func() { log = append(log, "inner-b") })
			})
		})

		root.Dispose()
		assert.Equal(t, []string{"inner-b", "inner-a", "outer"}, log)
	})

	t.Run("disposal prevents further effect runs", func(t *testing.T) {
		s := reactor.NewSignal(0)
		runs := 0
		var eff *reactor.Effect

		root := reactor.CreateRoot(func(o *reactor.Owner) {
			eff = reactor.NewEffect(func() func() {
				s.Get()
				runs++
				return nil
			})
		})

		assert.Equal(t, 1, runs)
		root.Dispose()
		s.Set(1)
		assert.Equal(t, 1, runs)
		_ = eff
	})

	t.Run("error propagates to the nearest handler", func(t *testing.T) {
		var caught any
		reactor.CreateRoot(func(o *reactor.Owner) {
			o.OnError(func(err any) { caught = err })

			o.Run(func() {
				reactor.NewEffect(func() func() {
					panic("boom")
				})
			})
		})
		assert.Equal(t, "boom", caught)
	})

	t.Run("handler re-throw escalates to the parent", func(t *testing.T) {
		var outerCaught any
		reactor.CreateRoot(func(o *reactor.Owner) {
			o.OnError(func(err any) { outerCaught = err })

			o.RunChild(func(inner *reactor.Owner) {
				inner.OnError(func(err any) { panic(err) })

				reactor.NewEffect(func() func() {
					panic("escalated")
				})
			})
		})
		assert.Equal(t, "escalated", outerCaught)
	})
}
