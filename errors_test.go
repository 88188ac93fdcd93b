package reactor_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluxgraph/reactor"
)

func TestDebugWarnsOnWriteInsideEffect(t *testing.T) {
	var buf bytes.Buffer
	prevOut := log.Writer()
	prevFlags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	defer func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	}()

	t.Run("silent by default", func(t *testing.T) {
		buf.Reset()
		s := reactor.NewSignal(0)
		reactor.NewEffect(func() func() {
			s.Set(1)
			return nil
		})
		assert.Empty(t, buf.String())
	})

	t.Run("logs once SetDebug(true) is in effect", func(t *testing.T) {
		reactor.SetDebug(true)
		defer reactor.SetDebug(false)

		buf.Reset()
		s := reactor.NewSignal(0)
		reactor.NewEffect(func() func() {
			s.Set(1)
			return nil
		})
		assert.Contains(t, buf.String(), "written from inside effect")
	})
}

func TestUnobserved(t *testing.T) {
	t.Run("fires when the last observer goes away", func(t *testing.T) {
		fires := 0
		s := reactor.NewSignal(1, reactor.WithUnobserved[int](func() { fires++ }))

		eff := reactor.NewEffect(func() func() {
			_ = s.Get()
			return nil
		})
		assert.Equal(t, 0, fires)

		eff.Dispose()
		assert.Equal(t, 1, fires)
	})

	t.Run("does not fire while any observer remains", func(t *testing.T) {
		fires := 0
		s := reactor.NewSignal(1, reactor.WithUnobserved[int](func() { fires++ }))

		a := reactor.NewComputed(func() int { return s.Get() })
		b := reactor.NewComputed(func() int { return s.Get() + 1 })
		a.Get()
		b.Get()

		assert.Equal(t, 0, fires)
	})
}

func TestFlushSync(t *testing.T) {
	t.Run("settles immediately", func(t *testing.T) {
		s := reactor.NewSignal(0)
		var seen int
		reactor.NewEffect(func() func() {
			seen = s.Get()
			return nil
		})

		s.Set(1)
		reactor.FlushSync() // already settled outside any batch; must not panic or double-run
		assert.Equal(t, 1, seen)
	})
}

func TestGetObserver(t *testing.T) {
	t.Run("nil outside any tracked evaluation", func(t *testing.T) {
		assert.Nil(t, reactor.GetObserver())
	})

	t.Run("exposes the computed currently evaluating", func(t *testing.T) {
		s := reactor.NewSignal(1)
		var sawName string

		c := reactor.NewComputed(func() int {
			if ob := reactor.GetObserver(); ob != nil {
				sawName = ob.Name()
			}
			return s.Get()
		}, reactor.WithComputedName[int]("doubler"))
		c.Get()

		assert.Equal(t, "doubler", sawName)
	})
}

func TestHasContext(t *testing.T) {
	t.Run("false with no Set anywhere, even with a default", func(t *testing.T) {
		ctx := reactor.NewContextWithDefault(7)
		reactor.CreateRoot(func(o *reactor.Owner) {
			assert.False(t, ctx.HasContext())
		})
	})

	t.Run("true once an ancestor Sets it", func(t *testing.T) {
		ctx := reactor.NewContext[string]()
		reactor.CreateRoot(func(o *reactor.Owner) {
			ctx.Set("x")
			o.RunChild(func(child *reactor.Owner) {
				assert.True(t, ctx.HasContext())
			})
		})
	})
}

func TestAsyncComputed(t *testing.T) {
	t.Run("pending until the source resolves", func(t *testing.T) {
		ready := reactor.NewSignal(false)
		value := reactor.NewSignal("")

		a := reactor.NewAsyncComputed(func() (string, error) {
			if !ready.Get() {
				return "", assert.AnError
			}
			return value.Get(), nil
		})

		_, err := a.Get()
		assert.Error(t, err)
		assert.True(t, a.IsPending())

		value.Set("loaded")
		ready.Set(true)

		v, err := a.Get()
		assert.NoError(t, err)
		assert.False(t, a.IsPending())
		assert.Equal(t, "loaded", v)
	})
}

func TestCatchErrorRethrow(t *testing.T) {
	t.Run("re-thrown error escalates to the parent handler", func(t *testing.T) {
		var outer any
		reactor.CreateRoot(func(o *reactor.Owner) {
			o.OnError(func(err any) { outer = err })

			reactor.CatchError(func() {
				reactor.NewEffect(func() func() {
					panic("deep")
				})
			}, func(err any) { panic(err) })
		})
		assert.Equal(t, "deep", outer)
	})
}
