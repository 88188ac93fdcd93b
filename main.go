//go:build ignore

package main

import (
	"fmt"

	"github.com/fluxgraph/reactor"
)

func main() {
	root := reactor.CreateRoot(func(o *reactor.Owner) {
		a := reactor.NewSignal(1)
		b := reactor.NewSignal(2)

		sum := reactor.NewComputed(func() int {
			result := a.Get() + b.Get()
			fmt.Println("  [computed] sum:", result)
			return result
		})

		reactor.NewEffect(func() func() {
			fmt.Println("  [effect] sum is:", sum.Get())
			return nil
		})

		reactor.OnSettled(func() {
			fmt.Println("  [settled] flush complete")
		})

		fmt.Println("updating a and b in a batch...")
		reactor.Batch(func() {
			a.Set(10)
			b.Set(20)
		})
	})

	root.Dispose()
}
