package goforge_test

import (
	"fmt"

	goforge "github.com/reoring/goforge"
)

func ExampleBuilder() {
	b := goforge.MustNew[Point]()

	// every Set returns a new builder; the original stays usable
	withX := b.MustSet("x", 1)
	p, err := withX.MustSet("y", 2).Build()
	fmt.Println(p.X, p.Y, err)

	// required fields gate construction
	_, err = withX.Build()
	_, missing, _ := goforge.Incomplete(err)
	fmt.Println(missing)
	// Output:
	// 1 2 <nil>
	// [y]
}

func ExampleApplyJSON() {
	b := goforge.MustNew[Config]()
	b, _ = goforge.ApplyJSON(b, []byte(`{"a": 1}`))
	c, _ := b.Build()
	fmt.Println(c.A, c.B)
	// Output: 1 10
}
