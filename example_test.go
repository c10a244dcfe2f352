package gf2_test

import (
	"fmt"

	"github.com/ny0m/gf2"
)

func Example() {
	// Build the 3x3 matrix that rotates a vector's elements left by one
	// place, and solve A.x = b for a right-hand side of all ones.
	a := gf2.LeftRotationMatrix(3, 1)
	b := gf2.Ones(3)

	x, ok := a.XFor(b)
	if !ok {
		fmt.Println("no solution")
		return
	}
	fmt.Println(x)
	fmt.Println(a.Dot(x))

	// Output:
	// 111
	// 111
}
