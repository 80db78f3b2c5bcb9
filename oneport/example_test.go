package oneport_test

import (
	"fmt"

	"github.com/katalvlaran/go2port/freq"
	"github.com/katalvlaran/go2port/oneport"
)

// ExampleParallel shows the simplest composition: two 4 Ohm resistors in
// parallel look like 2 Ohms at any frequency.
func ExampleParallel() {
	f, err := freq.FromSlice([]float64{1e6})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	z := oneport.Parallel(oneport.Resistor(4), oneport.Resistor(4)).Z(f)
	fmt.Println(z[0])
	// Output:
	// (2+0i)
}

// ExampleDivide demonstrates the singular substitution policy next to an
// ordinary complex division.
func ExampleDivide() {
	fmt.Println(oneport.Divide(1, 0))
	fmt.Println(oneport.Divide(complex(4, 0), complex(0, 2)))
	// Output:
	// (1e+18+0i)
	// (0-2i)
}
