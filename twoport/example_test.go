package twoport_test

import (
	"fmt"

	"github.com/katalvlaran/go2port/freq"
	"github.com/katalvlaran/go2port/oneport"
	"github.com/katalvlaran/go2port/twoport"
)

// ExampleZin chains a DC-blocking capacitor, a parasitic inductance and a
// small termination, then reads the input impedance at 10 Hz.
func ExampleZin() {
	f, err := freq.FromSlice([]float64{10})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dev := twoport.Cascade(
		twoport.Cascade(
			twoport.Series(oneport.Capacitor(10e-6)),
			twoport.Series(oneport.Inductor(10e-9)),
		),
		twoport.Shunt(oneport.Resistor(1e-5)),
	)
	fmt.Printf("%.5f\n", twoport.Zin(dev, f)[0])
	// Output:
	// (0.00001-1591.54943i)
}

// ExampleGf reads the forward voltage gain of a resistive divider: 25 Ohms
// in series into a 100 Ohm load.
func ExampleGf() {
	f, err := freq.FromSlice([]float64{1e6})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dev := twoport.Cascade(
		twoport.Series(oneport.Resistor(25)),
		twoport.Shunt(oneport.Resistor(100)),
	)
	fmt.Printf("%.2f\n", twoport.Gf(dev, f)[0])
	// Output:
	// (0.80+0.00i)
}
