package twoport_test

import (
	"testing"

	"github.com/katalvlaran/go2port/freq"
	"github.com/katalvlaran/go2port/oneport"
	"github.com/katalvlaran/go2port/twoport"
)

// BenchmarkGf_CascadedInterconnect measures a realistic end-to-end channel
// query: source resistance, two lossy line segments with a via break
// between them, and a terminated load, swept over a 180-point grid.
func BenchmarkGf_CascadedInterconnect(b *testing.B) {
	f, err := freq.LogSpace(1e6, 1e9, 60)
	if err != nil {
		b.Fatal(err)
	}
	segment := twoport.LineParams{
		Length: 3, L: 6.35011e-7, C: 5.10343e-11,
		R0: 0.2, Rs: 2e-4, Gd: 3e-13,
	}
	dev := twoport.Cascade(twoport.Series(oneport.Resistor(50)), twoport.LossyLine(segment))
	dev = twoport.Cascade(dev, twoport.Series(oneport.ViaPair(10, 62, 20)))
	dev = twoport.Cascade(dev, twoport.LossyLine(segment))
	dev = twoport.Cascade(dev, twoport.Shunt(oneport.Resistor(111)))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = twoport.Gf(dev, f)
	}
}
