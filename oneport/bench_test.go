package oneport_test

import (
	"testing"

	"github.com/katalvlaran/go2port/freq"
	"github.com/katalvlaran/go2port/oneport"
)

// BenchmarkParallelBank_Z measures a realistic decoupling-bank query: ten
// bypass capacitors in parallel over a 100-point sweep.
func BenchmarkParallelBank_Z(b *testing.B) {
	f, err := freq.LogSpace(10e3, 1e9, 20)
	if err != nil {
		b.Fatal(err)
	}
	bank := oneport.ParallelN(oneport.BypassCap(100e-9, 0.5e-9, 0.039), 10)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = bank.Z(f)
	}
}

// BenchmarkPlane_Z measures the cavity-mode double sum on the default
// 20x20 modal grid over a 100-point sweep.
func BenchmarkPlane_Z(b *testing.B) {
	f, err := freq.LogSpace(10e3, 1e9, 20)
	if err != nil {
		b.Fatal(err)
	}
	p, err := oneport.NewPlane(oneport.DefaultPlaneConfig())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = p.Z(f)
	}
}
