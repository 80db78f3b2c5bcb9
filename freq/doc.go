// Package freq builds the frequency vectors every circuit query runs over.
//
// 🚀 What is a frequency vector?
//
//	An immutable, ordered set of sample frequencies carried in two parallel
//	forms: plain Hz and angular rad/s (2π·Hz). Its length fixes the width
//	of every downstream array; impedances, ABCD matrices and spectra are
//	all evaluated once per sample.
//
// ✨ Constructors:
//   - LogSpace: logarithmic sweep between two positive frequencies at a
//     chosen number of steps per decade (the usual Bode-style axis)
//   - FromSlice: wrap an arbitrary non-negative sample set
//   - FFTSamples: the discrete-transform grid in FFT bin order, including
//     the negative-frequency tail (used by the waveform drive path)
//
// ⚙️ Usage:
//
//	f, err := freq.LogSpace(10e3, 1e9, 100) // 10 kHz … 1 GHz, 100 pts/decade
//	if err != nil { ... }
//	z := device.Z(f) // len(z) == f.Len()
//
// Accessor slices are owned by the vector; treat them as read-only.
package freq
