// Package waveform generates digital voltage waveforms and drives them
// through two-port networks.
//
// 🚀 What lives here?
//
//	Gaussian-edged digital sources built from the rise-time model of
//	"High-Speed Digital Design" (Johnson, Graham), an eye-diagram fold,
//	one-sided spectra, and Drive: inject a waveform into any
//	twoport.Device and get back the output voltage together with the
//	input current as time traces.
//
// ✨ Key pieces:
//   - Waveform: time, voltage and current traces plus bit metadata
//   - generators: Gauss (explicit states), Clock (alternating bits),
//     PRBS (seeded random bits), tuned by functional options
//   - Drive: pad, transform, apply Zin and Gf per bin, transform back
//   - EyeTime, VoltageSpectrum, CurrentSpectrum for analysis and plots
//
// ⚙️ Usage:
//
//	vi, _ := waveform.PRBS(8, waveform.WithJitter(0))
//	dev := twoport.Cascade(
//		twoport.Series(oneport.Resistor(100)),
//		twoport.LosslessLine(10, 111, twoport.DefaultEpsilonR),
//	)
//	vo, _ := waveform.Drive(vi, dev)
//
// Generation is deterministic: jitter and random bits come from a seeded
// stream (WithSeed), never from wall-clock entropy. Driving never mutates
// the input; the result is a new waveform carrying the response voltage
// and the drive current with the bit metadata copied over.
package waveform
