// Package plot renders circuit responses to PNG files.
//
// 🚀 How does it work?
//
//	Figures is an explicit accumulator: add as many curves as you like to
//	its fixed set of figure kinds (impedance magnitudes, gain and phase,
//	time traces, eye diagrams, spectra), then write every populated
//	figure in one Save call. Curves on the same figure rotate through a
//	six-colour palette.
//
// ✨ Figure kinds:
//   - AddImpedance, AddInputImpedance, AddOutputImpedance: log-log |Z|
//   - AddForwardGain, AddReverseGain: gain in dB stacked over phase in
//     degrees on a log frequency axis
//   - AddVoltage, AddCurrent: time-domain traces
//   - AddVoltageEye: voltage scatter on the folded bit axis
//   - AddVoltageSpectrum, AddCurrentSpectrum: log-log spectra
//
// ⚙️ Usage:
//
//	figs := plot.New()
//	_ = figs.AddImpedance(f, bank.Z(f), "bypass bank")
//	_ = figs.AddForwardGain(f, twoport.Gf(dev, f), "channel")
//	if err := figs.Save("out"); err != nil {
//		log.Fatal(err)
//	}
//
// Log-scale figures silently drop samples at non-positive coordinates
// (the DC sample of an FFT grid, a zero magnitude); everything else is
// drawn as given. Save writes one PNG per populated figure under fixed
// file names and does nothing when no figure was added.
package plot
