// SPDX-License-Identifier: MIT

// Package plot - Figures accumulator and curve ingestion.
//
// Purpose:
//   Collect frequency- and time-domain curves into a fixed set of named
//   figures and rotate line colours within each figure, deferring all
//   rendering to Save.
//
// Design:
//   - Each figure kind owns its title, axis labels, scales and output
//     file name through package-level tables.
//   - Figures are created lazily on the first Add call that targets
//     them; an untouched kind produces no file.
//   - Gain figures hold two stacked plots (dB over phase) that share
//     one legend and one colour per curve.
//
// Determinism & Performance:
//   - Adding a curve copies its points once; nothing is rasterised
//     until Save.
//   - Colour assignment depends only on the number of curves already
//     present in the figure.
//
// AI-Hints:
//   - Log-scale axes reject non-positive coordinates, so curve points
//     with x <= 0 (and y <= 0 on log-log figures) are dropped before
//     they reach the renderer. Feed FFT grids as-is; the DC and
//     negative-frequency samples vanish from log figures.
//   - DB and PhaseDeg are exported so callers can post-process gain
//     vectors without re-deriving the conventions.
package plot

import (
	"errors"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/go2port/freq"
	"github.com/katalvlaran/go2port/waveform"
)

// ErrLengthMismatch is returned when a frequency grid and its data
// vector, or a time axis and its trace, have different lengths.
var ErrLengthMismatch = errors.New("plot: axis and data lengths differ")

// palette is the number of distinct line colours before they repeat.
const palette = 6

// kind enumerates the fixed figure slots of a Figures accumulator.
type kind int

const (
	kindImpedance kind = iota
	kindInputImpedance
	kindOutputImpedance
	kindForwardGain
	kindReverseGain
	kindVoltage
	kindCurrent
	kindVoltageEye
	kindVoltageSpectrum
	kindCurrentSpectrum
	kindCount
)

var kindTitle = [kindCount]string{
	"One Port Impedance",
	"Two Port Input Impedance (Open-Circuit)",
	"Two Port Output Impedance (Open-Circuit)",
	"Two Port Forward Gain (Open-Circuit)",
	"Two Port Reverse Gain (Open-Circuit)",
	"Voltage",
	"Current",
	"Voltage",
	"Voltage",
	"Current",
}

var kindXLabel = [kindCount]string{
	"Frequency (Hz)",
	"Frequency (Hz)",
	"Frequency (Hz)",
	"Frequency (Hz)",
	"Frequency (Hz)",
	"Time (s)",
	"Time (s)",
	"Time (s)",
	"Frequency (Hz)",
	"Frequency (Hz)",
}

// kindYLabel labels the y axis; for the stacked gain figures it labels
// the top plot and phaseLabel labels the bottom one.
var kindYLabel = [kindCount]string{
	"|Z| (Ohms)",
	"|Z| (Ohms)",
	"|Z| (Ohms)",
	"Gain (dB)",
	"Gain (dB)",
	"Voltage (V)",
	"Current (A)",
	"Voltage (V)",
	"Voltage (V)",
	"Current (A)",
}

const phaseLabel = "Phase (deg)"

var kindFile = [kindCount]string{
	"impedance.png",
	"input_impedance.png",
	"output_impedance.png",
	"forward_gain.png",
	"reverse_gain.png",
	"voltage.png",
	"current.png",
	"voltage_eye.png",
	"voltage_spectrum.png",
	"current_spectrum.png",
}

// figure is one populated slot: either a single plot or, for the gain
// kinds, a dB plot stacked over a phase plot.
type figure struct {
	single *gplot.Plot
	top    *gplot.Plot
	bottom *gplot.Plot
	curves int
}

// Figures accumulates curves and renders them on Save.
//
// The zero value is not ready for use; call New.
type Figures struct {
	figs [kindCount]*figure
}

// New returns an empty accumulator.
func New() *Figures { return &Figures{} }

// Count reports how many figures have at least one curve.
func (f *Figures) Count() int {
	var n int
	for _, fig := range f.figs {
		if fig != nil {
			n++
		}
	}
	return n
}

// AddImpedance adds a one-port impedance magnitude curve on log-log axes.
func (f *Figures) AddImpedance(fr *freq.Freq, z []complex128, label string) error {
	return f.addMagnitude(kindImpedance, fr, z, label)
}

// AddInputImpedance adds an open-circuit input impedance magnitude curve.
func (f *Figures) AddInputImpedance(fr *freq.Freq, z []complex128, label string) error {
	return f.addMagnitude(kindInputImpedance, fr, z, label)
}

// AddOutputImpedance adds an open-circuit output impedance magnitude curve.
func (f *Figures) AddOutputImpedance(fr *freq.Freq, z []complex128, label string) error {
	return f.addMagnitude(kindOutputImpedance, fr, z, label)
}

// AddForwardGain adds an open-circuit forward gain curve: magnitude in
// dB stacked over phase in degrees, both on a log frequency axis.
func (f *Figures) AddForwardGain(fr *freq.Freq, g []complex128, label string) error {
	return f.addGain(kindForwardGain, fr, g, label)
}

// AddReverseGain adds an open-circuit reverse gain curve in the same
// stacked dB and phase layout as AddForwardGain.
func (f *Figures) AddReverseGain(fr *freq.Freq, g []complex128, label string) error {
	return f.addGain(kindReverseGain, fr, g, label)
}

// AddVoltage adds the waveform's voltage trace against its time axis.
func (f *Figures) AddVoltage(w *waveform.Waveform, label string) error {
	return f.addTrace(kindVoltage, w.Time, w.Voltage, label)
}

// AddCurrent adds the waveform's current trace against its time axis.
func (f *Figures) AddCurrent(w *waveform.Waveform, label string) error {
	return f.addTrace(kindCurrent, w.Time, w.Current, label)
}

// AddVoltageEye scatters the voltage trace over the folded bit axis,
// overlaying every bit interval into one eye opening.
func (f *Figures) AddVoltageEye(w *waveform.Waveform, label string) error {
	folded := w.EyeTime()
	if len(folded) != len(w.Voltage) {
		return ErrLengthMismatch
	}
	pts := make(plotter.XYs, len(folded))
	for i := range folded {
		pts[i] = plotter.XY{X: folded[i], Y: w.Voltage[i]}
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	fig := f.figure(kindVoltageEye)
	sc.GlyphStyle.Color = plotutil.Color(fig.curves % palette)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(1.5)
	fig.curves++
	fig.single.Add(sc)
	fig.single.Legend.Add(label, sc)
	return nil
}

// AddVoltageSpectrum adds the waveform's voltage spectrum magnitude on
// log-log axes. It fails when the waveform cannot be transformed.
func (f *Figures) AddVoltageSpectrum(w *waveform.Waveform, label string) error {
	fr, spec, err := w.VoltageSpectrum()
	if err != nil {
		return err
	}
	return f.addMagnitude(kindVoltageSpectrum, fr, spec, label)
}

// AddCurrentSpectrum adds the waveform's current spectrum magnitude on
// log-log axes.
func (f *Figures) AddCurrentSpectrum(w *waveform.Waveform, label string) error {
	fr, spec, err := w.CurrentSpectrum()
	if err != nil {
		return err
	}
	return f.addMagnitude(kindCurrentSpectrum, fr, spec, label)
}

// addMagnitude draws |v| over frequency on a log-log figure.
func (f *Figures) addMagnitude(k kind, fr *freq.Freq, v []complex128, label string) error {
	if fr.Len() != len(v) {
		return ErrLengthMismatch
	}
	mag := make([]float64, len(v))
	cmplxs.Abs(mag, v)
	line, err := plotter.NewLine(logPoints(fr.Hz(), mag, true))
	if err != nil {
		return err
	}
	fig := f.figure(k)
	line.Color = plotutil.Color(fig.curves % palette)
	fig.curves++
	fig.single.Add(line)
	fig.single.Legend.Add(label, line)
	return nil
}

// addGain draws dB and phase curves on the stacked gain figure. Both
// subplots share one colour per curve; only the top one gets a legend
// entry.
func (f *Figures) addGain(k kind, fr *freq.Freq, g []complex128, label string) error {
	if fr.Len() != len(g) {
		return ErrLengthMismatch
	}
	hz := fr.Hz()
	top, err := plotter.NewLine(logPoints(hz, DB(g), false))
	if err != nil {
		return err
	}
	bottom, err := plotter.NewLine(logPoints(hz, PhaseDeg(g), false))
	if err != nil {
		return err
	}
	fig := f.figure(k)
	colour := plotutil.Color(fig.curves % palette)
	fig.curves++
	top.Color = colour
	bottom.Color = colour
	fig.top.Add(top)
	fig.top.Legend.Add(label, top)
	fig.bottom.Add(bottom)
	return nil
}

// addTrace draws a time-domain trace on linear axes.
func (f *Figures) addTrace(k kind, time, data []float64, label string) error {
	if len(time) != len(data) {
		return ErrLengthMismatch
	}
	pts := make(plotter.XYs, len(time))
	for i := range time {
		pts[i] = plotter.XY{X: time[i], Y: data[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	fig := f.figure(k)
	line.Color = plotutil.Color(fig.curves % palette)
	fig.curves++
	fig.single.Add(line)
	fig.single.Legend.Add(label, line)
	return nil
}

// figure returns the slot for k, creating it on first use.
func (f *Figures) figure(k kind) *figure {
	if f.figs[k] != nil {
		return f.figs[k]
	}
	fig := &figure{}
	switch k {
	case kindForwardGain, kindReverseGain:
		fig.top = newPlot(kindTitle[k], "", kindYLabel[k], true, false)
		fig.bottom = newPlot("", kindXLabel[k], phaseLabel, true, false)
	case kindVoltage, kindCurrent, kindVoltageEye:
		fig.single = newPlot(kindTitle[k], kindXLabel[k], kindYLabel[k], false, false)
	default:
		fig.single = newPlot(kindTitle[k], kindXLabel[k], kindYLabel[k], true, true)
	}
	f.figs[k] = fig
	return fig
}

// newPlot builds one plot with the given decorations and axis scales.
func newPlot(title, xLabel, yLabel string, logX, logY bool) *gplot.Plot {
	p := gplot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	if logX {
		p.X.Scale = gplot.LogScale{}
		p.X.Tick.Marker = gplot.LogTicks{Prec: -1}
	}
	if logY {
		p.Y.Scale = gplot.LogScale{}
		p.Y.Tick.Marker = gplot.LogTicks{Prec: -1}
	}
	return p
}

// logPoints pairs xs with ys, dropping samples a log x axis cannot
// place (x <= 0), samples with non-finite y, and, when the y axis is
// logarithmic too, samples with y <= 0.
func logPoints(xs, ys []float64, logY bool) plotter.XYs {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		x, y := xs[i], ys[i]
		if x <= 0 || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		if logY && y <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts
}

// DB converts complex samples to magnitude in decibels, 20*log10(|v|).
func DB(v []complex128) []float64 {
	out := make([]float64, len(v))
	for i, c := range v {
		out[i] = 20 * math.Log10(cmplx.Abs(c))
	}
	return out
}

// PhaseDeg converts complex samples to phase angles in degrees.
func PhaseDeg(v []complex128) []float64 {
	out := make([]float64, len(v))
	for i, c := range v {
		out[i] = cmplx.Phase(c) * 180 / math.Pi
	}
	return out
}
