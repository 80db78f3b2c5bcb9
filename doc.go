// Package go2port is your frequency-domain workbench for linear circuit
// analysis — from single impedances to transmission lines, bypass
// networks and jittered bit streams driven through a channel.
//
// 🚀 What is go2port?
//
//	A small, deterministic library that brings together:
//		• One-ports: R, L, C, ferrite beads, PCB plane cavities, bypass parts
//		• Composition: series and parallel algebra with N-fold repetition
//		• Two-ports: ABCD matrices, cascades, terminal impedances & gains
//		• Transmission lines: ideal delay lines and RLGC lossy lines
//		• Waveforms: gaussian-edge clocks and PRBS streams with jitter
//		• Drive: FFT transport of a waveform through any two-port
//		• Plotting: impedance, gain, trace, eye and spectrum figures as PNG
//
// ✨ Why choose go2port?
//
//   - Predictable numerics – singular samples collapse to one huge finite
//     constant instead of NaN storms
//   - Deterministic – seeded jitter, bit-identical reruns
//   - Composable – every model is a Device; build circuits like expressions
//   - Honest errors – malformed inputs fail construction with sentinel
//     errors; numeric fallbacks (singular divides, ferrite clamping) are
//     documented contracts, never surprises
//
// Under the hood, everything is organized under focused subpackages:
//
//	freq/     — frequency vectors: log sweeps, arbitrary sets, FFT grids
//	units/    — "100nF", "10mil", "1GHz" quantity parsing
//	standard/ — E-series snapping for resistors and capacitors
//	oneport/  — impedance models and their series/parallel algebra
//	twoport/  — ABCD elements, cascades, lines, Zin/Zout/Gf/Gr
//	waveform/ — generators, the FFT drive-through, spectra, eye folding
//	plot/     — figure accumulator rendering PNG files
//
// Quick ASCII example:
//
//	     ___
//	o---|___|---======================---o
//	     Rs        10in, ~111 Ohm
//
//	a source resistor launching into a transmission line; cascade the
//	two elements and ask for Gf, Zin or a driven eye diagram.
//
// Dive into examples/ for a power-distribution impedance study, a
// ferrite pi-filter and a PRBS eye-diagram run.
//
//	go get github.com/katalvlaran/go2port
package go2port
