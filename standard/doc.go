// Package standard rounds component values to the nearest standard
// purchasable value of an E-series (E96/E48/E24/E12, the 1%/2%/5%/10%
// tolerance tables).
//
// The rounding works on the logarithmic value grid of the series rather
// than a lookup table: the value is normalized into its decade, snapped to
// the nearest of the series' log-spaced steps, and rounded to the number of
// significant decimals the series carries (one decimal for E96/E48, none
// for E24/E12).
//
//	r, _ := standard.Resistor(89.8, standard.E96) // 90.9
//	c, _ := standard.Capacitor(12.72, standard.E24) // 13
package standard
