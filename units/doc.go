// Package units converts engineering quantity strings like "100nF",
// "0.039Ohm", "10mil" or "1GHz" into plain float64 values.
//
// A quantity is a number, an optional SI magnitude prefix and an optional
// unit word:
//
//	prefix:  p  n  u  m  k  M  G          (1e-12 … 1e9)
//	unit:    Ohm(s), F, H, Hz, V, A, s, in, mil
//
// Unit words carry no scale except mil, which is a thousandth of an inch;
// lengths are expressed in inches throughout the device models. Plain
// numeric strings (including exponent notation such as "5.1e-11") pass
// through untouched.
//
// Parse reports malformed input as an error; MustParse panics and is meant
// for literals:
//
//	esl := units.MustParse("0.5nH") // 5e-10
package units
