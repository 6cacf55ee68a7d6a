// Package spectrum provides the one-sided energy spectral density used by
// the loudness pipeline.
//
// The FFT itself comes from an external backend; this package handles the
// power conversion, the one-sided fold, and the insertion of interpolated
// points at arbitrary query frequencies so that downstream band integration
// can hit band edges exactly.
package spectrum
