// Package pldb computes the perceived loudness of a sonic-boom pressure
// signature in PLdB using Stevens' Mark VII procedure.
//
// The signature is edge-tapered with a Hann window and zero-padded before
// a frequency analysis. A one-sided power spectrum, refined with
// interpolated values at the one-third-octave band boundaries, is
// integrated per band to obtain sound pressure levels. Those are mapped to
// equivalent loudness against Stevens' equal-sone contours, converted to
// sones, and combined with the Mark VII summation rule; a power law turns
// the total loudness into PLdB.
//
// References:
//
//	Stevens, S., "Perceived level of noise by Mark VII and decibels (E)",
//	J. Acoust. Soc. Am. 51(2B), 1972, pp. 575-601.
//
//	Jackson, G., and Leventhall, H., "Calculation of the perceived level
//	of noise (PLdB) using Stevens' method (Mark VII)", Applied Acoustics
//	6(1), 1973, pp. 23-34.
//
//	Shepherd, K. P., and Sullivan, B. M., "A loudness calculation
//	procedure applied to shaped sonic booms", NASA TP-3134, 1991.
package pldb
