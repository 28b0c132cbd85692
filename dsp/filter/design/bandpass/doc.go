// Package bandpass designs Butterworth band-pass filters as cascades of
// biquad sections.
//
// An order-N design has 2N poles and N sections. Every section has the
// numerator 1 - z^-2, so the cascade has N zeros at DC and N at Nyquist.
// The overall gain is 0 dB at the geometric band centre and -3.01 dB at
// both cutoffs.
package bandpass
