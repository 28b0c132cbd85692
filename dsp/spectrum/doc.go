// Package spectrum computes exact-length DFTs of real signals and the
// display quantities derived from them: bin frequencies, magnitude, power,
// phase, single-sided amplitude and decibels.
//
// Power-of-two lengths go through an algo-fft plan. Every other length uses
// gonum's mixed-radix transform, so a 1000-sample record is analysed without
// zero padding and its bins stay exactly fs/N apart.
package spectrum
