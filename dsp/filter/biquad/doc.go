// Package biquad runs cascades of second-order IIR sections.
//
// A [Section] applies one set of [Coefficients] in Direct Form II Transposed.
// A [Chain] feeds the output of each section into the next, which is how the
// band-pass designs in dsp/filter/design/bandpass are realised. Coefficient
// design lives there; this package only evaluates and runs the sections.
package biquad
