// Package iir holds filters in transfer-function form
//
//	H(z) = (b0 + b1 z^-1 + ... + bM z^-M) / (a0 + a1 z^-1 + ... + aN z^-N)
//
// and runs them the way a direct-form linear filter does: coefficients are
// normalised by a0 and the state is a single Direct Form II Transposed
// delay line of length max(M, N).
package iir
