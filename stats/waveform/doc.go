// Package waveform summarizes time-domain signals: level statistics,
// signal-to-noise ratio against a clean reference, and the exponential
// envelope rate of an enveloped sine.
package waveform
