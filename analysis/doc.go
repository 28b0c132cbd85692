// Package analysis runs the signal analysis scenarios: it builds a time
// vector, generates enveloped sine components, perturbs them with seeded
// Gaussian noise, band-pass filters them, and derives the spectra and Bode
// display quantities that the commands plot.
//
// Every step is also exposed as a package-level function so it can be used
// and tested on its own. The pipeline is single-pass and synchronous; a
// failing step aborts the run.
package analysis
