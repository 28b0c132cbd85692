// Package core holds the sampling configuration shared by the generators and
// analyzers, plus decibel conversion.
package core
