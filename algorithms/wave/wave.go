// Package wave builds single-cycle waveform tables and turns them back into
// continuous phase functions.
//
// A Table holds one period of a signal: index 0 is phase 0 and index N-1 is
// phase (N-1)/N, so the endpoint is never duplicated. Every function in this
// package is pure and safe for concurrent use.
package wave

// Table is one period of a periodic signal sampled at evenly spaced phases
type Table []float64

// PhaseFunction maps a phase in cycles to an amplitude. Generators passed to
// Sample and the functions returned by ToFunction share this type.
type PhaseFunction func(phase float64) float64
