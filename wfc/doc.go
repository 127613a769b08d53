// Package wfc implements the observe/propagate/restart solver: the
// algorithmically interesting part of the pipeline — work-queue
// discipline, collapse ordering via minimum entropy, worklist-based
// constraint propagation, contradiction detection, and restart.
//
// Generate is single-threaded and synchronous: it owns its wave.Wave
// exclusively for the call's duration and returns only on success,
// exhaustion of restarts, argument error, or deadline/context expiry.
// The model.Model it reads from is immutable and may be shared across
// concurrent Generate calls.
//
// Determinism: given the same model, the same outH/outW, and the same
// SolveOptions.Seed, Generate is byte-for-byte reproducible. Each restart
// attempt i reseeds its *rand.Rand from Seed XOR uint64(i), including the
// entropy tie-break noise draws, which share that same stream.
package wfc
