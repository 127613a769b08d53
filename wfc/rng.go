package wfc

import "math/rand/v2"

// rngForAttempt derives a fresh, deterministic RNG stream for the given
// restart attempt index: seed XOR attempt_index. The same (seed, attempt)
// pair always yields the same stream, which is what makes Generate
// reproducible run to run.
func rngForAttempt(seed uint64, attempt uint32) *rand.Rand {
	s := seed ^ uint64(attempt)

	return rand.New(rand.NewPCG(s, s))
}
