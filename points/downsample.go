package points

import "math/rand"

// Downsample returns s unchanged when it holds at most max points.
// Otherwise it returns a uniform random subset of exactly max points
// drawn without replacement.
//
// The subset is drawn from rng so callers can seed for reproducible
// results. A nil rng falls back to the process-wide source.
func Downsample(s Sample, max int, rng *rand.Rand) Sample {
	if max <= 0 || len(s) <= max {
		return s
	}

	var perm []int
	if rng != nil {
		perm = rng.Perm(len(s))
	} else {
		perm = rand.Perm(len(s))
	}

	out := make(Sample, max)
	for i := range out {
		out[i] = s[perm[i]]
	}

	return out
}
