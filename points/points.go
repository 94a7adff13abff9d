package points

// Sample holds N k-dimensional point positions. Insertion order carries
// no meaning; all downstream computations are order-invariant.
type Sample [][]float64

// Len returns the number of points in the sample.
func (s Sample) Len() int {
	return len(s)
}

// Dim returns the dimensionality of the sample, or 0 for an empty sample.
func (s Sample) Dim() int {
	if len(s) == 0 {
		return 0
	}

	return len(s[0])
}

// Equal reports whether s and o hold the same points in the same order,
// compared elementwise. Two samples of different shape are never equal.
func (s Sample) Equal(o Sample) bool {
	if len(s) != len(o) {
		return false
	}

	for i := range s {
		if len(s[i]) != len(o[i]) {
			return false
		}

		for d := range s[i] {
			if s[i][d] != o[i][d] {
				return false
			}
		}
	}

	return true
}
