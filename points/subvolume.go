package points

import "errors"

// Errors returned by subvolume labeling.
var (
	ErrSubvolumeShape = errors.New("points: subdivisions must be scalar or length k")
	ErrSubvolumeCount = errors.New("points: subdivisions must be positive")
	ErrBoxShape       = errors.New("points: box lengths must be scalar or length k")
	ErrBoxValue       = errors.New("points: box lengths must be positive")
)

// SubvolumeLabels partitions an axis-aligned box of side lengths lbox
// into a regular grid of subdivisions nsub per dimension and assigns
// each point the 1-based flat raster index (first dimension varying
// slowest) of the cell containing it.
//
// Label 0 is reserved to mean "full sample" and is never assigned.
// Points on or beyond the outer boundary clamp into the edge cell of
// each dimension. Both lbox and nsub broadcast from length 1.
//
// It returns the per-point labels and the total number of subvolumes.
func SubvolumeLabels(s Sample, lbox []float64, nsub []int) ([]int, int, error) {
	dim := s.Dim()

	box, err := broadcastBox(lbox, dim)
	if err != nil {
		return nil, 0, err
	}

	div, err := broadcastSubdivisions(nsub, dim)
	if err != nil {
		return nil, 0, err
	}

	cell := make([]float64, dim)
	total := 1

	for d := range cell {
		cell[d] = box[d] / float64(div[d])
		total *= div[d]
	}

	labels := make([]int, len(s))

	for i, p := range s {
		flat := 0

		for d := 0; d < dim; d++ {
			idx := int(p[d] / cell[d])
			if idx < 0 {
				idx = 0
			}

			if idx >= div[d] {
				idx = div[d] - 1
			}

			flat = flat*div[d] + idx
		}

		labels[i] = flat + 1
	}

	return labels, total, nil
}

// SubvolumeCounts tallies how many labels fall in each subvolume over
// the full range 1..nsubvol. Empty subvolumes report a count of 0;
// index r-1 holds the count for label r.
func SubvolumeCounts(labels []int, nsubvol int) []int {
	counts := make([]int, nsubvol)

	for _, l := range labels {
		if l >= 1 && l <= nsubvol {
			counts[l-1]++
		}
	}

	return counts
}

func broadcastBox(lbox []float64, dim int) ([]float64, error) {
	out := make([]float64, dim)

	switch len(lbox) {
	case 1:
		for d := range out {
			out[d] = lbox[0]
		}
	case dim:
		copy(out, lbox)
	default:
		return nil, ErrBoxShape
	}

	for _, l := range out {
		if l <= 0 {
			return nil, ErrBoxValue
		}
	}

	return out, nil
}

func broadcastSubdivisions(nsub []int, dim int) ([]int, error) {
	out := make([]int, dim)

	switch len(nsub) {
	case 1:
		for d := range out {
			out[d] = nsub[0]
		}
	case dim:
		copy(out, nsub)
	default:
		return nil, ErrSubvolumeShape
	}

	for _, n := range out {
		if n < 1 {
			return nil, ErrSubvolumeCount
		}
	}

	return out, nil
}
