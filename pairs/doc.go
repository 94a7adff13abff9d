// Package pairs defines the pair-counting contract consumed by the
// correlation estimators and provides a reference brute-force counter
// plus analytic random-pair expectations for periodic boxes.
//
// Counters return cumulative counts: entry m is the number of pairs
// with separation at most edge m. Diff, DiffRows, and DiffRpPi turn
// cumulative counts into the differential per-shell counts the
// estimator formulas consume.
//
// Counts are float64 throughout because analytically derived random
// counts are fractional.
package pairs
