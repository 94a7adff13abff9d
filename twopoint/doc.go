// Package twopoint computes two-point correlation functions from
// catalogs of point positions in a box with optional periodic
// boundaries.
//
// Correlation estimates the radial correlation function xi(r);
// RedshiftSpace estimates the two-dimensional xi(rp, pi) surface with
// the last coordinate as the line of sight; Projected integrates that
// surface into wp(rp); Jackknife adds delete-one resampling errors and
// a full covariance matrix to the radial estimate.
//
// When the box is periodic and no random catalog is supplied, the
// expected random pair counts are computed analytically from shell
// volumes. Without periodic boundaries a random catalog is mandatory.
//
// All calls are synchronous batch computations over their inputs;
// nothing is shared between calls. The pair counter itself may
// parallelize internally (see pairs.BruteForce).
package twopoint
