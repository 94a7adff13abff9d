// Package points provides the point-sample primitives shared by the
// correlation estimators: k-dimensional position samples, uniform
// downsampling, periodic-boundary resolution, and the regular-grid
// subvolume labeling used by jackknife resampling.
//
// A Sample is an N×k slice of coordinates. Samples are plain values;
// nothing in this package mutates its inputs, and every function
// returns freshly allocated results.
package points
