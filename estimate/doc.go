// Package estimate evaluates two-point correlation estimators from
// binned pair counts and derives jackknife errors and covariances from
// delete-one resample estimates.
//
// Five classical estimators are provided, differing in which pair
// counts they consume and in their bias/variance tradeoffs: Natural,
// Davis-Peebles, Hewett, Hamilton, and Landy-Szalay. Bins whose
// denominator counts are zero produce non-finite values; they are
// propagated to the caller, never clipped.
package estimate
