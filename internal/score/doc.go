// Package score computes the 0-100 compliance score from the aggregated
// detector outputs. The calculation is a pure function: five 20-point
// buckets, a penalty for error findings, and a floor that keeps clean but
// low-signal sites from scoring near zero.
package score
