// Package statcheck computes basic balance statistics over repeated
// extractor trials, used by the extractor packages' tests to check
// that output looks close to uniform (mean Hamming weight near half
// the output length, small spread across trials).
package statcheck

import "github.com/montanaflynn/stats"

// Balance returns the mean and standard deviation of the Hamming
// weight across a set of equal-length bit vectors.
func Balance(trials [][]int) (mean, stddev float64, err error) {
	weights := make(stats.Float64Data, len(trials))
	for i, trial := range trials {
		w := 0
		for _, b := range trial {
			w += b
		}
		weights[i] = float64(w)
	}
	mean, err = weights.Mean()
	if err != nil {
		return 0, 0, err
	}
	stddev, err = weights.StandardDeviation()
	if err != nil {
		return 0, 0, err
	}
	return mean, stddev, nil
}
