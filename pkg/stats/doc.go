// Package stats implements the descriptive-statistics pipeline over a small
// integer sample: sample generation, the variation series, the frequency
// distribution, the cumulative frequency and the relative frequency.
//
// Every builder is a pure function. Inputs are never mutated and each call
// allocates its own result, so concurrent callers share nothing as long as
// every run owns its Generator.
//
//	gen := stats.NewRandGenerator()
//	sample, err := stats.GenerateSample(gen, 14, []int{1, 2, 3, 4, 5})
//	series := stats.VariationSeries(sample)
//	dist := stats.Distribution(sample)
//	cum := stats.CumulativeFrequency(dist)
//	rel, err := stats.RelativeFrequency(dist, len(sample))
package stats
