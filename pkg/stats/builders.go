package stats

import (
	"cmp"
	"slices"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/samplestats/internal/sentinel"
)

// GenerateSample draws n elements from values, uniformly and with replacement.
func GenerateSample(gen Generator, n int, values []int) ([]int, error) {
	if gen == nil {
		return nil, sentinel.ErrNilGenerator
	}

	if n <= 0 {
		return nil, ewrap.Wrapf(sentinel.ErrInvalidSampleSize, "got %d", n)
	}

	if len(values) == 0 {
		return nil, sentinel.ErrEmptyValueSet
	}

	sample := make([]int, n)
	for i := range sample {
		sample[i] = values[gen.NextInRange(len(values))]
	}

	return sample, nil
}

// VariationSeries returns a sorted copy of sample. The input is left untouched.
func VariationSeries(sample []int) []int {
	series := slices.Clone(sample)
	slices.SortStableFunc(series, cmp.Compare[int])

	return series
}

// Distribution counts the occurrences of each distinct value in sample.
// Keys keep the order of their first appearance.
func Distribution(sample []int) *FrequencyTable {
	dist := newTable[int](len(sample))
	for _, v := range sample {
		dist.add(v, 1)
	}

	return dist
}

// CumulativeFrequency returns, for each key of dist taken in ascending order,
// the sum of the frequencies of every key lower than or equal to it.
func CumulativeFrequency(dist *FrequencyTable) *FrequencyTable {
	cum := newTable[int](dist.Len())

	running := 0
	for _, key := range dist.SortedKeys() {
		freq, _ := dist.Get(key)
		running += freq
		cum.add(key, running)
	}

	return cum
}

// RelativeFrequency divides each frequency of dist by total.
// Keys keep the order of dist.
func RelativeFrequency(dist *FrequencyTable, total int) (*RelativeTable, error) {
	if total <= 0 {
		return nil, ewrap.Wrapf(sentinel.ErrZeroTotal, "got %d", total)
	}

	rel := newTable[float64](dist.Len())
	for _, entry := range dist.Entries() {
		rel.add(entry.Value, float64(entry.Frequency)/float64(total))
	}

	return rel, nil
}
