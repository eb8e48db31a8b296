package stats

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"gonum.org/v1/gonum/stat"
)

const minSamplesForSpread = 2

// Summary holds point descriptions of a sample.
type Summary struct {
	Count  int     `codec:"count"  json:"count"  msgpack:"count"`
	Min    int     `codec:"min"    json:"min"    msgpack:"min"`
	Max    int     `codec:"max"    json:"max"    msgpack:"max"`
	Mean   float64 `codec:"mean"   json:"mean"   msgpack:"mean"`
	StdDev float64 `codec:"stdDev" json:"stdDev" msgpack:"stdDev"`
	Median float64 `codec:"median" json:"median" msgpack:"median"`
	Mode   int     `codec:"mode"   json:"mode"   msgpack:"mode"`
}

// Summarize describes a variation series. series must be sorted ascending;
// an empty series yields the zero Summary.
func Summarize(series []int) Summary {
	if len(series) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(series))
	for i, v := range series {
		xs[i] = float64(v)
	}

	summary := Summary{
		Count:  len(series),
		Min:    series[0],
		Max:    series[len(series)-1],
		Median: median(xs),
	}

	if len(xs) < minSamplesForSpread {
		summary.Mean = xs[0]
	} else {
		summary.Mean, summary.StdDev = stat.MeanStdDev(xs, nil)
	}

	mode, _ := stat.Mode(xs, nil)
	summary.Mode = int(mode)

	return summary
}

// median of sorted, non-empty xs. An even count averages the two middle elements.
func median(xs []float64) float64 {
	mid := len(xs) / 2
	if len(xs)%2 == 1 {
		return xs[mid]
	}

	return (xs[mid-1] + xs[mid]) / 2
}

// Fingerprint returns a 16 hex digit xxhash of the sample, order sensitive.
func Fingerprint(sample []int) string {
	digest := xxhash.New()

	buf := make([]byte, 0, binary.MaxVarintLen64)
	for _, v := range sample {
		buf = binary.AppendVarint(buf[:0], int64(v))
		_, _ = digest.Write(buf)
	}

	return fmt.Sprintf("%016x", digest.Sum64())
}
