package samplestats

import (
	"time"

	"github.com/hyp3rd/samplestats/pkg/stats"
)

// Report holds one run of the pipeline. It is built by Pipeline.Compute and not modified afterwards.
type Report struct {
	Sample          []int
	VariationSeries []int
	Distribution    *stats.FrequencyTable
	Cumulative      *stats.FrequencyTable
	Relative        *stats.RelativeTable
	Summary         stats.Summary
	Fingerprint     string
	GeneratedAt     time.Time
}

// ReportDocument is the wire form of a Report. Tables are listed in ascending value order.
type ReportDocument struct {
	Fingerprint     string                 `codec:"fingerprint"     json:"fingerprint"     msgpack:"fingerprint"`
	GeneratedAt     time.Time              `codec:"generatedAt"     json:"generatedAt"     msgpack:"generatedAt"`
	Sample          []int                  `codec:"sample"          json:"sample"          msgpack:"sample"`
	VariationSeries []int                  `codec:"variationSeries" json:"variationSeries" msgpack:"variationSeries"`
	Distribution    []stats.Entry[int]     `codec:"distribution"    json:"distribution"    msgpack:"distribution"`
	Cumulative      []stats.Entry[int]     `codec:"cumulative"      json:"cumulative"      msgpack:"cumulative"`
	Relative        []stats.Entry[float64] `codec:"relative"        json:"relative"        msgpack:"relative"`
	Summary         stats.Summary          `codec:"summary"         json:"summary"         msgpack:"summary"`
}

// Document returns the serializable form of the report.
func (r *Report) Document() ReportDocument {
	return ReportDocument{
		Fingerprint:     r.Fingerprint,
		GeneratedAt:     r.GeneratedAt,
		Sample:          r.Sample,
		VariationSeries: r.VariationSeries,
		Distribution:    r.Distribution.SortedEntries(),
		Cumulative:      r.Cumulative.SortedEntries(),
		Relative:        r.Relative.SortedEntries(),
		Summary:         r.Summary,
	}
}
