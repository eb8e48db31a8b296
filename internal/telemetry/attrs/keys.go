// Package attrs defines telemetry attribute keys used for observability across
// the samplestats system. These constants provide standardized key names for
// metrics, traces, and logs so that every middleware labels data the same way.
package attrs

const (
	// AttrMethod is the name of the service method being observed.
	AttrMethod = "method"
	// AttrSampleSize is the number of elements in the generated sample.
	AttrSampleSize = "sample.size"
	// AttrDistinctValues is the number of distinct values found in the sample.
	AttrDistinctValues = "sample.distinct"
	// AttrFingerprint is the xxhash fingerprint of the sample.
	AttrFingerprint = "sample.fingerprint"
	// AttrFailed marks a run that ended with an error.
	AttrFailed = "failed"
)
