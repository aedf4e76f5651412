package service

// MetricsRecorder records business events worth counting.
type MetricsRecorder interface {
	// RecordCacheLookup counts a list cache hit or miss for a resource.
	RecordCacheLookup(resource string, hit bool)

	// RecordServiceOrder counts a publish attempt and its revenue on success.
	RecordServiceOrder(total float64, err error)
}
