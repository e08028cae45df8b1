package media

// ConvertStats tracks counters and output bytes across a conversion batch.
type ConvertStats struct {
	Total       int
	Converted   int
	Failed      int
	OutputBytes int64
}
