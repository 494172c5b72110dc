package parallel

// DefaultSpanSize is the number of elements per work item when the caller
// does not choose one. 4096 float64 coordinates per input slice keep a
// span's working set within L1 on common CPUs.
const DefaultSpanSize = 4096

// Span is a half-open range [Start, End) of element indexes.
type Span struct {
	// Start is the first index in the span.
	Start int

	// End is one past the last index in the span.
	End int
}

// Len returns the number of elements in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Split divides [0, n) into consecutive spans of at most size elements.
// The last span may be shorter. If size is 0 or negative, DefaultSpanSize
// is used. Split returns nil when n <= 0.
func Split(n, size int) []Span {
	if n <= 0 {
		return nil
	}
	if size <= 0 {
		size = DefaultSpanSize
	}

	count := (n + size - 1) / size
	spans := make([]Span, count)
	for i := range count {
		start := i * size
		spans[i] = Span{Start: start, End: min(start+size, n)}
	}
	return spans
}
