package tree

// Span is a half-open [Start, End) byte range.
type Span struct {
	Start int
	End   int
}

func NewSpan(start, end int) Span {
	return Span{
		Start: start,
		End:   end,
	}
}

// SpanAt builds the span of length n starting at offset.
func SpanAt(offset, n int) Span {
	return Span{
		Start: offset,
		End:   offset + n,
	}
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) IsEmpty() bool {
	return s.Len() == 0
}

// Join spans from the start of s to the end of o.
func (s Span) Join(o Span) Span {
	return Span{
		Start: s.Start,
		End:   o.End,
	}
}
