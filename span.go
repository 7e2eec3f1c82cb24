package glrnlp

import "fmt"

// Span captures an input token run: a start position and the position just
// behind the end. Every terminal and nonterminal occurrence in a parse
// forest is tagged with the span of input tokens it covers.
type Span [2]int

// From returns the start position of a span.
func (s Span) From() int { return s[0] }

// To returns the position just behind the end of a span.
func (s Span) To() int { return s[1] }

// Len returns the number of tokens covered by a span.
func (s Span) Len() int { return s[1] - s[0] }

// IsNull returns true for the zero span.
func (s Span) IsNull() bool { return s == Span{} }

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
