package csv

import "io"

type quoteState int

const (
	fieldStart quoteState = iota
	unquoted
	quoted
	quotedSawQuote
)

// quoteTracker follows the quoting of the bytes read through it, using the
// same lenient rules as the record reader: a quote that is neither doubled
// nor followed by a separator or line break is kept as a literal. A field
// still quoted at EOF was never closed.
type quoteTracker struct {
	r         io.Reader
	state     quoteState
	line      int
	openedAt  int
	separator byte
}

func newQuoteTracker(r io.Reader) *quoteTracker {
	return &quoteTracker{r: r, line: 1, separator: Separator}
}

func (q *quoteTracker) Read(p []byte) (int, error) {
	n, err := q.r.Read(p)
	for _, b := range p[:n] {
		q.step(b)
	}
	return n, err
}

func (q *quoteTracker) step(b byte) {
	switch q.state {
	case fieldStart:
		switch b {
		case '"':
			q.state = quoted
			q.openedAt = q.line
		case q.separator, '\n':
		default:
			q.state = unquoted
		}
	case unquoted:
		if b == q.separator || b == '\n' {
			q.state = fieldStart
		}
	case quoted:
		if b == '"' {
			q.state = quotedSawQuote
		}
	case quotedSawQuote:
		switch b {
		case '"':
			q.state = quoted
		case q.separator, '\n':
			q.state = fieldStart
		case '\r':
			q.state = unquoted
		default:
			q.state = quoted
		}
	}
	if b == '\n' {
		q.line++
	}
}

// unterminated reports the line of a quoted field left open at EOF.
func (q *quoteTracker) unterminated() (int, bool) {
	return q.openedAt, q.state == quoted
}
