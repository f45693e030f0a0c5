package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"hermes/internal/models"

	"github.com/jszwec/csvutil"
)

// Separator is the field delimiter of every source file.
const Separator = ';'

var (
	// ErrFileAccess marks a source file that is missing or unreadable.
	ErrFileAccess = errors.New("source file unavailable")
	// ErrParse marks a malformed header or row.
	ErrParse = errors.New("malformed source file")
)

type Parser struct {
	filename string
	encoding string
}

type Option func(*Parser)

// WithEncoding sets the source encoding of the file (default utf-8).
func WithEncoding(name string) Option {
	return func(p *Parser) {
		p.encoding = name
	}
}

func NewParser(filename string, opts ...Option) *Parser {
	p := &Parser{filename: filename, encoding: DefaultEncoding}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) Filename() string {
	return p.filename
}

// ParseTransfers reads the whole file as transfer records, in file order.
func (p *Parser) ParseTransfers() ([]models.TransferRecord, error) {
	return parseFile[models.TransferRecord](p, NormalizeHeader)
}

// ParsePhaseouts reads the whole file as phase-out records, in file order.
func (p *Parser) ParsePhaseouts() ([]models.PhaseoutRecord, error) {
	return parseFile[models.PhaseoutRecord](p, PhaseoutHeader)
}

// ReadTransfers decodes transfer records from r.
func ReadTransfers(r io.Reader, encoding string) ([]models.TransferRecord, error) {
	return read[models.TransferRecord](r, encoding, NormalizeHeader)
}

// ReadPhaseouts decodes phase-out records from r.
func ReadPhaseouts(r io.Reader, encoding string) ([]models.PhaseoutRecord, error) {
	return read[models.PhaseoutRecord](r, encoding, PhaseoutHeader)
}

// MapRow maps one row onto a record. headers must already be canonical.
// Values beyond the header are dropped and missing values stay empty.
func MapRow[T any](headers, values []string) (T, error) {
	var record T
	if len(headers) == 0 {
		return record, nil
	}

	rows := &sliceReader{rows: [][]string{values}}
	decoder, err := csvutil.NewDecoder(&fixedWidthReader{r: rows, width: len(headers)}, uniqueHeaders(headers)...)
	if err != nil {
		return record, fmt.Errorf("%w: failed to create decoder: %w", ErrParse, err)
	}
	if err := decoder.Decode(&record); err != nil {
		return record, fmt.Errorf("%w: failed to map row: %w", ErrParse, err)
	}
	return record, nil
}

func parseFile[T any](p *Parser, mapHeader func(string) string) ([]T, error) {
	file, err := os.Open(p.filename)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", ErrFileAccess, p.filename, err)
	}
	defer file.Close()

	return read[T](file, p.encoding, mapHeader)
}

func read[T any](r io.Reader, encoding string, mapHeader func(string) string) ([]T, error) {
	text, err := textReader(r, encoding)
	if err != nil {
		return nil, err
	}

	quotes := newQuoteTracker(text)
	reader := csv.NewReader(quotes)
	reader.Comma = Separator
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	raw, err := reader.Read()
	if err == io.EOF {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", ErrParse, err)
	}

	headers := mapHeaders(raw, mapHeader)
	decoder, err := csvutil.NewDecoder(&fixedWidthReader{r: reader, width: len(headers)}, headers...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create decoder: %w", ErrParse, err)
	}

	records := []T{}
	for {
		var record T
		if err := decoder.Decode(&record); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%w: failed to read row %d: %w", ErrParse, len(records)+1, err)
		}
		records = append(records, record)
	}

	if line, open := quotes.unterminated(); open {
		return nil, fmt.Errorf("%w: quoted field opened on line %d is never closed", ErrParse, line)
	}
	return records, nil
}

type rowReader interface {
	Read() ([]string, error)
}

// fixedWidthReader pads or truncates every row to the header width.
type fixedWidthReader struct {
	r     rowReader
	width int
}

func (f *fixedWidthReader) Read() ([]string, error) {
	row, err := f.r.Read()
	if err != nil {
		return nil, err
	}

	switch {
	case len(row) < f.width:
		row = append(row, make([]string, f.width-len(row))...)
	case len(row) > f.width:
		row = row[:f.width]
	}
	return row, nil
}

type sliceReader struct {
	rows [][]string
}

func (s *sliceReader) Read() ([]string, error) {
	if len(s.rows) == 0 {
		return nil, io.EOF
	}
	row := s.rows[0]
	s.rows = s.rows[1:]
	return row, nil
}
