package solarsystem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Loader errors. Each is returned wrapped in a *ParseError carrying the file
// name and line number of the offending line.
var (
	// ErrMalformedHeader means a line carried the series-header marker but
	// did not have the expected structure.
	ErrMalformedHeader = errors.New("malformed series header")
	// ErrDataBeforeHeader means a data line appeared before the first series
	// header. Well-formed VSOP87 files always open with a header; rather
	// than silently accumulating into the (X, *T**0) bucket we refuse the
	// whole file.
	ErrDataBeforeHeader = errors.New("data line before first series header")
	// ErrDegreeOutOfRange means a header declared a power of T outside
	// *T**0 through *T**5.
	ErrDegreeOutOfRange = errors.New("series degree out of range")
	// ErrNumericFormat means an amplitude, phase or frequency token did not
	// parse as a float.
	ErrNumericFormat = errors.New("invalid numeric field")
)

// ParseError reports a loader failure with enough context to find the bad
// line in the series data source.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// parserState tracks where the line scanner is: before the first header, or
// accumulating terms into the bucket the latest header selected.
type parserState uint8

const (
	awaitingHeader parserState = iota
	accumulatingTerms
)

// Header lines look like:
//
//	VSOP87 VERSION C4    MERCURY     VARIABLE 1 (X)       *T**0    1628 TERMS ...
//
// and are recognized by the 'V' of "VSOP87" at byte offset 1. The 1-based
// variable number is token 5, the degree is the digit at offset 4 of token 7
// ("*T**0"), and token 8 is the number of terms in the bucket.
const (
	headerMarkerOffset = 1
	headerMarker       = 'V'
	headerMinTokens    = 9
	variableToken      = 5
	degreeToken        = 7
	termCountToken     = 8
	degreeOffset       = 4 // index of the digit in "*T**0"
)

// LoadTable parses the VSOP87 series file at path. The table name is the
// file's base name.
func LoadTable(path string) (*SeriesTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading series table: %w", err)
	}
	defer f.Close()
	return ParseTable(filepath.Base(path), f)
}

// ParseTable parses one planet's VSOP87 coefficient series from r. The full
// table is built in memory in one pass; a table is only returned if every
// line parsed, never partially.
func ParseTable(name string, r io.Reader) (*SeriesTable, error) {
	table := &SeriesTable{Name: name}
	state := awaitingHeader
	variable, degree := 0, 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(line) > headerMarkerOffset && line[headerMarkerOffset] == headerMarker {
			v, d, count, err := parseHeader(line)
			if err != nil {
				return nil, &ParseError{File: name, Line: lineNo, Err: err}
			}
			variable, degree = v, d
			if table.terms[variable][degree] == nil && count > 0 {
				table.terms[variable][degree] = make([]Term, 0, count)
			}
			state = accumulatingTerms
			continue
		}
		if state == awaitingHeader {
			return nil, &ParseError{File: name, Line: lineNo, Err: ErrDataBeforeHeader}
		}
		term, err := parseTerm(line)
		if err != nil {
			return nil, &ParseError{File: name, Line: lineNo, Err: err}
		}
		table.terms[variable][degree] = append(table.terms[variable][degree], term)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading series table %s: %w", name, err)
	}
	return table, nil
}

// parseHeader extracts the 0-based variable index, the degree and the term
// count from a series header line.
func parseHeader(line string) (variable, degree, count int, err error) {
	fields := strings.Fields(line)
	if len(fields) < headerMinTokens {
		return 0, 0, 0, fmt.Errorf("%w: %d tokens", ErrMalformedHeader, len(fields))
	}
	v, err := strconv.Atoi(fields[variableToken])
	if err != nil || v < 1 || v > numVariables {
		return 0, 0, 0, fmt.Errorf("%w: variable %q", ErrMalformedHeader, fields[variableToken])
	}
	powTok := fields[degreeToken]
	if len(powTok) <= degreeOffset || !strings.HasPrefix(powTok, "*T**") {
		return 0, 0, 0, fmt.Errorf("%w: power token %q", ErrMalformedHeader, powTok)
	}
	d := int(powTok[degreeOffset] - '0')
	if d < 0 || d > 9 {
		return 0, 0, 0, fmt.Errorf("%w: power token %q", ErrMalformedHeader, powTok)
	}
	if d >= numDegrees {
		return 0, 0, 0, fmt.Errorf("%w: *T**%d", ErrDegreeOutOfRange, d)
	}
	// The term count is a capacity hint only; a header with an unreadable
	// count still selects its bucket.
	count, _ = strconv.Atoi(fields[termCountToken])
	return v - 1, d, count, nil
}

// parseTerm reads the amplitude, phase and frequency from the last three
// whitespace-delimited tokens of a data line.
func parseTerm(line string) (Term, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Term{}, fmt.Errorf("%w: %d tokens, need at least 3", ErrNumericFormat, len(fields))
	}
	var vals [3]float64
	for i, tok := range fields[len(fields)-3:] {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Term{}, fmt.Errorf("%w: %q", ErrNumericFormat, tok)
		}
		vals[i] = v
	}
	return Term{A: vals[0], B: vals[1], C: vals[2]}, nil
}
