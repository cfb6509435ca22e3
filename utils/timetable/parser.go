package timetable

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Aashish23092/prayer-timetable/dto"
)

// DateFormat is the layout of DayRecord.Date.
const DateFormat = "02 January 2006"

// rowLineRegex matches a day number and a weekday abbreviation. \d and \w
// are ASCII only in RE2, so rows numbered or labelled in non-ASCII script
// (e.g. Arabic-Indic digits) are not recognised.
var rowLineRegex = regexp.MustCompile(`^\d{1,2} \w{3}`)

// IsRowLine reports whether a line of page text looks like a timetable row,
// e.g. "12 MON ...".
func IsRowLine(line string) bool {
	return rowLineRegex.MatchString(line)
}

// ParseError describes a row that could not be turned into a DayRecord.
type ParseError struct {
	Line   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// State is what one row parse hands to the next.
type State struct {
	Cursor Cursor
	Carry  CarryOver
}

// NewState returns the state before the first row of a document.
func NewState(start Cursor) State {
	return State{Cursor: start, Carry: CarryOver{}}
}

// Tokenize splits a row on whitespace.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// Realign drops the extra cells the extractor emits after the hijri column
// on the first row of a block (token 0 == "1"): two cells for a 15 token
// row, one otherwise. Other rows are returned unchanged.
func Realign(tokens []string) []string {
	if len(tokens) == 0 || tokens[0] != "1" {
		return tokens
	}
	drop := 1
	if len(tokens) == 15 {
		drop = 2
	}
	if len(tokens) < 3+drop {
		return tokens
	}
	out := make([]string, 0, len(tokens)-drop)
	out = append(out, tokens[:3]...)
	return append(out, tokens[3+drop:]...)
}

// Parse converts one line of page text into a DayRecord.
//
// On success the returned State carries the possibly advanced cursor. For the
// first row of a block the resolved times are also written into the returned
// carry-over, so the rest of the block sees them even if the incoming state
// was stale. On failure a *ParseError is returned together with st unchanged.
func Parse(line string, st State) (rec dto.DayRecord, next State, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec, next = dto.DayRecord{}, st
			err = &ParseError{Line: line, Reason: fmt.Sprintf("unexpected failure: %v", r)}
		}
	}()

	tokens := Realign(Tokenize(line))
	if len(tokens) < minTokens {
		return dto.DayRecord{}, st, &ParseError{
			Line:   line,
			Reason: fmt.Sprintf("expected at least %d columns, got %d", minTokens, len(tokens)),
		}
	}
	firstRow := tokens[0] == "1"

	day, err := strconv.Atoi(tokens[0])
	if err != nil {
		return dto.DayRecord{}, st, &ParseError{Line: line, Reason: "malformed day", Err: err}
	}

	cursor := st.Cursor
	if day == 1 {
		cursor = cursor.Advance()
	}
	if day < 1 || day > 31 {
		return dto.DayRecord{}, st, &ParseError{
			Line:   line,
			Reason: fmt.Sprintf("invalid day %d for month %d in year %d", day, cursor.Month, cursor.Year),
		}
	}

	date, err := cursor.Date(day)
	if err != nil {
		return dto.DayRecord{}, st, &ParseError{Line: line, Reason: "invalid date", Err: err}
	}

	rec = dto.DayRecord{
		Date: date.Format(DateFormat),
		Day:  date.Weekday().String(),
	}
	// the hijri cell is copied as printed, placeholder included; it is never
	// filled from the carry-over
	hijri := tokens[2]
	rec.HijriDate = &hijri

	carry := st.Carry
	if firstRow {
		carry = st.Carry.Clone()
	}
	for _, col := range Columns {
		v := resolve(tokens[col.Index], st.Carry, col.Slot)
		*field(&rec, col.Slot) = v
		if firstRow && v != nil {
			carry[col.Slot] = *v
		}
	}
	rec.JamaatTimes.Maghrib = rec.BeginningTimes.Maghrib

	return rec, State{Cursor: cursor, Carry: carry}, nil
}
