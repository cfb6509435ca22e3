package service

import (
	"github.com/Aashish23092/prayer-timetable/dto"
	"github.com/Aashish23092/prayer-timetable/utils/timetable"
	"github.com/rs/zerolog/log"
)

// WalkResult is the outcome of one pass over a document.
type WalkResult struct {
	Days    []dto.DayRecord
	Matched int
	Skipped int
	Cursor  timetable.Cursor
}

// Walker feeds date-like lines to the row parser in document order,
// threading the cursor and carry-over from one row to the next.
type Walker struct{}

func NewWalker() *Walker {
	return &Walker{}
}

// Walk parses every row line of every page. Rows that fail to parse are
// logged and skipped; they do not disturb the carry-over.
func (w *Walker) Walk(pages [][]string, start timetable.Cursor) WalkResult {
	result := WalkResult{Days: make([]dto.DayRecord, 0)}
	state := timetable.NewState(start)

	for pageIndex, lines := range pages {
		for _, line := range lines {
			if !timetable.IsRowLine(line) {
				continue
			}
			result.Matched++

			rec, next, err := timetable.Parse(line, state)
			if err != nil {
				result.Skipped++
				log.Warn().
					Err(err).
					Int("page", pageIndex+1).
					Str("line", line).
					Msg("[timetable] skipping unparseable row")
				continue
			}

			result.Days = append(result.Days, rec)
			state = timetable.State{Cursor: next.Cursor, Carry: timetable.CarryFrom(rec)}
		}
	}

	result.Cursor = state.Cursor
	return result
}
