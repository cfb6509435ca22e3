package timetable

import "github.com/Aashish23092/prayer-timetable/dto"

// Placeholder is the "same as above" glyph printed in place of a repeated value.
const Placeholder = "“"

// Bucket selects which set of times a column feeds.
type Bucket int

const (
	Beginning Bucket = iota
	Jamaat
)

// Slot names one time field of a DayRecord.
type Slot struct {
	Bucket Bucket
	Prayer string
}

// Column maps a token position of a realigned row to a Slot.
type Column struct {
	Index int
	Slot  Slot
}

// Columns is the positional layout of a timetable row. Index 11 feeds both
// maghrib fields.
var Columns = []Column{
	{Index: 3, Slot: Slot{Beginning, "fajr"}},
	{Index: 4, Slot: Slot{Beginning, "sunrise"}},
	{Index: 5, Slot: Slot{Beginning, "zuhr"}},
	{Index: 6, Slot: Slot{Beginning, "asr"}},
	{Index: 11, Slot: Slot{Beginning, "maghrib"}},
	{Index: 7, Slot: Slot{Beginning, "isha"}},
	{Index: 8, Slot: Slot{Jamaat, "fajr"}},
	{Index: 9, Slot: Slot{Jamaat, "zuhr"}},
	{Index: 10, Slot: Slot{Jamaat, "asr"}},
	{Index: 11, Slot: Slot{Jamaat, "maghrib"}},
	{Index: 12, Slot: Slot{Jamaat, "isha"}},
}

// minTokens is the token count a realigned row needs to cover every column.
const minTokens = 13

// field returns the address of the record field a slot refers to, or nil
// for an unknown slot.
func field(rec *dto.DayRecord, s Slot) **string {
	if s.Bucket == Beginning {
		b := &rec.BeginningTimes
		switch s.Prayer {
		case "fajr":
			return &b.Fajr
		case "sunrise":
			return &b.Sunrise
		case "zuhr":
			return &b.Zuhr
		case "asr":
			return &b.Asr
		case "maghrib":
			return &b.Maghrib
		case "isha":
			return &b.Isha
		}
		return nil
	}

	j := &rec.JamaatTimes
	switch s.Prayer {
	case "fajr":
		return &j.Fajr
	case "zuhr":
		return &j.Zuhr
	case "asr":
		return &j.Asr
	case "maghrib":
		return &j.Maghrib
	case "isha":
		return &j.Isha
	}
	return nil
}

// CarryOver is the last known value per slot. A missing key means absent.
type CarryOver map[Slot]string

// Clone returns an independent copy.
func (c CarryOver) Clone() CarryOver {
	out := make(CarryOver, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// CarryFrom builds the carry-over for the row following rec. The record is
// copied; nothing in the result aliases it.
func CarryFrom(rec dto.DayRecord) CarryOver {
	c := make(CarryOver, len(Columns))
	for _, col := range Columns {
		p := field(&rec, col.Slot)
		if p != nil && *p != nil {
			c[col.Slot] = **p
		}
	}
	return c
}

// resolve applies assign-or-inherit: a real value is used verbatim, the
// placeholder falls back to the carried value for the slot.
func resolve(value string, carry CarryOver, s Slot) *string {
	if value != Placeholder {
		v := value
		return &v
	}
	if prev, ok := carry[s]; ok {
		return &prev
	}
	return nil
}
