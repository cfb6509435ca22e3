package dto

// BeginningTimes holds the earliest permissible time of each prayer.
// Field order is the order keys appear in the JSON output.
type BeginningTimes struct {
	Fajr    *string `json:"fajr"`
	Sunrise *string `json:"sunrise"`
	Zuhr    *string `json:"zuhr"`
	Asr     *string `json:"asr"`
	Maghrib *string `json:"maghrib"`
	Isha    *string `json:"isha"`
}

// JamaatTimes holds the congregation time of each prayer.
type JamaatTimes struct {
	Fajr    *string `json:"fajr"`
	Zuhr    *string `json:"zuhr"`
	Asr     *string `json:"asr"`
	Maghrib *string `json:"maghrib"`
	Isha    *string `json:"isha"`
}

// DayRecord is one parsed row of the timetable.
type DayRecord struct {
	Date           string         `json:"date"` // "02 January 2006"
	Day            string         `json:"day"`
	HijriDate      *string        `json:"hijri_date"`
	BeginningTimes BeginningTimes `json:"beginning_times"`
	JamaatTimes    JamaatTimes    `json:"jamat_times"`
}

// DayRow is the flattened form of a DayRecord used by the CSV and XLSX exports.
type DayRow struct {
	Date          string `csv:"date"`
	Day           string `csv:"day"`
	HijriDate     string `csv:"hijri_date"`
	FajrBegins    string `csv:"fajr_begins"`
	Sunrise       string `csv:"sunrise"`
	ZuhrBegins    string `csv:"zuhr_begins"`
	AsrBegins     string `csv:"asr_begins"`
	MaghribBegins string `csv:"maghrib_begins"`
	IshaBegins    string `csv:"isha_begins"`
	FajrJamaat    string `csv:"fajr_jamaat"`
	ZuhrJamaat    string `csv:"zuhr_jamaat"`
	AsrJamaat     string `csv:"asr_jamaat"`
	MaghribJamaat string `csv:"maghrib_jamaat"`
	IshaJamaat    string `csv:"isha_jamaat"`
}

// Row flattens the record, rendering absent values as empty strings.
func (r DayRecord) Row() DayRow {
	return DayRow{
		Date:          r.Date,
		Day:           r.Day,
		HijriDate:     deref(r.HijriDate),
		FajrBegins:    deref(r.BeginningTimes.Fajr),
		Sunrise:       deref(r.BeginningTimes.Sunrise),
		ZuhrBegins:    deref(r.BeginningTimes.Zuhr),
		AsrBegins:     deref(r.BeginningTimes.Asr),
		MaghribBegins: deref(r.BeginningTimes.Maghrib),
		IshaBegins:    deref(r.BeginningTimes.Isha),
		FajrJamaat:    deref(r.JamaatTimes.Fajr),
		ZuhrJamaat:    deref(r.JamaatTimes.Zuhr),
		AsrJamaat:     deref(r.JamaatTimes.Asr),
		MaghribJamaat: deref(r.JamaatTimes.Maghrib),
		IshaJamaat:    deref(r.JamaatTimes.Isha),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
