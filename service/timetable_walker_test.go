package service

import (
	"testing"

	"github.com/Aashish23092/prayer-timetable/utils/timetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// aprilPages is a two page timetable starting in April 2025 with a bogus
// 31st of April in the middle.
var aprilPages = [][]string{
	{
		"TAIYABAH PRAYER TIMETABLE",
		"DATE DAY HIJRI FAJR SUNRISE ZUHR ASR ISHA",
		"1 TUE 3 APR 04:50 06:20 13:05 16:40 21:00 05:15 13:30 17:00 20:05 21:20",
		"29 TUE 1 04:10 06:00 13:05 16:55 21:25 05:00 13:30 17:15 20:40 21:45",
	},
	{
		"30 WED 2 “ 05:58 13:05 16:56 21:27 “ 13:30 17:15 20:42 21:47",
		"31 THU 3 04:06 05:56 13:05 16:57 21:29 05:00 13:30 17:15 20:44 21:49",
		"1 THU 3 MAY “ 06:10 13:05 17:00 21:30 04:30 13:30 18:00 20:45 22:00",
		"Please check the notice board for Eid timings",
	},
}

func TestWalkSkipsInvalidRowsAndKeepsOrder(t *testing.T) {
	result := NewWalker().Walk(aprilPages, timetable.Cursor{Month: 3, Year: 2025})

	assert.Equal(t, 5, result.Matched)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Days, 4)

	var dates []string
	for _, d := range result.Days {
		dates = append(dates, d.Date)
	}
	assert.Equal(t, []string{"01 April 2025", "29 April 2025", "30 April 2025", "01 May 2025"}, dates)
	assert.Equal(t, timetable.Cursor{Month: 5, Year: 2025}, result.Cursor)
}

func TestWalkCarriesAcrossPagesAndSkippedRows(t *testing.T) {
	result := NewWalker().Walk(aprilPages, timetable.Cursor{Month: 3, Year: 2025})
	require.Len(t, result.Days, 4)

	apr30 := result.Days[2]
	require.NotNil(t, apr30.BeginningTimes.Fajr)
	assert.Equal(t, "04:10", *apr30.BeginningTimes.Fajr)
	assert.Equal(t, "05:00", *apr30.JamaatTimes.Fajr)

	// the rejected 31st must not leak its 04:06 into May
	may1 := result.Days[3]
	require.NotNil(t, may1.BeginningTimes.Fajr)
	assert.Equal(t, "04:10", *may1.BeginningTimes.Fajr)
	assert.Equal(t, "Thursday", may1.Day)

	for _, d := range result.Days {
		assert.Equal(t, d.BeginningTimes.Maghrib, d.JamaatTimes.Maghrib, d.Date)
	}
}

func TestWalkEmptyDocument(t *testing.T) {
	result := NewWalker().Walk(nil, timetable.Cursor{Month: 0, Year: 2025})

	assert.NotNil(t, result.Days)
	assert.Empty(t, result.Days)
	assert.Zero(t, result.Matched)
}
