package service

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Aashish23092/prayer-timetable/dto"
	"github.com/Aashish23092/prayer-timetable/utils/timetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDays(t *testing.T) []dto.DayRecord {
	t.Helper()
	rec, _, err := timetable.Parse("2 THU رجب 05:11 07:55 12:16 14:10 17:45 06:00 12:45 14:30 16:08 18:15",
		timetable.NewState(timetable.Cursor{Month: 1, Year: 2025}))
	require.NoError(t, err)
	return []dto.DayRecord{rec}
}

func TestEncodeJSONLayout(t *testing.T) {
	rec, _, err := timetable.Parse("2 THU “ 05:11 07:55 12:16 14:10 17:45 “ 12:45 14:30 16:08 18:15",
		timetable.NewState(timetable.Cursor{Month: 1, Year: 2025}))
	require.NoError(t, err)

	out, err := EncodeJSON([]dto.DayRecord{rec})
	require.NoError(t, err)

	expected := `[
    {
        "date": "02 January 2025",
        "day": "Thursday",
        "hijri_date": "“",
        "beginning_times": {
            "fajr": "05:11",
            "sunrise": "07:55",
            "zuhr": "12:16",
            "asr": "14:10",
            "maghrib": "16:08",
            "isha": "17:45"
        },
        "jamat_times": {
            "fajr": null,
            "zuhr": "12:45",
            "asr": "14:30",
            "maghrib": "16:08",
            "isha": "18:15"
        }
    }
]`
	assert.Equal(t, expected, string(out))
}

func TestEncodeJSONKeepsNonASCII(t *testing.T) {
	out, err := EncodeJSON(sampleDays(t))
	require.NoError(t, err)

	assert.Contains(t, string(out), `"hijri_date": "رجب"`)
	assert.NotContains(t, string(out), `\u`)
}

func TestEncodeJSONEmpty(t *testing.T) {
	out, err := EncodeJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
	assert.NoError(t, ValidateTimetableJSON(out))
}

func TestEncodeCSV(t *testing.T) {
	out, err := Encode(FormatCSV, sampleDays(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "date,day,hijri_date,fajr_begins,sunrise,zuhr_begins,asr_begins,maghrib_begins,isha_begins,"+
		"fajr_jamaat,zuhr_jamaat,asr_jamaat,maghrib_jamaat,isha_jamaat", lines[0])
	assert.Equal(t, "02 January 2025,Thursday,رجب,05:11,07:55,12:16,14:10,16:08,17:45,06:00,12:45,14:30,16:08,18:15", lines[1])
}

func TestEncodeXLSX(t *testing.T) {
	out, err := Encode(FormatXLSX, sampleDays(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Timetable", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	date, err := f.GetCellValue("Timetable", "A2")
	require.NoError(t, err)
	assert.Equal(t, "02 January 2025", date)

	maghrib, err := f.GetCellValue("Timetable", "M2")
	require.NoError(t, err)
	assert.Equal(t, "16:08", maghrib)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, WriteAtomic(path, []byte("one")))
	require.NoError(t, WriteAtomic(path, []byte("two")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")

	assert.Error(t, WriteAtomic(filepath.Join(dir, "missing", "out.json"), []byte("x")))
}

func TestValidateTimetableJSONRejectsBadOutput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not an array", `{"date": "01 January 2025"}`},
		{"missing jamat_times", `[{"date": "01 January 2025", "day": "Wednesday", "hijri_date": null, "beginning_times": {"fajr": null, "sunrise": null, "zuhr": null, "asr": null, "maghrib": null, "isha": null}}]`},
		{"bad weekday", `[{"date": "01 January 2025", "day": "WED", "hijri_date": null, "beginning_times": {"fajr": null, "sunrise": null, "zuhr": null, "asr": null, "maghrib": null, "isha": null}, "jamat_times": {"fajr": null, "zuhr": null, "asr": null, "maghrib": null, "isha": null}}]`},
		{"numeric time", `[{"date": "01 January 2025", "day": "Wednesday", "hijri_date": null, "beginning_times": {"fajr": 510, "sunrise": null, "zuhr": null, "asr": null, "maghrib": null, "isha": null}, "jamat_times": {"fajr": null, "zuhr": null, "asr": null, "maghrib": null, "isha": null}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimetableJSON([]byte(tt.data))
			assert.ErrorIs(t, err, dto.ErrSchemaInvalid)
		})
	}

	assert.Error(t, ValidateTimetableJSON([]byte("not json")))
}
