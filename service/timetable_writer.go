package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Aashish23092/prayer-timetable/dto"
	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a user supplied name onto a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format %q", s)
}

// Encode renders days in the given format. JSON output is checked against
// the timetable schema before it is returned.
func Encode(format Format, days []dto.DayRecord) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := EncodeJSON(days)
		if err != nil {
			return nil, err
		}
		if err := ValidateTimetableJSON(data); err != nil {
			return nil, err
		}
		return data, nil
	case FormatCSV:
		return EncodeCSV(days)
	case FormatXLSX:
		return EncodeXLSX(days)
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

// EncodeJSON writes days as an indented JSON array. Non-ASCII text such as
// hijri month names is written as-is, and there is no trailing newline.
func EncodeJSON(days []dto.DayRecord) ([]byte, error) {
	if days == nil {
		days = []dto.DayRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(days); err != nil {
		return nil, fmt.Errorf("json encode: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func flatten(days []dto.DayRecord) []dto.DayRow {
	rows := make([]dto.DayRow, 0, len(days))
	for _, d := range days {
		rows = append(rows, d.Row())
	}
	return rows
}

// EncodeCSV writes one row per day with a header line.
func EncodeCSV(days []dto.DayRecord) ([]byte, error) {
	rows := flatten(days)
	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("csv encode: %w", err)
	}
	return out, nil
}

var xlsxHeaders = []string{
	"Date", "Day", "Hijri",
	"Fajr", "Sunrise", "Zuhr", "Asr", "Maghrib", "Isha",
	"Fajr Jamaat", "Zuhr Jamaat", "Asr Jamaat", "Maghrib Jamaat", "Isha Jamaat",
}

// EncodeXLSX writes a workbook with a single "Timetable" sheet.
func EncodeXLSX(days []dto.DayRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Timetable"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range xlsxHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range flatten(days) {
		values := []string{
			r.Date, r.Day, r.HijriDate,
			r.FajrBegins, r.Sunrise, r.ZuhrBegins, r.AsrBegins, r.MaghribBegins, r.IshaBegins,
			r.FajrJamaat, r.ZuhrJamaat, r.AsrJamaat, r.MaghribJamaat, r.IshaJamaat,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 18) // date
	_ = f.SetColWidth(sheet, "B", "B", 12) // weekday

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteAtomic writes data to a temporary file next to path and renames it
// into place, so path ends up either complete or untouched.
func WriteAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to set output permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
