package dto

import "errors"

// Custom errors
var (
	ErrNotPDF        = errors.New("invalid file type. Supported: PDF")
	ErrInvalidPDF    = errors.New("document is not a readable PDF")
	ErrSchemaInvalid = errors.New("timetable output does not match schema")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// TimetableResponse is the final response structure of an extraction
type TimetableResponse struct {
	Days        []DayRecord `json:"days"`
	RowsMatched int         `json:"rows_matched"`
	RowsSkipped int         `json:"rows_skipped"`
	Source      string      `json:"source"` // "text" or "ocr"
	ProcessedAt string      `json:"processed_at"`
}
