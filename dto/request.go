package dto

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
)

// ExtractOptions are the per-invocation parameters of an extraction run.
// StartMonth is deliberately not range checked; the first "1" row advances it.
type ExtractOptions struct {
	StartMonth int
	StartYear  int
	Password   string
}

// TimetableExtractRequest represents the multipart request for timetable extraction
type TimetableExtractRequest struct {
	File       *multipart.FileHeader `form:"file" binding:"required"`
	StartMonth string                `form:"start_month"`
	StartYear  string                `form:"start_year"`
	Password   string                `form:"password"`
}

// Validate checks the upload and converts the form values into ExtractOptions
func (r *TimetableExtractRequest) Validate(defaultYear int) (ExtractOptions, error) {
	opts := ExtractOptions{StartYear: defaultYear, Password: r.Password}

	if r.File == nil {
		return opts, errors.New("file is required")
	}
	if !strings.HasSuffix(strings.ToLower(r.File.Filename), ".pdf") {
		return opts, ErrNotPDF
	}

	if r.StartMonth != "" {
		m, err := strconv.Atoi(r.StartMonth)
		if err != nil {
			return opts, fmt.Errorf("invalid start_month %q: %w", r.StartMonth, err)
		}
		opts.StartMonth = m
	}
	if r.StartYear != "" {
		y, err := strconv.Atoi(r.StartYear)
		if err != nil {
			return opts, fmt.Errorf("invalid start_year %q: %w", r.StartYear, err)
		}
		opts.StartYear = y
	}

	return opts, nil
}
