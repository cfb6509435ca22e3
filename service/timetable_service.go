package service

import (
	"context"
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	"github.com/Aashish23092/prayer-timetable/dto"
	"github.com/Aashish23092/prayer-timetable/utils/timetable"
	"github.com/rs/zerolog/log"
)

const (
	SourceText = "text"
	SourceOCR  = "ocr"
)

// OCRClient reads text out of a rendered page image.
type OCRClient interface {
	ExtractTextFromImage(img image.Image) (string, error)
}

type TimetableService struct {
	pdfProcessor PDFProcessor
	ocr          OCRClient
	walker       *Walker
}

// NewTimetableService wires the extraction pipeline. ocr may be nil, which
// disables the scanned document fallback.
func NewTimetableService(pdfProcessor PDFProcessor, ocr OCRClient) *TimetableService {
	return &TimetableService{
		pdfProcessor: pdfProcessor,
		ocr:          ocr,
		walker:       NewWalker(),
	}
}

// Extract turns a timetable PDF into day records.
func (s *TimetableService) Extract(ctx context.Context, pdfData []byte, opts dto.ExtractOptions) (*dto.TimetableResponse, error) {
	pages, err := s.pdfProcessor.ExtractPages(pdfData, opts.Password)
	if err != nil {
		return nil, fmt.Errorf("pdf text extraction failed: %w", err)
	}

	source := SourceText
	if !hasRowLines(pages) && s.ocr != nil {
		log.Info().Int("pages", len(pages)).Msg("[timetable] no rows in text layer, attempting image-based OCR")

		ocrPages, err := s.ocrPages(ctx, pdfData, opts.Password)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("[timetable] OCR fallback failed")
		case hasRowLines(ocrPages):
			pages = ocrPages
			source = SourceOCR
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := s.walker.Walk(pages, timetable.Cursor{Month: opts.StartMonth, Year: opts.StartYear})
	log.Info().
		Str("source", source).
		Int("days", len(result.Days)).
		Int("skipped", result.Skipped).
		Msg("[timetable] extraction finished")

	return &dto.TimetableResponse{
		Days:        result.Days,
		RowsMatched: result.Matched,
		RowsSkipped: result.Skipped,
		Source:      source,
		ProcessedAt: time.Now().Format(time.RFC3339),
	}, nil
}

// ConvertFile reads the PDF at inPath and writes its timetable to outPath.
// Any error leaves outPath untouched.
func (s *TimetableService) ConvertFile(ctx context.Context, inPath, outPath string, format Format, opts dto.ExtractOptions) (*dto.TimetableResponse, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	resp, err := s.Extract(ctx, data, opts)
	if err != nil {
		return nil, err
	}

	out, err := Encode(format, resp.Days)
	if err != nil {
		return nil, err
	}
	if err := WriteAtomic(outPath, out); err != nil {
		return nil, err
	}

	log.Info().Str("out", outPath).Str("format", string(format)).Msg("[timetable] output written")
	return resp, nil
}

// ocrPages renders each page image through the OCR client, one page per image.
func (s *TimetableService) ocrPages(ctx context.Context, pdfData []byte, password string) ([][]string, error) {
	images, err := s.pdfProcessor.ExtractImages(pdfData, password)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("document has no page images")
	}

	pages := make([][]string, 0, len(images))
	for i, img := range images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := s.ocr.ExtractTextFromImage(img)
		if err != nil {
			log.Warn().Err(err).Int("image", i+1).Msg("[timetable] OCR failed for page image")
			continue
		}
		pages = append(pages, splitLines(text))
	}
	return pages, nil
}

// splitLines breaks OCR output into rows with single spaced cells.
func splitLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.Join(strings.Fields(l), " "); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func hasRowLines(pages [][]string) bool {
	for _, lines := range pages {
		for _, l := range lines {
			if timetable.IsRowLine(l) {
				return true
			}
		}
	}
	return false
}
