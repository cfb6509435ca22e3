package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Aashish23092/prayer-timetable/dto"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// wordGap is the horizontal distance, in points, above which two glyphs on
// a row are treated as separate tokens.
const wordGap = 3.0

type PDFProcessor interface {
	ExtractPages(pdfData []byte, password string) ([][]string, error)
	ExtractImages(pdfData []byte, password string) ([]image.Image, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// ExtractPages returns the text of every page as rows, top to bottom, with
// the cells of each row joined by single spaces.
func (p *pdfProcessor) ExtractPages(pdfData []byte, password string) ([][]string, error) {
	data, err := prepare(pdfData, password)
	if err != nil {
		return nil, err
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInvalidPDF, err)
	}

	totalPage := r.NumPage()
	pages := make([][]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("failed to read text of page %d: %w", pageIndex, err)
		}

		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			if line := rowText(row.Content); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, lines)
	}
	return pages, nil
}

// rowText joins the glyphs of one row left to right, inserting a space
// wherever the gap to the previous glyph exceeds wordGap.
func rowText(words pdf.TextHorizontal) string {
	sorted := make(pdf.TextHorizontal, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var b strings.Builder
	var prevEnd float64
	for i, w := range sorted {
		if i > 0 && w.X-prevEnd > wordGap {
			b.WriteByte(' ')
		}
		b.WriteString(w.S)
		prevEnd = w.X + w.W
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// prepare decrypts password protected documents with pdfcpu and rejects
// input that is not a PDF at all.
func prepare(pdfData []byte, password string) ([]byte, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password

		var out bytes.Buffer
		if err := api.Decrypt(bytes.NewReader(pdfData), &out, conf); err != nil {
			return nil, fmt.Errorf("failed to decrypt pdf: %w", err)
		}
		pdfData = out.Bytes()
	}

	if err := api.Validate(bytes.NewReader(pdfData), conf); err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInvalidPDF, err)
	}
	return pdfData, nil
}

func (p *pdfProcessor) ExtractImages(pdfData []byte, password string) ([]image.Image, error) {
	// Create a temporary directory for extraction
	tempDir, err := os.MkdirTemp("", "timetable_images")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	tempFile, err := os.CreateTemp("", "timetable-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(pdfData); err != nil {
		tempFile.Close()
		return nil, fmt.Errorf("failed to write pdf data: %w", err)
	}
	tempFile.Close()

	conf := model.NewDefaultConfiguration()
	if password != "" {
		conf.UserPW = password
	}

	// nil selects every page
	if err := api.ExtractImagesFile(tempFile.Name(), tempDir, nil, conf); err != nil {
		return nil, fmt.Errorf("failed to extract images: %w", err)
	}

	files, err := os.ReadDir(tempDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read temp dir: %w", err)
	}

	var images []image.Image
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		imgFile, err := os.Open(filepath.Join(tempDir, file.Name()))
		if err != nil {
			continue
		}

		img, _, err := image.Decode(imgFile)
		imgFile.Close()
		if err != nil {
			continue
		}
		images = append(images, img)
	}

	return images, nil
}
