// Command convert extracts the prayer timetable from a PDF and writes it
// to a single output file.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/Aashish23092/prayer-timetable/client"
	"github.com/Aashish23092/prayer-timetable/config"
	"github.com/Aashish23092/prayer-timetable/dto"
	"github.com/Aashish23092/prayer-timetable/service"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run does the conversion and returns the process exit code, so deferred
// cleanup happens before main exits.
func run(args []string) int {
	cfg := config.LoadConfig()

	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	in := fs.String("in", "timetable.pdf", "timetable PDF to read")
	out := fs.String("out", "structured_output.json", "output file")
	month := fs.Int("month", 0, "month before the first row; the first day 1 row advances it")
	year := fs.Int("year", cfg.DefaultYear, "year of the timetable")
	format := fs.String("format", "json", "output format: json, csv or xlsx")
	password := fs.String("password", "", "password for encrypted PDFs")
	ocr := fs.Bool("ocr", cfg.OCREnabled, "OCR scanned pages when the PDF has no text rows")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	config.SetupLogging(cfg)

	f, err := service.ParseFormat(*format)
	if err != nil {
		log.Error().Err(err).Msg("invalid -format")
		return 2
	}

	var ocrClient service.OCRClient
	if *ocr {
		tc := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguage)
		defer tc.Close()
		ocrClient = tc
	}

	svc := service.NewTimetableService(service.NewPDFProcessor(), ocrClient)
	opts := dto.ExtractOptions{StartMonth: *month, StartYear: *year, Password: *password}

	resp, err := svc.ConvertFile(context.Background(), *in, *out, f, opts)
	if err != nil {
		log.Error().Err(err).Str("in", *in).Msg("An error occurred")
		return 1
	}

	log.Info().
		Int("days", len(resp.Days)).
		Int("skipped", resp.RowsSkipped).
		Msgf("Data successfully structured and saved to %s", *out)
	return 0
}
