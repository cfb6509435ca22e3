package main

import (
	"github.com/Aashish23092/prayer-timetable/client"
	"github.com/Aashish23092/prayer-timetable/config"
	"github.com/Aashish23092/prayer-timetable/handler"
	"github.com/Aashish23092/prayer-timetable/service"
	"github.com/rs/zerolog/log"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()
	config.SetupLogging(cfg)

	// Scanned timetables fall back to Tesseract when enabled
	var ocr service.OCRClient
	if cfg.OCREnabled {
		tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguage)
		defer tesseractClient.Close()
		ocr = tesseractClient
		log.Info().Str("tessdata", cfg.TesseractDataPath).Msg("OCR fallback enabled")
	}

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	timetableService := service.NewTimetableService(pdfProcessor, ocr)

	// Initialize handler layer
	timetableHandler := handler.NewTimetableHandler(timetableService, cfg.DefaultYear, cfg.MaxFileSize)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Prayer Timetable Extractor",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		timetable := api.Group("/timetable")
		{
			timetable.POST("/extract", timetableHandler.ExtractTimetable)
		}
	}

	// Start server
	log.Info().Str("port", cfg.ServerPort).Msg("Starting Prayer Timetable Extractor")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
