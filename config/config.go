package config

import (
	"os"
	"strconv"

	// Load environment variables from .env files when present.
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	OCREnabled        bool
	OCRLanguage       string
	LogLevel          string
	LogFormat         string
	DefaultYear       int
	MaxFileSize       int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata/"
	}

	ocrLanguage := os.Getenv("OCR_LANGUAGE")
	if ocrLanguage == "" {
		ocrLanguage = "eng"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		ServerPort:        serverPort,
		TesseractDataPath: tesseractDataPath,
		OCREnabled:        os.Getenv("OCR_ENABLED") == "true",
		OCRLanguage:       ocrLanguage,
		LogLevel:          logLevel,
		LogFormat:         os.Getenv("LOG_FORMAT"),
		DefaultYear:       envInt("TIMETABLE_DEFAULT_YEAR", 2025),
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
	}
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
