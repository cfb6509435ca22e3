package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/Aashish23092/prayer-timetable/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// TimetableExtractor is the part of the service layer the handler needs.
type TimetableExtractor interface {
	Extract(ctx context.Context, pdfData []byte, opts dto.ExtractOptions) (*dto.TimetableResponse, error)
}

// multipartOverhead is the room left above maxFileSize for the form fields
// and part headers of a multipart upload.
const multipartOverhead int64 = 1 << 20

type TimetableHandler struct {
	extractor   TimetableExtractor
	defaultYear int
	maxFileSize int64
}

func NewTimetableHandler(extractor TimetableExtractor, defaultYear int, maxFileSize int64) *TimetableHandler {
	return &TimetableHandler{
		extractor:   extractor,
		defaultYear: defaultYear,
		maxFileSize: maxFileSize,
	}
}

// ExtractTimetable handles the POST /timetable/extract endpoint
func (h *TimetableHandler) ExtractTimetable(c *gin.Context) {
	requestID := uuid.NewString()
	logger := log.With().Str("request_id", requestID).Logger()
	c.Header("X-Request-ID", requestID)

	if h.maxFileSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxFileSize+multipartOverhead)
	}

	var request dto.TimetableExtractRequest
	if err := c.ShouldBind(&request); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.sendError(c, requestID, http.StatusRequestEntityTooLarge, "file too large", err)
			return
		}
		h.sendError(c, requestID, http.StatusBadRequest, "file is required", err)
		return
	}

	opts, err := request.Validate(h.defaultYear)
	if err != nil {
		h.sendError(c, requestID, http.StatusBadRequest, err.Error(), err)
		return
	}

	if h.maxFileSize > 0 && request.File.Size > h.maxFileSize {
		h.sendError(c, requestID, http.StatusRequestEntityTooLarge, "file too large", nil)
		return
	}

	f, err := request.File.Open()
	if err != nil {
		h.sendError(c, requestID, http.StatusBadRequest, "failed to open file", err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.sendError(c, requestID, http.StatusBadRequest, "failed to read file", err)
		return
	}

	logger.Info().
		Str("filename", request.File.Filename).
		Int("start_month", opts.StartMonth).
		Int("start_year", opts.StartYear).
		Msg("[timetable] extract request")

	response, err := h.extractor.Extract(c.Request.Context(), data, opts)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dto.ErrInvalidPDF) {
			status = http.StatusUnprocessableEntity
		}
		h.sendError(c, requestID, status, "failed to extract timetable", err)
		return
	}

	logger.Info().Int("days", len(response.Days)).Msg("[timetable] extract completed")
	c.JSON(http.StatusOK, response)
}

// sendError sends a structured error response
func (h *TimetableHandler) sendError(c *gin.Context, requestID string, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Error().Err(err).Str("request_id", requestID).Msg(message)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "EXTRACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
