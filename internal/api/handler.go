package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/BerylCAtieno/interview-persona/internal/analysis"
	"github.com/BerylCAtieno/interview-persona/internal/logger"
	"github.com/BerylCAtieno/interview-persona/internal/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Analyzer turns a transcript into a tagged analysis. The local pipeline,
// the quick variant and the remote gateway all satisfy it.
type Analyzer interface {
	Analyze(ctx context.Context, transcript string) (*analysis.Analysis, error)
}

type Handler struct {
	analyzer Analyzer
	format   analysis.Format
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

func NewHandler(analyzer Analyzer, format analysis.Format, l *zap.Logger, m *metrics.Metrics) *Handler {
	if format == "" {
		format = analysis.FormatFlat
	}
	return &Handler{
		analyzer: analyzer,
		format:   format,
		logger:   logger.OrNop(l),
		metrics:  m,
	}
}

// HandleGemini analyzes the posted interview transcript.
func (h *Handler) HandleGemini(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("failed to decode analyze request", zap.Error(err), requestIDField(c))
		h.fail(c, err)
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing prompt"})
		return
	}

	transcript := req.Prompt
	h.logger.Debug("analyzing transcript",
		zap.Int("length", len(transcript)),
		zap.String("transcript", transcript),
		requestIDField(c),
	)

	start := time.Now()
	result, err := h.analyzer.Analyze(c.Request.Context(), transcript)
	if err != nil {
		h.logger.Error("analysis failed", zap.Error(err), requestIDField(c))
		h.fail(c, err)
		return
	}

	body, err := analysis.Encode(result, h.format)
	if err != nil {
		h.logger.Error("failed to encode analysis", zap.Error(err), requestIDField(c))
		h.fail(c, err)
		return
	}

	elapsed := time.Since(start)
	h.metrics.ObserveAnalysis(string(result.Source), elapsed.Seconds())
	h.logger.Info("analysis completed",
		zap.String("source", string(result.Source)),
		zap.String("format", string(h.format)),
		zap.Duration("elapsed", elapsed),
		requestIDField(c),
	)

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// HandleTest is a liveness check for the front end.
func (h *Handler) HandleTest(c *gin.Context) {
	c.JSON(http.StatusOK, TestResponse{
		Message:   "Server is working!",
		Timestamp: Timestamp(),
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (h *Handler) NotFound(c *gin.Context) {
	c.String(http.StatusNotFound, "Not found")
}

func (h *Handler) fail(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "Analysis failed",
		Details: err.Error(),
	})
}
