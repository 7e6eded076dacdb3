package api

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/BerylCAtieno/interview-persona/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type RouterOptions struct {
	Handler  *Handler
	Assets   fs.FS
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
}

var staticFiles = []struct {
	path        string
	file        string
	contentType string
}{
	{"/", "index.html", "text/html; charset=utf-8"},
	{"/index.html", "index.html", "text/html; charset=utf-8"},
	{"/script.js", "script.js", "application/javascript; charset=utf-8"},
	{"/styles.css", "styles.css", "text/css; charset=utf-8"},
}

// NewRouter wires the routes and middleware onto a fresh gin engine.
func NewRouter(opts RouterOptions) (*gin.Engine, error) {
	h := opts.Handler
	l := h.logger
	if opts.Logger != nil {
		l = opts.Logger
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		RequestLoggingMiddleware(l, opts.Metrics),
		CORSMiddleware(),
	)

	if opts.Assets != nil {
		for _, sf := range staticFiles {
			data, err := fs.ReadFile(opts.Assets, sf.file)
			if err != nil {
				return nil, fmt.Errorf("failed to read asset %s: %w", sf.file, err)
			}
			router.GET(sf.path, serveBytes(data, sf.contentType))
		}
	}

	router.POST("/api/gemini", h.HandleGemini)
	router.POST("/api/test", h.HandleTest)
	router.GET("/health", h.Health)

	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	router.NoRoute(h.NotFound)

	return router, nil
}

func serveBytes(data []byte, contentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, contentType, data)
	}
}
