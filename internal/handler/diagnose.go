package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SaranSelva18/CarDiagnosis/internal/diagnose"
	"github.com/SaranSelva18/CarDiagnosis/internal/domain"
	"github.com/SaranSelva18/CarDiagnosis/internal/metrics"
)

// kindCode labels typed trouble-code submissions in metrics and cache keys.
const kindCode = "code"

// Diagnoser is the service contract the handlers depend on.
type Diagnoser interface {
	DiagnoseCode(ctx context.Context, code string) (domain.DiagnosisResult, error)
	DiagnoseMedia(ctx context.Context, kind domain.InputKind, data []byte) (domain.DiagnosisResult, error)
}

// DiagnoseHandler exposes the diagnosis service over HTTP.
type DiagnoseHandler struct {
	svc    Diagnoser
	cache  *ResultCache
	logger *slog.Logger
}

// DiagnoseHandlerOption is a functional option for configuring DiagnoseHandler.
type DiagnoseHandlerOption func(*DiagnoseHandler)

// WithCache attaches a response cache. Without one every submission goes to
// the API.
func WithCache(cache *ResultCache) DiagnoseHandlerOption {
	return func(h *DiagnoseHandler) {
		h.cache = cache
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) DiagnoseHandlerOption {
	return func(h *DiagnoseHandler) {
		h.logger = logger
	}
}

// NewDiagnoseHandler creates a DiagnoseHandler.
func NewDiagnoseHandler(svc Diagnoser, opts ...DiagnoseHandlerOption) *DiagnoseHandler {
	h := &DiagnoseHandler{
		svc:    svc,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// codeRequest is the body of POST /api/diagnose/code.
type codeRequest struct {
	Code string `json:"code" binding:"required"`
}

// HandleCode handles POST /api/diagnose/code.
func (h *DiagnoseHandler) HandleCode(c *gin.Context) {
	var req codeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "A trouble code is required.")
		return
	}

	key := HashInput(kindCode, []byte(domain.NormalizeDTC(req.Code)))
	if result, ok := h.cachedResult(key); ok {
		c.JSON(http.StatusOK, result)
		return
	}

	start := time.Now()
	result, err := h.svc.DiagnoseCode(c.Request.Context(), req.Code)
	if err != nil {
		h.sendFailure(c, err)
		return
	}
	metrics.DiagnoseDuration.WithLabelValues(kindCode).Observe(time.Since(start).Seconds())

	h.storeResult(key, result)
	c.JSON(http.StatusOK, result)
}

// HandleMedia handles POST /api/diagnose/media. The request is multipart
// form data with a "file" part and a "kind" field (image, video, sound).
func (h *DiagnoseHandler) HandleMedia(c *gin.Context) {
	kind, err := domain.ParseInputKind(c.PostForm("kind"))
	if err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "A media file is required.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "The uploaded file could not be read.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "The uploaded file could not be read.")
		return
	}

	metrics.UploadBytes.WithLabelValues(string(kind)).Observe(float64(len(data)))

	key := HashInput(string(kind), data)
	if result, ok := h.cachedResult(key); ok {
		c.JSON(http.StatusOK, result)
		return
	}

	start := time.Now()
	result, err := h.svc.DiagnoseMedia(c.Request.Context(), kind, data)
	if err != nil {
		h.sendFailure(c, err)
		return
	}
	metrics.DiagnoseDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())

	h.storeResult(key, result)
	c.JSON(http.StatusOK, result)
}

// HandleHealth handles GET /health.
func (h *DiagnoseHandler) HandleHealth(c *gin.Context) {
	resp := gin.H{"status": "healthy"}

	if h.cache != nil {
		hits, misses, size := h.cache.Stats()
		resp["cache"] = gin.H{
			"hits":    hits,
			"misses":  misses,
			"entries": size,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// cachedResult consults the cache when one is attached.
func (h *DiagnoseHandler) cachedResult(key string) (domain.DiagnosisResult, bool) {
	if h.cache == nil {
		return domain.DiagnosisResult{}, false
	}
	result, ok := h.cache.Get(key)
	if ok {
		metrics.CacheHits.Inc()
		h.logger.Debug("cache hit", slog.String("key", key[:12]))
	} else {
		metrics.CacheMisses.Inc()
	}
	return result, ok
}

func (h *DiagnoseHandler) storeResult(key string, result domain.DiagnosisResult) {
	if h.cache != nil {
		h.cache.Set(key, result)
	}
}

// sendFailure maps a service error to the single user-facing message. Input
// rejections are the client's fault; everything else is a failed round trip.
func (h *DiagnoseHandler) sendFailure(c *gin.Context, err error) {
	var inputErr *diagnose.InputError
	if errors.As(err, &inputErr) {
		h.sendError(c, http.StatusBadRequest, inputErr.Error())
		return
	}

	message := diagnose.Classify(err)
	metrics.UpstreamFailures.WithLabelValues(message).Inc()

	h.logger.Error("diagnosis failed",
		slog.String("error", err.Error()),
		slog.String("user_message", message),
	)

	h.sendError(c, http.StatusBadGateway, message)
}

// sendError emits the single-message error shape. No partial result is ever
// returned alongside it.
func (h *DiagnoseHandler) sendError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
