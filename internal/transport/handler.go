package transport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go-face-measure/internal/config"
	apperrors "go-face-measure/internal/errors"
	"go-face-measure/internal/logger"
	"go-face-measure/internal/observer"
	"go-face-measure/internal/service"
	"go-face-measure/pkg/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDKey = "request_id"

// ErrorResponse is the JSON body for every failed request. Error carries the
// human-readable failure reason ("No face detected", ...).
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// NewHandler builds the HTTP routing for the measurement service. The
// metrics observer backs the stats endpoint and may be nil.
func NewHandler(svc service.MeasurementService, metrics *observer.MetricsObserver, cfg *config.Config) http.Handler {
	r := gin.Default()

	// Browser captures are posted straight from web frontends on other
	// origins, so CORS stays wide open.
	r.Use(
		cors.Default(),
		requestSizeLimiter(cfg.MaxRequestBodySize),
		requestID(),
	)

	r.GET("/health", healthCheck)
	r.GET("/stats", statsHandler(metrics))
	r.POST("/api/measure", measureHandler(svc, cfg))

	return r
}

func measureHandler(svc service.MeasurementService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		id := c.GetString(requestIDKey)
		log := logger.ForRequest(id)

		log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"user_agent": c.Request.UserAgent(),
			"ip":         c.ClientIP(),
		}).Info("Processing measurement request")

		var req models.MeasureRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.WithError(err).Error("Invalid request format")
			respondError(c, http.StatusBadRequest, "Invalid request body", id)
			return
		}

		resp, err := svc.Measure(ctx, &req, id)
		if err != nil {
			respondError(c, statusCodeFor(err), messageFor(err), id)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

func statsHandler(metrics *observer.MetricsObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics == nil {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		c.JSON(http.StatusOK, metrics.GetMetrics())
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "available",
		"version": "1.0.0",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// requestID tags every request with a fresh UUID so responses and log lines
// can be correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func statusCodeFor(err error) int {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.StatusCode
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// messageFor extracts the user-facing reason from an error. Internal causes
// stay in the logs, not the response body.
func messageFor(err error) string {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.Message
	}
	return "Request processing failed"
}

func respondError(c *gin.Context, code int, message string, requestID string) {
	logger.WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"request_id":  requestID,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	c.AbortWithStatusJSON(code, ErrorResponse{
		Error:     message,
		RequestID: requestID,
	})
}
