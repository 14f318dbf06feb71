package handler

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"covid-estimator/internal/metrics"
)

const HeaderRequestID = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID returns the id assigned to the request by the middleware.
func RequestID(ctx *fasthttp.RequestCtx) string {
	if id, ok := ctx.UserValue(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// withMiddleware assigns a request id, then after next returns records the
// request in the request log, the metrics and the access log. routeLabel
// maps a path to its metrics label.
func (h *Handler) withMiddleware(next fasthttp.RequestHandler, routeLabel func(string) string) fasthttp.RequestHandler {
	logger := h.logger.WithOptions(zap.AddCallerSkip(1))

	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()

		requestID := string(ctx.Request.Header.Peek(HeaderRequestID))
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx.SetUserValue(requestIDKey, requestID)
		ctx.Response.Header.Set(HeaderRequestID, requestID)

		next(ctx)

		latency := time.Since(start)
		method := string(ctx.Method())
		path := string(ctx.Path())
		status := ctx.Response.StatusCode()

		if err := h.requests.Record(method, path, status, latency); err != nil {
			logger.Warn("recording request", zap.Error(err))
		}

		metrics.ObserveRequest(strconv.Itoa(status), method, routeLabel(path), float64(latency.Microseconds())/1000)

		fields := []zap.Field{
			zap.String("type", "http_request"),
			zap.String("request_id", requestID),
			zap.String("http_method", method),
			zap.String("http_path", path),
			zap.String("remote_addr", ctx.RemoteAddr().String()),
			zap.Int("http_status_code", status),
			zap.Int("response_bytes", len(ctx.Response.Body())),
			zap.Duration("latency", latency),
			zap.String("user_agent", string(ctx.UserAgent())),
		}

		msg := "HTTP request completed: " + path
		switch {
		case status >= 500:
			logger.Error(msg, fields...)
		case status >= 400:
			logger.Warn(msg, fields...)
		case path == PathHealth || path == PathMetrics:
			logger.Debug(msg, fields...)
		default:
			logger.Info(msg, fields...)
		}
	}
}
