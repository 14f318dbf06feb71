package handler

import (
	"encoding/xml"
	"errors"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"covid-estimator/internal/engine"
	"covid-estimator/internal/metrics"
	"covid-estimator/internal/model"
	"covid-estimator/internal/reqlog"
	"covid-estimator/internal/validation"
)

const (
	FormatJSON = "json"
	FormatXML  = "xml"

	contentTypeJSON = "application/json"
	contentTypeXML  = "application/xml"
	contentTypeText = "text/plain; charset=utf-8"
)

type Handler struct {
	logger    *zap.Logger
	validator *validation.Validator
	requests  *reqlog.Sink
	metrics   fasthttp.RequestHandler
}

func New(logger *zap.Logger, requests *reqlog.Sink) *Handler {
	return &Handler{
		logger:    logger.Named("handler"),
		validator: validation.NewValidator(),
		requests:  requests,
		metrics:   metrics.Handler(),
	}
}

// HandleEstimation decodes an InputReport from the body and responds with
// the estimate in the given format.
func (h *Handler) HandleEstimation(format string) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		report, err := h.validator.DecodeReport(ctx.PostBody())
		if err != nil {
			metrics.IncreaseEstimatesTotal(metrics.OutcomeInvalid)

			var inputErr *validation.InputValidationError
			if errors.As(err, &inputErr) {
				writeError(ctx, format, fasthttp.StatusBadRequest, inputErr.Error(), inputErr.Field)
				return
			}
			writeError(ctx, format, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error(), "")
			return
		}

		h.estimate(ctx, format, report)
	}
}

func (h *Handler) HandleDemo(ctx *fasthttp.RequestCtx) {
	report := DemoReport()
	h.estimate(ctx, FormatJSON, &report)
}

func (h *Handler) HandleLogs(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType(contentTypeText)
	if _, err := h.requests.WriteTo(ctx); err != nil {
		h.logger.Error("writing request log", zap.Error(err))
	}
}

func (h *Handler) HandleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, model.HealthResponse{Status: model.StatusOK})
}

func (h *Handler) HandleMetrics(ctx *fasthttp.RequestCtx) {
	h.metrics(ctx)
}

func (h *Handler) estimate(ctx *fasthttp.RequestCtx, format string, report *model.InputReport) {
	logger := h.logger.With(zap.String("request_id", RequestID(ctx)))

	if !engine.KnownPeriodType(report.PeriodType) {
		logger.Warn("unknown period type, treating duration as days", zap.String("period_type", report.PeriodType))
	}

	out, err := engine.Estimate(report)
	if err != nil {
		metrics.IncreaseEstimatesTotal(metrics.OutcomeFailure)
		logger.Warn("estimate failed", zap.Error(err))
		writeError(ctx, format, fasthttp.StatusUnprocessableEntity, err.Error(), "")
		return
	}

	metrics.IncreaseEstimatesTotal(metrics.OutcomeSuccess)
	write(ctx, format, fasthttp.StatusOK, out)
}

func write(ctx *fasthttp.RequestCtx, format string, status int, v any) {
	if format == FormatXML {
		writeXML(ctx, status, v)
		return
	}
	writeJSON(ctx, status, v)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		ctx.Error("encoding response: "+err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType(contentTypeJSON)
	ctx.SetBody(b)
}

func writeXML(ctx *fasthttp.RequestCtx, status int, v any) {
	b, err := xml.Marshal(v)
	if err != nil {
		ctx.Error("encoding response: "+err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType(contentTypeXML)
	ctx.SetBodyString(xml.Header)
	ctx.Response.AppendBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, format string, status int, message, field string) {
	write(ctx, format, status, model.ErrorResponse{
		Status:  status,
		Message: message,
		Field:   field,
	})
}
