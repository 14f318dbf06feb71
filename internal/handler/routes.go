package handler

import "github.com/valyala/fasthttp"

const (
	PathEstimate     = "/api/v1/on-covid-19"
	PathEstimateJSON = "/api/v1/on-covid-19/json"
	PathEstimateXML  = "/api/v1/on-covid-19/xml"
	PathLogs         = "/api/v1/on-covid-19/logs"
	PathDemo         = "/api/v1/on-covid-19/demo"
	PathHealth       = "/health"
	PathMetrics      = "/metrics"

	// metrics label for requests that match no route
	unmatchedPath = "unmatched"
)

type route struct {
	method  string
	handler fasthttp.RequestHandler
}

func (h *Handler) routes() map[string]route {
	return map[string]route{
		PathEstimate:     {fasthttp.MethodPost, h.HandleEstimation(FormatJSON)},
		PathEstimateJSON: {fasthttp.MethodPost, h.HandleEstimation(FormatJSON)},
		PathEstimateXML:  {fasthttp.MethodPost, h.HandleEstimation(FormatXML)},
		PathLogs:         {fasthttp.MethodGet, h.HandleLogs},
		PathDemo:         {fasthttp.MethodGet, h.HandleDemo},
		PathHealth:       {fasthttp.MethodGet, h.HandleHealth},
		PathMetrics:      {fasthttp.MethodGet, h.HandleMetrics},
	}
}

// Router dispatches on the exact path and wraps every request in the
// middleware chain.
func (h *Handler) Router() fasthttp.RequestHandler {
	routes := h.routes()

	dispatch := func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		r, ok := routes[path]
		if !ok {
			writeError(ctx, FormatJSON, fasthttp.StatusNotFound, "Not found: "+path, "")
			return
		}

		if string(ctx.Method()) != r.method {
			format := FormatJSON
			if path == PathEstimateXML {
				format = FormatXML
			}
			ctx.Response.Header.Set(fasthttp.HeaderAllow, r.method)
			writeError(ctx, format, fasthttp.StatusMethodNotAllowed, "Method not allowed", "")
			return
		}

		r.handler(ctx)
	}

	return h.withMiddleware(dispatch, func(path string) string {
		if _, ok := routes[path]; ok {
			return path
		}
		return unmatchedPath
	})
}
