package httpmiddleware

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// Trace wraps the handler in an otelhttp server span using the given tracer
// provider. The operation name groups all routes under one server span name;
// route detail lives in the standard HTTP attributes.
func Trace(operation string, tp trace.TracerProvider) Middleware {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, operation,
			otelhttp.WithTracerProvider(tp),
		)
	}
}
