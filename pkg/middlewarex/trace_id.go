package middlewarex

import (
	"net/http"

	"ahoy_market/pkg/contextx"
	"ahoy_market/pkg/logx"
)

const headerNameTraceID = "X-Trace-Id"

// TraceID keeps a well-formed incoming trace id or issues a new one, echoes it
// in the response and adds it to the request logger.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, err := contextx.ParseTraceID(r.Header.Get(headerNameTraceID))
		if err != nil {
			traceID = contextx.NewTraceID()
		}

		ctx := contextx.WithTraceID(r.Context(), traceID)
		ctx = contextx.WithLogger(ctx, logger(ctx).With(logx.Stringer(logx.FieldTraceID, traceID)))

		w.Header().Set(headerNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
