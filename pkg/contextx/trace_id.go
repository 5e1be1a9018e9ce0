package contextx

import (
	"context"
	"fmt"

	"github.com/rs/xid"
)

type TraceID string

type contextKeyTraceID struct{}

func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

// ParseTraceID accepts only ids in xid form.
func ParseTraceID(raw string) (TraceID, error) {
	id, err := xid.FromString(raw)
	if err != nil {
		return "", fmt.Errorf("trace id %q: %w", raw, err)
	}

	return TraceID(id.String()), nil
}

func (t TraceID) String() string {
	return string(t)
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}
