// Package logger provides slog handlers shared by the toolshop processes.
package logger

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"
)

const requestIDKey = "request_id"

// ContextHandler is a wrapper around slog.Handler that adds request and trace identifiers
// found in the context to every record.
// A request_id already bound with WithAttrs or passed on the record is not repeated.
type ContextHandler struct {
	slog.Handler
	hasRequestID bool
}

// NewContextHandler creates a new ContextHandler.
func NewContextHandler(handler slog.Handler) *ContextHandler {
	return &ContextHandler{
		Handler: handler,
	}
}

// Enabled reports whether the handler records at the given level.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.Handler.Enabled(ctx, level)
}

// Handle adds trace_id and request_id attributes when present and passes the record on.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("trace_id", span.SpanContext().TraceID().String()))
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" && !h.hasRequestID && !recordHasRequestID(r) {
		r.AddAttrs(slog.String(requestIDKey, reqID))
	}
	return h.Handler.Handle(ctx, r)
}

// WithAttrs returns a new ContextHandler with the given attributes added.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	bound := h.hasRequestID
	for _, a := range attrs {
		if a.Key == requestIDKey {
			bound = true
		}
	}
	return &ContextHandler{
		Handler:      h.Handler.WithAttrs(attrs),
		hasRequestID: bound,
	}
}

// WithGroup returns a new ContextHandler with the given group added.
func (h *ContextHandler) WithGroup(group string) slog.Handler {
	return &ContextHandler{
		Handler:      h.Handler.WithGroup(group),
		hasRequestID: h.hasRequestID,
	}
}

func recordHasRequestID(r slog.Record) bool {
	found := false
	r.Attrs(func(a slog.Attr) bool {
		found = a.Key == requestIDKey
		return !found
	})
	return found
}
