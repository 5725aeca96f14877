package namerapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/namer/pkg/logger"
	"github.com/dmitrymomot/namer/pkg/namer"
)

type operation func(ctx context.Context, opts ...namer.Option) ([]string, error)

type handlers struct {
	composer *namer.Composer
	log      *slog.Logger
	maxCount int
	metrics  *metrics
}

// list adapts a Composer operation to an HTTP handler.
func (h *handlers) list(op operation, surnameOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseQuery(r.URL.Query(), h.maxCount, surnameOnly)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		names, err := op(r.Context(), namer.WithOptions(q.opts))
		if err != nil {
			h.fail(w, r, err)
			return
		}

		h.metrics.returned(r, len(names))
		_ = writeJSON(w, http.StatusOK, Envelope{Data: names, Meta: q.meta(len(names), surnameOnly)})
	}
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := errorStatus(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed", logger.Error(err), logger.StatusCode(status))
		if status == http.StatusInternalServerError {
			msg = http.StatusText(status)
		}
	}
	_ = writeJSON(w, status, Envelope{Error: &ErrorDetail{Code: code, Message: msg, Fields: fieldErrors(err)}})
}
