package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"recruit/pkg/logger"
	"recruit/pkg/serrors"

	"go.uber.org/zap"
)

// errorResponse is the JSON error body returned by every endpoint.
type errorResponse struct {
	// Kind is the machine-readable error kind, e.g. "NOT_FOUND".
	Kind string `json:"kind"`
	// Error is the human-readable message.
	Error string `json:"error"`
}

// statusOf maps error kinds to HTTP status codes. CHAIN_MISMATCH shares 404
// with NOT_FOUND on purpose: a mismatched path must not confirm that the
// entity exists elsewhere. The body kind still distinguishes the two.
func statusOf(k serrors.Kind) int {
	switch k {
	case serrors.ErrValidation, serrors.ErrConflict:
		return http.StatusBadRequest
	case serrors.ErrUnauthenticated:
		return http.StatusUnauthorized
	case serrors.ErrSelfApplication:
		return http.StatusPaymentRequired
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrNotFound, serrors.ErrChainMismatch:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders an error as JSON. Internal errors are logged in full and
// returned opaque; semantic errors pass their kind and message through.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	kind := serrors.KindOf(err)
	status := statusOf(kind)
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "internal error", zap.Error(err))
		writeJSON(w, status, errorResponse{
			Kind:  serrors.ErrInternal.Error(),
			Error: "internal error",
		})

		return
	}

	var serr *serrors.Error
	msg := kind.Error()
	if errors.As(err, &serr) && serr.Message() != "" {
		msg = serr.Message()
	}

	writeJSON(w, status, errorResponse{
		Kind:  kind.Error(),
		Error: msg,
	})
}

// writeJSON renders v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON parses the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrValidation, err, "invalid request body")
	}

	return nil
}
