package reply

import (
	"context"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"ahoy_market/pkg/contextx"
	"ahoy_market/pkg/errcodes"
	"ahoy_market/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// Error writes err as an error response. The status follows the failure kind
// of err; anything else is a 500. The message falls back to the status text.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err))

	response := errorResponse{
		Code:      failure.Code(err).String(),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	status := statusOf(err)

	switch status {
	case http.StatusBadRequest:
		response.WithDefaultCode(errcodes.ValidationError)
	case http.StatusNotFound:
		response.WithDefaultCode(errcodes.NotFound)
	case http.StatusForbidden:
		response.WithDefaultCode(errcodes.Forbidden)
	case http.StatusInternalServerError:
		response.WithDefaultCode(errcodes.InternalServerError)
	}

	if response.Message == "" {
		response.Message = http.StatusText(status)
	}

	JSON(ctx, w, status, response)
}

func statusOf(err error) int {
	switch {
	case failure.IsInvalidArgumentError(err):
		return http.StatusBadRequest
	case failure.IsNotFoundError(err):
		return http.StatusNotFound
	case failure.IsUnauthorizedError(err):
		return http.StatusUnauthorized
	case failure.IsForbiddenError(err):
		return http.StatusForbidden
	case failure.IsConflictError(err):
		return http.StatusConflict
	case failure.IsUnprocessableEntityError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
