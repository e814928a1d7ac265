package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
)

// downstreamStatusError marks a response whose status counts as a
// breaker failure but should still be surfaced to the caller.
type downstreamStatusError struct {
	status int
}

func (e *downstreamStatusError) Error() string {
	return fmt.Sprintf("downstream returned status %d", e.status)
}

// DownstreamErrorResponse is the error envelope downstream services return.
type DownstreamErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

const maxErrorBodySize = 1 << 20 // 1MB

// ParseResponseError reads a non-2xx response body and maps it to an
// application error. The body is consumed and closed.
func ParseResponseError(resp *http.Response) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return apperrors.Internal(fmt.Errorf("read error response: %w", err))
	}

	var downstream DownstreamErrorResponse
	if err := json.Unmarshal(body, &downstream); err == nil && downstream.Error.Message != "" {
		return mapDownstreamError(resp.StatusCode, downstream.Error.Message)
	}

	return mapDownstreamError(resp.StatusCode, fmt.Sprintf("downstream returned status %d", resp.StatusCode))
}

func mapDownstreamError(status int, message string) error {
	switch status {
	case http.StatusBadRequest:
		return apperrors.InvalidInput(message)
	case http.StatusUnauthorized:
		return apperrors.Unauthorized(message)
	case http.StatusForbidden:
		return apperrors.Forbidden(message)
	case http.StatusNotFound:
		return apperrors.NotFound("resource", message)
	case http.StatusConflict:
		return apperrors.Conflict(message)
	case http.StatusServiceUnavailable:
		return apperrors.StoreUnavailable(fmt.Errorf("%s", message))
	default:
		return apperrors.Internal(fmt.Errorf("%s", message))
	}
}
