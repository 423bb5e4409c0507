package trendyol

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/donaldgifford/trendyol-seller/internal/metrics"
)

const parseErrorPrefix = "Parse error: "

// Response is the envelope every remote operation resolves to. Success is
// true iff the status was 2xx and the body parsed. Error is set only when
// Success is false, in which case Raw holds the parsed failure body, if
// any, for diagnostics.
type Response[T any] struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode"`
	Data       T               `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
	Raw        json.RawMessage `json:"raw,omitempty"`
}

// Err returns the failure as an error, or nil on success.
func (r Response[T]) Err() error {
	if r.Success {
		return nil
	}
	return &ResponseError{StatusCode: r.StatusCode, Message: r.Error}
}

// ResponseError is a failed envelope viewed as a Go error.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.StatusCode == 0 {
		return "trendyol: " + e.Message
	}
	return fmt.Sprintf("trendyol: status %d: %s", e.StatusCode, e.Message)
}

// Normalize classifies an Outcome into a Response. It is a pure function of
// its input.
func Normalize[T any](out Outcome) Response[T] {
	if out.Err != nil {
		return Response[T]{StatusCode: out.StatusCode, Error: out.Err.Error()}
	}

	raw := bytes.TrimSpace(out.Body)
	if len(raw) == 0 {
		if isSuccess(out.StatusCode) {
			return Response[T]{Success: true, StatusCode: out.StatusCode}
		}
		return Response[T]{StatusCode: out.StatusCode, Error: httpStatusMessage(out.StatusCode)}
	}

	if !json.Valid(raw) {
		return parseFailure[T](out)
	}

	if !isSuccess(out.StatusCode) {
		return Response[T]{
			StatusCode: out.StatusCode,
			Error:      errorMessage(raw, out.StatusCode),
			Raw:        json.RawMessage(bytes.Clone(raw)),
		}
	}

	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		return parseFailure[T](out)
	}
	return Response[T]{Success: true, StatusCode: out.StatusCode, Data: data}
}

func parseFailure[T any](out Outcome) Response[T] {
	status := out.StatusCode
	if status == 0 {
		status = 500
	}
	return Response[T]{StatusCode: status, Error: parseErrorPrefix + string(out.Body)}
}

// errorMessage picks the body's message field, then its error field, then
// falls back to "HTTP <status>". Non-string values are rendered as JSON.
func errorMessage(raw []byte, status int) string {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err == nil {
		for _, key := range []string{"message", "error"} {
			if msg, ok := messageText(body[key]); ok {
				return msg
			}
		}
	}
	return httpStatusMessage(status)
}

func messageText(v json.RawMessage) (string, bool) {
	v = bytes.TrimSpace(v)
	switch string(v) {
	case "", "null", "false", "0", `""`:
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s, true
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, v); err != nil {
		return string(v), true
	}
	return compact.String(), true
}

func httpStatusMessage(status int) string {
	return "HTTP " + strconv.Itoa(status)
}

// send executes req and normalizes its outcome into a Response[T].
func send[T any](ctx context.Context, c *Client, req request) Response[T] {
	out := c.execute(ctx, req)
	resp := Normalize[T](out)
	if out.Err == nil && !resp.Success && resp.Raw == nil && len(bytes.TrimSpace(out.Body)) > 0 {
		metrics.ParseFailuresTotal.Inc()
		c.logger.WarnContext(ctx, "trendyol response did not parse",
			"path", req.path,
			"status", out.StatusCode,
		)
	}
	return resp
}
