package trendyol

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/donaldgifford/trendyol-seller/internal/metrics"
)

// legacyWrapperKeys are probed in order for the array a legacy list
// response wraps its items in.
var legacyWrapperKeys = []string{"content", "products", "brands", "categories", "questions"}

// ExtractContent returns the items of a legacy list response. A bare array
// is returned as is; otherwise the first known wrapper key holding an array
// wins. An unrecognized shape yields an empty slice and false.
func ExtractContent[T any](raw json.RawMessage) ([]T, bool) {
	return unwrap[T](raw, legacyWrapperKeys...)
}

func unwrap[T any](raw json.RawMessage, keys ...string) ([]T, bool) {
	raw = bytes.TrimSpace(raw)
	if isEmptyJSON(raw) {
		return []T{}, false
	}

	if raw[0] == '[' {
		return decodeArray[T](raw)
	}

	var obj map[string]json.RawMessage
	if raw[0] != '{' || json.Unmarshal(raw, &obj) != nil {
		return []T{}, false
	}
	for _, key := range keys {
		v := bytes.TrimSpace(obj[key])
		if len(v) == 0 || v[0] != '[' {
			continue
		}
		if items, ok := decodeArray[T](v); ok {
			return items, true
		}
	}
	return []T{}, false
}

func decodeArray[T any](raw []byte) ([]T, bool) {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}, false
	}
	if items == nil {
		items = []T{}
	}
	return items, true
}

// list fetches a legacy list and unwraps it with keys. An unrecognized
// shape is logged and counted but still reported as a successful, empty
// result.
func list[T any](ctx context.Context, c *Client, req request, keys ...string) Response[[]T] {
	resp := send[json.RawMessage](ctx, c, req)
	out := Response[[]T]{
		Success:    resp.Success,
		StatusCode: resp.StatusCode,
		Error:      resp.Error,
		Raw:        resp.Raw,
	}
	if !resp.Success {
		return out
	}

	items, ok := unwrap[T](resp.Data, keys...)
	if !ok && !isEmptyJSON(bytes.TrimSpace(resp.Data)) {
		metrics.ExtractionFallbacksTotal.WithLabelValues(req.route).Inc()
		c.logger.WarnContext(ctx, "unrecognized list response shape",
			"path", req.path,
			"keys", keys,
		)
	}
	out.Data = items
	return out
}

func isEmptyJSON(raw []byte) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
