package trendyol

// OffsetPaginationCeiling is the number of rows reachable through page/size
// before the remote API switches to cursor pagination.
const OffsetPaginationCeiling = 10000

// Page is a v2 result page. It carries both pagination contracts: offset
// fields are always present, NextPageToken only beyond the offset ceiling.
type Page[T any] struct {
	Content       []T    `json:"content"`
	Page          int    `json:"page"`
	Size          int    `json:"size"`
	TotalElements int64  `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// Continuation tells the caller how to fetch the page after the current
// one. Exactly one of the fields is meaningful.
type Continuation struct {
	Page          int
	NextPageToken string
}

// UsesCursor reports whether the continuation is a cursor.
func (c Continuation) UsesCursor() bool {
	return c.NextPageToken != ""
}

// apply returns the page and token a filter should carry to follow c. A
// cursor keeps the current page; a page index clears the token.
func (c Continuation) apply(page *int) (*int, string) {
	if c.UsesCursor() {
		return page, c.NextPageToken
	}
	next := c.Page
	return &next, ""
}

// HasCursor reports whether the page carries a cursor token.
func (p Page[T]) HasCursor() bool {
	return p.NextPageToken != ""
}

// Next returns how to continue after p. The cursor wins when present;
// otherwise the next page index is offered while it exists and stays under
// the offset ceiling.
func (p Page[T]) Next() (Continuation, bool) {
	if p.HasCursor() {
		return Continuation{NextPageToken: p.NextPageToken}, true
	}

	next := p.Page + 1
	if next >= p.TotalPages {
		return Continuation{}, false
	}
	if p.Size > 0 && next*p.Size >= OffsetPaginationCeiling {
		return Continuation{}, false
	}
	return Continuation{Page: next}, true
}

// HasMore reports whether Next would offer a continuation.
func (p Page[T]) HasMore() bool {
	_, ok := p.Next()
	return ok
}
