package trendyol

import (
	"context"
	"net/http"
)

// Defaults for the Recent* helpers.
const (
	DefaultRecentDays = 7
	DefaultRecentSize = 50
)

// Orders lists shipment packages.
func (c *Client) Orders(ctx context.Context, filter OrderFilter) Response[[]Order] {
	req := c.sellerRequest(http.MethodGet, RouteOrders, nil, filter.query())
	return list[Order](ctx, c, req, legacyWrapperKeys...)
}

// RecentOrders lists orders from the last days days. Non-positive arguments
// fall back to DefaultRecentDays and DefaultRecentSize.
func (c *Client) RecentOrders(ctx context.Context, days, size int) Response[[]Order] {
	start, end, size := c.recentWindow(days, size)
	return c.Orders(ctx, OrderFilter{StartDate: start, EndDate: end, Size: &size})
}

func (c *Client) recentWindow(days, size int) (Date, Date, int) {
	if days <= 0 {
		days = DefaultRecentDays
	}
	if size <= 0 {
		size = DefaultRecentSize
	}
	now := c.now()
	return DaysAgo(days, now), DateFromTime(now), size
}
