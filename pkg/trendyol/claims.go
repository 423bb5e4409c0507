package trendyol

import (
	"context"
	"net/http"
)

// Claims lists customer return requests.
func (c *Client) Claims(ctx context.Context, filter ClaimFilter) Response[[]Claim] {
	req := c.sellerRequest(http.MethodGet, RouteClaims, nil, filter.query())
	return list[Claim](ctx, c, req, legacyWrapperKeys...)
}

// RecentClaims lists claims from the last days days. Non-positive arguments
// fall back to DefaultRecentDays and DefaultRecentSize.
func (c *Client) RecentClaims(ctx context.Context, days, size int) Response[[]Claim] {
	start, end, size := c.recentWindow(days, size)
	return c.Claims(ctx, ClaimFilter{StartDate: start, EndDate: end, Size: &size})
}

// ClaimIssueReasons lists the reasons a claim can be rejected with.
func (c *Client) ClaimIssueReasons(ctx context.Context) Response[[]ClaimIssueReason] {
	return list[ClaimIssueReason](ctx, c, c.sellerRequest(http.MethodGet, RouteClaimIssueReasons, nil, nil), "issueReasons")
}
