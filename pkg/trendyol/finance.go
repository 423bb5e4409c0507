package trendyol

import (
	"context"
	"net/http"
)

// Settlements lists sale, return and discount records in a date range.
func (c *Client) Settlements(ctx context.Context, filter FinanceFilter) (Response[[]SettlementRecord], error) {
	if err := filter.validate(); err != nil {
		return Response[[]SettlementRecord]{}, err
	}
	req := c.sellerRequest(http.MethodGet, RouteSettlements, nil, filter.query())
	return list[SettlementRecord](ctx, c, req, legacyWrapperKeys...), nil
}

// OtherFinancials lists transfers, invoices and deductions in a date range.
func (c *Client) OtherFinancials(ctx context.Context, filter FinanceFilter) (Response[[]OtherFinancialsRecord], error) {
	if err := filter.validate(); err != nil {
		return Response[[]OtherFinancialsRecord]{}, err
	}
	req := c.sellerRequest(http.MethodGet, RouteOtherFinancials, nil, filter.query())
	return list[OtherFinancialsRecord](ctx, c, req, legacyWrapperKeys...), nil
}

func (f FinanceFilter) validate() error {
	if err := requireValue(f.StartDate, "startDate"); err != nil {
		return err
	}
	return requireValue(f.EndDate, "endDate")
}
