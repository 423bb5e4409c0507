package trendyol

import (
	"context"
	"net/http"
)

// Ping checks connectivity and credentials by fetching a single brand. It
// returns nil exactly when the call succeeded.
func (c *Client) Ping(ctx context.Context) error {
	size := 1
	req := newRequest(http.MethodGet, RouteBrands, nil, NewQuery().Set("size", size))
	return send[any](ctx, c, req).Err()
}

// Products lists legacy products.
//
// Deprecated: the barcode-based product service is being retired; use
// ApprovedProductsV2 or UnapprovedProductsV2.
func (c *Client) Products(ctx context.Context, filter ProductFilter) Response[[]Product] {
	req := c.sellerRequest(http.MethodGet, RouteProducts, nil, filter.query())
	return list[Product](ctx, c, req, legacyWrapperKeys...)
}

// ProductByBarcode returns the legacy product with the given barcode, or a
// nil Data when none matches.
//
// Deprecated: use ProductBasicInfoV2.
func (c *Client) ProductByBarcode(ctx context.Context, barcode string) (Response[*Product], error) {
	if err := requireValue(barcode, "barcode"); err != nil {
		return Response[*Product]{}, err
	}

	size := 1
	resp := c.Products(ctx, ProductFilter{Barcode: barcode, Size: &size})
	out := Response[*Product]{
		Success:    resp.Success,
		StatusCode: resp.StatusCode,
		Error:      resp.Error,
		Raw:        resp.Raw,
	}
	if resp.Success && len(resp.Data) > 0 {
		out.Data = &resp.Data[0]
	}
	return out, nil
}
