package trendyol

import (
	"context"
	"net/http"
	"net/url"
)

// CreateProductsV2 submits products to the content-based catalog. The
// returned batch id tracks the asynchronous job.
func (c *Client) CreateProductsV2(ctx context.Context, req CreateProductsV2Request) (Response[BatchRequest], error) {
	return c.bulk(ctx, RouteCreateProductsV2, req.Items, req)
}

// ProductBasicInfoV2 returns the approval state, content id and listing id
// of a barcode.
func (c *Client) ProductBasicInfoV2(ctx context.Context, barcode string) (Response[ProductBasicInfo], error) {
	if err := requireValue(barcode, "barcode"); err != nil {
		return Response[ProductBasicInfo]{}, err
	}
	req := c.sellerRequest(http.MethodGet, RouteProductBasicInfoV2, Params{"barcode": url.PathEscape(barcode)}, nil)
	return send[ProductBasicInfo](ctx, c, req), nil
}

// UnapprovedProductsV2 lists products awaiting approval or rejected.
func (c *Client) UnapprovedProductsV2(ctx context.Context, filter ProductFilterV2) Response[Page[UnapprovedProduct]] {
	req := c.sellerRequest(http.MethodGet, RouteUnapprovedV2, nil, filter.query(MaxUnapprovedPageSize))
	return send[Page[UnapprovedProduct]](ctx, c, req)
}

// ApprovedProductsV2 lists approved contents with their variants.
func (c *Client) ApprovedProductsV2(ctx context.Context, filter ProductFilterV2) Response[Page[ApprovedProduct]] {
	req := c.sellerRequest(http.MethodGet, RouteApprovedV2, nil, filter.query(MaxApprovedPageSize))
	return send[Page[ApprovedProduct]](ctx, c, req)
}

// UpdateUnapprovedProductsV2 replaces fields of products awaiting approval.
func (c *Client) UpdateUnapprovedProductsV2(ctx context.Context, req UpdateUnapprovedProductsRequest) (Response[BatchRequest], error) {
	return c.bulk(ctx, RouteUnapprovedUpdateV2, req.Items, req)
}

// UpdateApprovedContentV2 updates content-level fields of approved products.
// Barcode, main id, brand, category and varianter attributes cannot change.
func (c *Client) UpdateApprovedContentV2(ctx context.Context, req UpdateApprovedContentRequest) (Response[BatchRequest], error) {
	return c.bulk(ctx, RouteContentUpdateV2, req.Items, req)
}

// UpdateApprovedVariantsV2 updates variant-level fields of approved barcodes.
func (c *Client) UpdateApprovedVariantsV2(ctx context.Context, req UpdateApprovedVariantsRequest) (Response[BatchRequest], error) {
	return c.bulk(ctx, RouteVariantUpdateV2, req.Items, req)
}

// UpdateDeliveryOptionsV2 updates delivery options.
func (c *Client) UpdateDeliveryOptionsV2(ctx context.Context, req UpdateDeliveryOptionsRequest) (Response[BatchRequest], error) {
	return c.bulk(ctx, RouteDeliveryUpdateV2, req.Items, req)
}

// bulk posts body to a seller-scoped bulk route once items is non-empty.
// The item count is left for the remote API to enforce.
func (c *Client) bulk(ctx context.Context, route string, items, body any) (Response[BatchRequest], error) {
	if err := requireValue(items, "items"); err != nil {
		return Response[BatchRequest]{}, err
	}
	req := c.sellerRequest(http.MethodPost, route, nil, nil).withBody(body)
	return send[BatchRequest](ctx, c, req), nil
}
