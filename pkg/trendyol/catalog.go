package trendyol

import (
	"context"
	"net/http"
)

// Brands lists catalog brands.
func (c *Client) Brands(ctx context.Context, filter BrandFilter) Response[[]Brand] {
	q := NewQuery().Paginate(filter.Page, filter.Size, MaxLegacyPageSize)
	return list[Brand](ctx, c, newRequest(http.MethodGet, RouteBrands, nil, q), legacyWrapperKeys...)
}

// BrandsByName looks brands up by exact name.
func (c *Client) BrandsByName(ctx context.Context, name string) (Response[[]Brand], error) {
	if err := requireValue(name, "name"); err != nil {
		return Response[[]Brand]{}, err
	}
	q := NewQuery().Set("name", name)
	return list[Brand](ctx, c, newRequest(http.MethodGet, RouteBrandsByName, nil, q), legacyWrapperKeys...), nil
}

// Categories returns the category tree.
func (c *Client) Categories(ctx context.Context) Response[[]Category] {
	return list[Category](ctx, c, newRequest(http.MethodGet, RouteCategories, nil, nil), legacyWrapperKeys...)
}

// CategoryAttributes returns the attributes of a leaf category.
//
// Deprecated: use CategoryAttributesV2.
func (c *Client) CategoryAttributes(ctx context.Context, categoryID int64) (Response[[]CategoryAttribute], error) {
	if err := requireID(categoryID, "categoryId"); err != nil {
		return Response[[]CategoryAttribute]{}, err
	}
	req := newRequest(http.MethodGet, RouteCategoryAttributes, Params{"categoryId": categoryID}, nil)
	return list[CategoryAttribute](ctx, c, req, "categoryAttributes"), nil
}
