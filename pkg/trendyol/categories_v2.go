package trendyol

import (
	"context"
	"net/http"
)

// CategoryAttributesV2 returns a category's attributes with their
// content-model flags (varianter, slicer, allowCustom).
func (c *Client) CategoryAttributesV2(ctx context.Context, categoryID int64) (Response[CategoryAttributeList], error) {
	if err := requireID(categoryID, "categoryId"); err != nil {
		return Response[CategoryAttributeList]{}, err
	}
	req := newRequest(http.MethodGet, RouteCategoryAttributesV2, Params{"categoryId": categoryID}, nil)
	return send[CategoryAttributeList](ctx, c, req), nil
}

// CategoryAttributeValuesV2 pages through the allowed values of a category
// attribute.
func (c *Client) CategoryAttributeValuesV2(
	ctx context.Context,
	categoryID, attributeID int64,
	filter AttributeValueFilter,
) (Response[Page[AttributeValue]], error) {
	if err := requireID(categoryID, "categoryId"); err != nil {
		return Response[Page[AttributeValue]]{}, err
	}
	if err := requireID(attributeID, "attributeId"); err != nil {
		return Response[Page[AttributeValue]]{}, err
	}

	params := Params{"categoryId": categoryID, "attributeId": attributeID}
	req := newRequest(http.MethodGet, RouteCategoryAttributeValuesV2, params, filter.query())
	return send[Page[AttributeValue]](ctx, c, req), nil
}
