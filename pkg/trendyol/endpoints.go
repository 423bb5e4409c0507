package trendyol

import (
	"fmt"
	"strings"
)

// Path templates. Placeholders are filled by Resolve.
const (
	RouteBrands             = "/integration/product/brands"
	RouteBrandsByName       = "/integration/product/brands/by-name"
	RouteCategories         = "/integration/product/product-categories"
	RouteCategoryAttributes = "/integration/product/product-categories/{categoryId}/attributes"
	RouteProducts           = "/integration/product/sellers/{sellerId}/products"

	RouteOrders = "/integration/order/sellers/{sellerId}/orders"

	RouteQuestions      = "/integration/qna/sellers/{sellerId}/questions/filter"
	RouteQuestionAnswer = "/integration/qna/sellers/{sellerId}/questions/{questionId}/answers"

	RouteWebhooks    = "/integration/webhook/sellers/{sellerId}/webhooks"
	RouteWebhookByID = "/integration/webhook/sellers/{sellerId}/webhooks/{webhookId}"

	RouteClaims             = "/integration/order/sellers/{sellerId}/claims"
	RouteClaimIssueReasons  = "/integration/order/sellers/{sellerId}/claims/issue-reasons"
	RouteSettlements        = "/integration/finance/che/sellers/{sellerId}/settlements"
	RouteOtherFinancials    = "/integration/finance/che/sellers/{sellerId}/otherfinancials"
	RouteCreateProductsV2   = "/integration/product/sellers/{sellerId}/v2/products"
	RouteProductBasicInfoV2 = "/integration/product/sellers/{sellerId}/product/{barcode}"
	RouteUnapprovedV2       = "/integration/product/sellers/{sellerId}/products/unapproved"
	RouteApprovedV2         = "/integration/product/sellers/{sellerId}/products/approved"
	RouteUnapprovedUpdateV2 = "/integration/product/sellers/{sellerId}/products/unapproved-bulk-update"
	RouteContentUpdateV2    = "/integration/product/sellers/{sellerId}/products/content-bulk-update"
	RouteVariantUpdateV2    = "/integration/product/sellers/{sellerId}/products/variant-bulk-update"
	RouteDeliveryUpdateV2   = "/integration/product/sellers/{sellerId}/products/delivery-option-update"

	RouteCategoryAttributesV2      = "/integration/product/categories/{categoryId}/attributes"
	RouteCategoryAttributeValuesV2 = "/integration/product/categories/{categoryId}/attributes/{attributeId}/values"
)

// Params maps template placeholder names to values.
type Params map[string]any

// Resolve substitutes every {name} placeholder in template with the string
// form of params[name]. Names absent from params are left as is.
func Resolve(template string, params Params) string {
	out := template
	for name, value := range params {
		out = strings.ReplaceAll(out, "{"+name+"}", fmt.Sprint(value))
	}
	return out
}
