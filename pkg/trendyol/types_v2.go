package trendyol

// Content-based (v2) resource records. One content groups several
// barcode-keyed variants.

// FastDeliveryType is a delivery speed class.
type FastDeliveryType string

// Fast delivery types.
const (
	SameDayShipping FastDeliveryType = "SAME_DAY_SHIPPING"
	FastDelivery    FastDeliveryType = "FAST_DELIVERY"
)

// DeliveryOption sets a product's dispatch time.
type DeliveryOption struct {
	DeliveryDuration int              `json:"deliveryDuration"`
	FastDeliveryType FastDeliveryType `json:"fastDeliveryType,omitempty"`
}

// AttributeValueRequest assigns values to an attribute, either by value id
// or, for custom attributes, as free text.
type AttributeValueRequest struct {
	AttributeID       int64   `json:"attributeId"`
	AttributeValueIDs []int64 `json:"attributeValueIds,omitempty"`
	AttributeValue    string  `json:"attributeValue,omitempty"`
}

// CreateProductV2Item is one product of a create request.
type CreateProductV2Item struct {
	Barcode            string                  `json:"barcode"`
	Title              string                  `json:"title"`
	Description        string                  `json:"description"`
	ProductMainID      string                  `json:"productMainId"`
	BrandID            int64                   `json:"brandId"`
	CategoryID         int64                   `json:"categoryId"`
	Quantity           int                     `json:"quantity"`
	StockCode          string                  `json:"stockCode"`
	DimensionalWeight  float64                 `json:"dimensionalWeight"`
	ListPrice          float64                 `json:"listPrice"`
	SalePrice          float64                 `json:"salePrice"`
	VatRate            int                     `json:"vatRate"`
	LotNumber          string                  `json:"lotNumber,omitempty"`
	ShipmentAddressID  int64                   `json:"shipmentAddressId,omitempty"`
	ReturningAddressID int64                   `json:"returningAddressId,omitempty"`
	DeliveryOption     *DeliveryOption         `json:"deliveryOption,omitempty"`
	Images             []Image                 `json:"images"`
	Attributes         []AttributeValueRequest `json:"attributes"`
}

// CreateProductsV2Request submits up to 1,000 products.
type CreateProductsV2Request struct {
	Items []CreateProductV2Item `json:"items"`
}

// BatchRequest identifies an asynchronous bulk job.
type BatchRequest struct {
	BatchRequestID string `json:"batchRequestId"`
}

// ProductBasicInfo is the approval state of a barcode.
type ProductBasicInfo struct {
	Barcode      string `json:"barcode"`
	Approved     bool   `json:"approved"`
	ApprovedDate int64  `json:"approvedDate,omitempty"`
	Archived     bool   `json:"archived"`
	ListingID    ID     `json:"listingId,omitempty"`
	ContentID    int64  `json:"contentId,omitempty"`
}

// ProductFilterV2 filters the approved and unapproved product lists. Size
// is clamped to MaxUnapprovedPageSize or MaxApprovedPageSize depending on
// the list queried.
type ProductFilterV2 struct {
	Barcode       string
	StartDate     Date
	EndDate       Date
	Page          *int
	DateQueryType DateQueryType
	Size          *int
	SupplierID    int64
	StockCode     string
	ProductMainID string
	BrandIDs      []int64
	Status        string
	NextPageToken string
}

func (f ProductFilterV2) query(ceiling int) *Query {
	q := NewQuery().
		Set("barcode", f.Barcode).
		Set("startDate", f.StartDate).
		Set("endDate", f.EndDate).
		Paginate(f.Page, f.Size, ceiling).
		Set("dateQueryType", f.DateQueryType).
		Set("stockCode", f.StockCode).
		Set("productMainId", f.ProductMainID).
		Set("brandIds", f.BrandIDs).
		Set("status", f.Status).
		Set("nextPageToken", f.NextPageToken)
	if f.SupplierID != 0 {
		q.Set("supplierId", f.SupplierID)
	}
	return q
}

// WithContinuation returns a copy of f positioned at c.
func (f ProductFilterV2) WithContinuation(c Continuation) ProductFilterV2 {
	f.Page, f.NextPageToken = c.apply(f.Page)
	return f
}

// Unapproved product statuses.
const (
	StatusRejected        = "rejected"
	StatusPendingApproval = "pendingApproval"
)

// Approved product statuses.
const (
	StatusArchived    = "archived"
	StatusBlacklisted = "blacklisted"
	StatusLocked      = "locked"
	StatusOnSale      = "onSale"
)

// RejectReasonDetail explains a rejection.
type RejectReasonDetail struct {
	RejectReason       string `json:"rejectReason"`
	RejectReasonDetail string `json:"rejectReasonDetail"`
}

// IDName is an id/name reference to a brand or category.
type IDName struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UnapprovedProduct is a product awaiting approval or rejected.
type UnapprovedProduct struct {
	SupplierID            int64                   `json:"supplierId,omitempty"`
	ProductMainID         string                  `json:"productMainId,omitempty"`
	CreateDateTime        int64                   `json:"createDateTime,omitempty"`
	LastUpdateDate        int64                   `json:"lastUpdateDate,omitempty"`
	LastPriceChangeDate   int64                   `json:"lastPriceChangeDate,omitempty"`
	LastStockChangeDate   int64                   `json:"lastStockChangeDate,omitempty"`
	Brand                 *IDName                 `json:"brand,omitempty"`
	Category              *IDName                 `json:"category,omitempty"`
	Barcode               string                  `json:"barcode,omitempty"`
	Title                 string                  `json:"title,omitempty"`
	Description           string                  `json:"description,omitempty"`
	Quantity              int                     `json:"quantity,omitempty"`
	ListPrice             float64                 `json:"listPrice,omitempty"`
	SalePrice             float64                 `json:"salePrice,omitempty"`
	VatRate               float64                 `json:"vatRate,omitempty"`
	DimensionalWeight     float64                 `json:"dimensionalWeight,omitempty"`
	StockCode             string                  `json:"stockCode,omitempty"`
	Media                 []Image                 `json:"media,omitempty"`
	Attributes            []AttributeValueRequest `json:"attributes,omitempty"`
	RejectReasonDetails   []RejectReasonDetail    `json:"rejectReasonDetails,omitempty"`
	LocationBasedDelivery string                  `json:"locationBasedDelivery,omitempty"`
	LotNumber             string                  `json:"lotNumber,omitempty"`
}

// FastDeliveryOption is a fast delivery offer of a variant.
type FastDeliveryOption struct {
	DeliveryOptionType      string `json:"deliveryOptionType"`
	DeliveryDailyCutOffHour string `json:"deliveryDailyCutOffHour,omitempty"`
}

// VariantDeliveryOptions are a variant's delivery settings.
type VariantDeliveryOptions struct {
	DeliveryDuration    int                  `json:"deliveryDuration,omitempty"`
	RushDelivery        bool                 `json:"isRushDelivery,omitempty"`
	FastDeliveryOptions []FastDeliveryOption `json:"fastDeliveryOptions,omitempty"`
}

// VariantStock is stock metadata.
type VariantStock struct {
	LastModifiedDate int64 `json:"lastModifiedDate,omitempty"`
}

// VariantPrice is a variant's pricing.
type VariantPrice struct {
	SalePrice float64 `json:"salePrice"`
	ListPrice float64 `json:"listPrice"`
}

// Variant is one barcode of an approved content.
type Variant struct {
	VariantID          int64                   `json:"variantId,omitempty"`
	SupplierID         int64                   `json:"supplierId,omitempty"`
	Barcode            string                  `json:"barcode,omitempty"`
	Attributes         []ProductAttribute      `json:"attributes,omitempty"`
	ProductURL         string                  `json:"productUrl,omitempty"`
	OnSale             bool                    `json:"onSale"`
	DeliveryOptions    *VariantDeliveryOptions `json:"deliveryOptions,omitempty"`
	Stock              *VariantStock           `json:"stock,omitempty"`
	Price              *VariantPrice           `json:"price,omitempty"`
	StockCode          string                  `json:"stockCode,omitempty"`
	VatRate            float64                 `json:"vatRate,omitempty"`
	SellerCreatedDate  int64                   `json:"sellerCreatedDate,omitempty"`
	SellerModifiedDate int64                   `json:"sellerModifiedDate,omitempty"`
	Locked             bool                    `json:"locked"`
	LockReason         string                  `json:"lockReason,omitempty"`
	LockDate           int64                   `json:"lockDate,omitempty"`
	Archived           bool                    `json:"archived"`
	ArchivedDate       int64                   `json:"archivedDate,omitempty"`
	DocNeeded          bool                    `json:"docNeeded"`
	HasViolation       bool                    `json:"hasViolation"`
	Blacklisted        bool                    `json:"blacklisted"`
}

// ContentAttributeValue is one value of a content attribute.
type ContentAttributeValue struct {
	AttributeValueID int64  `json:"attributeValueId,omitempty"`
	AttributeValue   string `json:"attributeValue"`
}

// ContentAttribute is an attribute shared by all variants of a content.
type ContentAttribute struct {
	AttributeID     int64                   `json:"attributeId"`
	AttributeName   string                  `json:"attributeName"`
	AttributeValues []ContentAttributeValue `json:"attributeValues"`
}

// ApprovedProduct is an approved content and its variants.
type ApprovedProduct struct {
	ContentID        int64              `json:"contentId"`
	ProductMainID    string             `json:"productMainId,omitempty"`
	Brand            *IDName            `json:"brand,omitempty"`
	Category         *IDName            `json:"category,omitempty"`
	CreationDate     int64              `json:"creationDate,omitempty"`
	LastModifiedDate int64              `json:"lastModifiedDate,omitempty"`
	LastModifiedBy   string             `json:"lastModifiedBy,omitempty"`
	Title            string             `json:"title,omitempty"`
	Description      string             `json:"description,omitempty"`
	Images           []Image            `json:"images,omitempty"`
	Attributes       []ContentAttribute `json:"attributes,omitempty"`
	Variants         []Variant          `json:"variants,omitempty"`
}

// LocationBasedDelivery toggles location based delivery for a variant.
type LocationBasedDelivery string

// Location based delivery settings.
const (
	LocationBasedDeliveryEnabled  LocationBasedDelivery = "ENABLED"
	LocationBasedDeliveryDisabled LocationBasedDelivery = "DISABLED"
)

// UpdateUnapprovedProductItem replaces fields of a product awaiting approval.
type UpdateUnapprovedProductItem struct {
	Barcode               string                  `json:"barcode"`
	Title                 string                  `json:"title,omitempty"`
	Description           string                  `json:"description,omitempty"`
	ProductMainID         string                  `json:"productMainId,omitempty"`
	BrandID               int64                   `json:"brandId,omitempty"`
	CategoryID            int64                   `json:"categoryId,omitempty"`
	StockCode             string                  `json:"stockCode,omitempty"`
	DimensionalWeight     float64                 `json:"dimensionalWeight,omitempty"`
	VatRate               *int                    `json:"vatRate,omitempty"`
	DeliveryOption        *DeliveryOption         `json:"deliveryOption,omitempty"`
	LocationBasedDelivery LocationBasedDelivery   `json:"locationBasedDelivery,omitempty"`
	LotNumber             string                  `json:"lotNumber,omitempty"`
	ShipmentAddressID     int64                   `json:"shipmentAddressId,omitempty"`
	ReturningAddressID    int64                   `json:"returningAddressId,omitempty"`
	Images                []Image                 `json:"images,omitempty"`
	Attributes            []AttributeValueRequest `json:"attributes,omitempty"`
}

// UpdateUnapprovedProductsRequest updates up to 1,000 unapproved products.
type UpdateUnapprovedProductsRequest struct {
	Items []UpdateUnapprovedProductItem `json:"items"`
}

// UpdateApprovedContentItem updates the content-level fields of an
// approved content. Attribute updates must carry the full attribute set.
type UpdateApprovedContentItem struct {
	ContentID   int64                   `json:"contentId"`
	Title       string                  `json:"title,omitempty"`
	Description string                  `json:"description,omitempty"`
	Images      []Image                 `json:"images,omitempty"`
	Attributes  []AttributeValueRequest `json:"attributes,omitempty"`
}

// UpdateApprovedContentRequest updates up to 1,000 contents.
type UpdateApprovedContentRequest struct {
	Items []UpdateApprovedContentItem `json:"items"`
}

// UpdateApprovedVariantItem updates variant-level fields of an approved
// barcode.
type UpdateApprovedVariantItem struct {
	Barcode               string                `json:"barcode"`
	StockCode             string                `json:"stockCode,omitempty"`
	VatRate               *int                  `json:"vatRate,omitempty"`
	DimensionalWeight     float64               `json:"dimensionalWeight,omitempty"`
	LotNumber             string                `json:"lotNumber,omitempty"`
	ShipmentAddressID     int64                 `json:"shipmentAddressId,omitempty"`
	ReturningAddressID    int64                 `json:"returningAddressId,omitempty"`
	LocationBasedDelivery LocationBasedDelivery `json:"locationBasedDelivery,omitempty"`
}

// UpdateApprovedVariantsRequest updates up to 1,000 variants.
type UpdateApprovedVariantsRequest struct {
	Items []UpdateApprovedVariantItem `json:"items"`
}

// UpdateDeliveryOptionItem sets the delivery option of a barcode.
type UpdateDeliveryOptionItem struct {
	Barcode        string         `json:"barcode"`
	DeliveryOption DeliveryOption `json:"deliveryOption"`
}

// UpdateDeliveryOptionsRequest updates up to 1,000 delivery options.
type UpdateDeliveryOptionsRequest struct {
	Items []UpdateDeliveryOptionItem `json:"items"`
}

// CategoryAttributeV2 describes how an attribute applies to a category.
type CategoryAttributeV2 struct {
	AllowCustom                  bool   `json:"allowCustom"`
	Attribute                    IDName `json:"attribute"`
	CategoryID                   int64  `json:"categoryId"`
	Required                     bool   `json:"required"`
	Varianter                    bool   `json:"varianter"`
	Slicer                       bool   `json:"slicer"`
	AllowMultipleAttributeValues bool   `json:"allowMultipleAttributeValues"`
}

// CategoryAttributeList is the attribute set of a category.
type CategoryAttributeList struct {
	ID                 int64                 `json:"id"`
	Name               string                `json:"name"`
	DisplayName        string                `json:"displayName"`
	CategoryAttributes []CategoryAttributeV2 `json:"categoryAttributes"`
}

// AttributeValue is an allowed value of a category attribute.
type AttributeValue struct {
	AttributeValueID   int64  `json:"attributeValueId"`
	AttributeValueName string `json:"attributeValueName"`
}

// AttributeValueFilter pages and narrows attribute values. Size is clamped
// to MaxAttributeValuesPageSize.
type AttributeValueFilter struct {
	Page               *int
	Size               *int
	AttributeValueID   int64
	AttributeValueName string
	NextPageToken      string
}

func (f AttributeValueFilter) query() *Query {
	q := NewQuery().
		Paginate(f.Page, f.Size, MaxAttributeValuesPageSize).
		Set("attributeValueName", f.AttributeValueName).
		Set("nextPageToken", f.NextPageToken)
	if f.AttributeValueID != 0 {
		q.Set("attributeValueId", f.AttributeValueID)
	}
	return q
}

// WithContinuation returns a copy of f positioned at c.
func (f AttributeValueFilter) WithContinuation(c Continuation) AttributeValueFilter {
	f.Page, f.NextPageToken = c.apply(f.Page)
	return f
}
