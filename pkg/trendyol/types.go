package trendyol

// Legacy (barcode-indexed) resource records. Fields the remote API does not
// document are not represented.

// Product is a barcode-indexed listing.
type Product struct {
	ID            ID                 `json:"id,omitempty"`
	Title         string             `json:"title,omitempty"`
	Description   string             `json:"description,omitempty"`
	Brand         string             `json:"brand,omitempty"`
	BrandID       int64              `json:"brandId,omitempty"`
	CategoryName  string             `json:"categoryName,omitempty"`
	CategoryID    int64              `json:"categoryId,omitempty"`
	Barcode       string             `json:"barcode,omitempty"`
	StockCode     string             `json:"stockCode,omitempty"`
	ProductMainID string             `json:"productMainId,omitempty"`
	SalePrice     float64            `json:"salePrice,omitempty"`
	ListPrice     float64            `json:"listPrice,omitempty"`
	Quantity      int                `json:"quantity,omitempty"`
	VatRate       float64            `json:"vatRate,omitempty"`
	Approved      bool               `json:"approved"`
	Archived      bool               `json:"archived"`
	OnSale        bool               `json:"onSale"`
	Rejected      bool               `json:"rejected"`
	Blacklisted   bool               `json:"blacklisted"`
	Images        []Image            `json:"images,omitempty"`
	Attributes    []ProductAttribute `json:"attributes,omitempty"`
}

// Image is a product media URL.
type Image struct {
	URL string `json:"url"`
}

// ProductAttribute is an attribute value attached to a legacy product.
type ProductAttribute struct {
	AttributeID      int64  `json:"attributeId"`
	AttributeName    string `json:"attributeName,omitempty"`
	AttributeValueID int64  `json:"attributeValueId,omitempty"`
	AttributeValue   string `json:"attributeValue,omitempty"`
}

// DateQueryType selects which timestamp a date range filters on.
type DateQueryType string

// Date query types.
const (
	CreatedDate         DateQueryType = "CREATED_DATE"
	LastModifiedDate    DateQueryType = "LAST_MODIFIED_DATE"
	VariantCreatedDate  DateQueryType = "VARIANT_CREATED_DATE"
	VariantModifiedDate DateQueryType = "VARIANT_MODIFIED_DATE"
	ContentModifiedDate DateQueryType = "CONTENT_MODIFIED_DATE"
)

// SortDirection orders list results.
type SortDirection string

// Sort directions.
const (
	Ascending  SortDirection = "ASC"
	Descending SortDirection = "DESC"
)

// ProductFilter filters the legacy product list. Nil fields are omitted.
type ProductFilter struct {
	Page          *int
	Size          *int
	Approved      *bool
	Archived      *bool
	OnSale        *bool
	Rejected      *bool
	Blacklisted   *bool
	Barcode       string
	StockCode     string
	BrandIDs      []int64
	ProductMainID string
	StartDate     Date
	EndDate       Date
	DateQueryType DateQueryType
}

func (f ProductFilter) query() *Query {
	return NewQuery().
		Paginate(f.Page, f.Size, MaxLegacyPageSize).
		Set("approved", f.Approved).
		Set("archived", f.Archived).
		Set("onSale", f.OnSale).
		Set("rejected", f.Rejected).
		Set("blacklisted", f.Blacklisted).
		Set("barcode", f.Barcode).
		Set("stockCode", f.StockCode).
		Set("brandIds", f.BrandIDs).
		Set("productMainId", f.ProductMainID).
		Set("startDate", f.StartDate).
		Set("endDate", f.EndDate).
		Set("dateQueryType", f.DateQueryType)
}

// Order is a shipment package.
type Order struct {
	ShipmentPackageID     int64             `json:"shipmentPackageId,omitempty"`
	OrderNumber           string            `json:"orderNumber,omitempty"`
	SellerID              int64             `json:"sellerId,omitempty"`
	CustomerID            ID                `json:"customerId,omitempty"`
	CustomerFirstName     string            `json:"customerFirstName,omitempty"`
	CustomerLastName      string            `json:"customerLastName,omitempty"`
	CustomerEmail         string            `json:"customerEmail,omitempty"`
	OrderDate             int64             `json:"orderDate,omitempty"`
	Status                string            `json:"status,omitempty"`
	ShipmentPackageStatus string            `json:"shipmentPackageStatus,omitempty"`
	PackageGrossAmount    float64           `json:"packageGrossAmount,omitempty"`
	PackageSellerDiscount float64           `json:"packageSellerDiscount,omitempty"`
	PackageTyDiscount     float64           `json:"packageTyDiscount,omitempty"`
	PackageTotalDiscount  float64           `json:"packageTotalDiscount,omitempty"`
	PackageTotalPrice     float64           `json:"packageTotalPrice,omitempty"`
	DiscountDisplays      []DiscountDisplay `json:"discountDisplays,omitempty"`
	CurrencyCode          string            `json:"currencyCode,omitempty"`
	DeliveryType          string            `json:"deliveryType,omitempty"`
	CargoTrackingNumber   ID                `json:"cargoTrackingNumber,omitempty"`
	CargoProviderName     string            `json:"cargoProviderName,omitempty"`
	CancelledBy           string            `json:"cancelledBy,omitempty"`
	CancelReason          string            `json:"cancelReason,omitempty"`
	CancelReasonCode      string            `json:"cancelReasonCode,omitempty"`
	Lines                 []OrderLine       `json:"lines,omitempty"`
	ShipmentAddress       *Address          `json:"shipmentAddress,omitempty"`
	InvoiceAddress        *Address          `json:"invoiceAddress,omitempty"`
	PackageHistories      []PackageHistory  `json:"packageHistories,omitempty"`
}

// OrderLine is one item of an order.
type OrderLine struct {
	LineID                  int64   `json:"lineId,omitempty"`
	ProductID               ID      `json:"productId,omitempty"`
	ProductName             string  `json:"productName,omitempty"`
	Quantity                int     `json:"quantity,omitempty"`
	LineGrossAmount         float64 `json:"lineGrossAmount,omitempty"`
	LineUnitPrice           float64 `json:"lineUnitPrice,omitempty"`
	LineSellerDiscount      float64 `json:"lineSellerDiscount,omitempty"`
	LineTyDiscount          float64 `json:"lineTyDiscount,omitempty"`
	LineTotalDiscount       float64 `json:"lineTotalDiscount,omitempty"`
	LineItemSellerDiscount  float64 `json:"lineItemSellerDiscount,omitempty"`
	Barcode                 string  `json:"barcode,omitempty"`
	StockCode               string  `json:"stockCode,omitempty"`
	ContentID               ID      `json:"contentId,omitempty"`
	VatRate                 float64 `json:"vatRate,omitempty"`
	ProductSize             string  `json:"productSize,omitempty"`
	ProductColor            string  `json:"productColor,omitempty"`
	OrderLineItemStatusName string  `json:"orderLineItemStatusName,omitempty"`
	SellerID                int64   `json:"sellerId,omitempty"`
}

// DiscountDisplay names a discount applied to an order.
type DiscountDisplay struct {
	DisplayName    string  `json:"displayName,omitempty"`
	DiscountAmount float64 `json:"discountAmount,omitempty"`
}

// Address is a shipment, invoice or return address.
type Address struct {
	ID          int64  `json:"id,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Company     string `json:"company,omitempty"`
	Address1    string `json:"address1,omitempty"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city,omitempty"`
	District    string `json:"district,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	FullAddress string `json:"fullAddress,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	TaxNumber   string `json:"taxNumber,omitempty"`
	TaxOffice   string `json:"taxOffice,omitempty"`
}

// PackageHistory is one status transition of a package.
type PackageHistory struct {
	CreatedDate int64  `json:"createdDate,omitempty"`
	Status      string `json:"status,omitempty"`
}

// OrderFilter filters the order list.
type OrderFilter struct {
	Page             *int
	Size             *int
	StartDate        Date
	EndDate          Date
	Status           string
	OrderNumber      string
	OrderByField     string
	OrderByDirection SortDirection
}

func (f OrderFilter) query() *Query {
	return NewQuery().
		Paginate(f.Page, f.Size, MaxLegacyPageSize).
		Set("status", f.Status).
		Set("orderNumber", f.OrderNumber).
		Set("orderByField", f.OrderByField).
		Set("orderByDirection", f.OrderByDirection).
		Set("startDate", f.StartDate).
		Set("endDate", f.EndDate)
}

// Brand is a catalog brand.
type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BrandFilter paginates the brand list.
type BrandFilter struct {
	Page *int
	Size *int
}

// Category is a node of the category tree.
type Category struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	ParentID      int64      `json:"parentId,omitempty"`
	SubCategories []Category `json:"subCategories,omitempty"`
}

// CategoryAttribute is an attribute of a legacy category.
type CategoryAttribute struct {
	ID              int64                    `json:"id"`
	Name            string                   `json:"name"`
	Required        bool                     `json:"required"`
	AllowCustom     bool                     `json:"allowCustom"`
	AttributeValues []CategoryAttributeValue `json:"attributeValues,omitempty"`
}

// CategoryAttributeValue is an allowed value of a legacy category attribute.
type CategoryAttributeValue struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// QuestionStatus is the lifecycle state of a customer question.
type QuestionStatus string

// Question statuses.
const (
	WaitingForAnswer  QuestionStatus = "WAITING_FOR_ANSWER"
	WaitingForApprove QuestionStatus = "WAITING_FOR_APPROVE"
	Answered          QuestionStatus = "ANSWERED"
	Reported          QuestionStatus = "REPORTED"
	Rejected          QuestionStatus = "REJECTED"
)

// Question is a customer question about a product.
type Question struct {
	ID            ID             `json:"id"`
	CustomerID    ID             `json:"customerId,omitempty"`
	CustomerName  string         `json:"customerName,omitempty"`
	Text          string         `json:"text,omitempty"`
	QuestionText  string         `json:"questionText,omitempty"`
	AnswerText    string         `json:"answerText,omitempty"`
	ProductID     ID             `json:"productId,omitempty"`
	ProductName   string         `json:"productName,omitempty"`
	ProductMainID string         `json:"productMainId,omitempty"`
	Barcode       string         `json:"barcode,omitempty"`
	CreationDate  int64          `json:"creationDate,omitempty"`
	AnswerDate    int64          `json:"answerDate,omitempty"`
	Status        QuestionStatus `json:"status,omitempty"`
}

// QuestionFilter filters customer questions.
type QuestionFilter struct {
	Page             *int
	Size             *int
	StartDate        Date
	EndDate          Date
	Status           QuestionStatus
	Barcode          string
	OrderByField     string
	OrderByDirection SortDirection
}

func (f QuestionFilter) query() *Query {
	return NewQuery().
		Paginate(f.Page, f.Size, MaxLegacyPageSize).
		Set("status", f.Status).
		Set("barcode", f.Barcode).
		Set("orderByField", f.OrderByField).
		Set("orderByDirection", f.OrderByDirection).
		Set("startDate", f.StartDate).
		Set("endDate", f.EndDate)
}

// QuestionAnswer answers a customer question.
type QuestionAnswer struct {
	QuestionID ID
	Text       string
}

// Webhook is a seller event subscription.
type Webhook struct {
	ID                 ID       `json:"id,omitempty"`
	URL                string   `json:"url"`
	Username           string   `json:"username,omitempty"`
	Password           string   `json:"password,omitempty"`
	AuthenticationType string   `json:"authenticationType,omitempty"`
	APIKey             string   `json:"apiKey,omitempty"`
	SubscribedStatuses []string `json:"subscribedStatuses,omitempty"`
	Active             *bool    `json:"isActive,omitempty"`
	CreatedDate        int64    `json:"createdDate,omitempty"`
	LastModifiedDate   int64    `json:"lastModifiedDate,omitempty"`
}

// Claim is a customer return request.
type Claim struct {
	ClaimID             ID          `json:"claimId,omitempty"`
	OrderNumber         string      `json:"orderNumber,omitempty"`
	OrderDate           int64       `json:"orderDate,omitempty"`
	CustomerID          ID          `json:"customerId,omitempty"`
	CustomerFirstName   string      `json:"customerFirstName,omitempty"`
	CustomerLastName    string      `json:"customerLastName,omitempty"`
	ClaimDate           int64       `json:"claimDate,omitempty"`
	ClaimStatus         string      `json:"claimStatus,omitempty"`
	ClaimType           string      `json:"claimType,omitempty"`
	ClaimReason         string      `json:"claimReason,omitempty"`
	ClaimReasonCode     string      `json:"claimReasonCode,omitempty"`
	ClaimItems          []ClaimItem `json:"claimItems,omitempty"`
	CargoTrackingNumber ID          `json:"cargoTrackingNumber,omitempty"`
	CargoProviderName   string      `json:"cargoProviderName,omitempty"`
	Approved            bool        `json:"approved"`
	ReturnAddress       *Address    `json:"returnAddress,omitempty"`
}

// ClaimItem is one returned line.
type ClaimItem struct {
	LineID          int64   `json:"lineId,omitempty"`
	ProductID       ID      `json:"productId,omitempty"`
	ProductName     string  `json:"productName,omitempty"`
	Barcode         string  `json:"barcode,omitempty"`
	StockCode       string  `json:"stockCode,omitempty"`
	ContentID       ID      `json:"contentId,omitempty"`
	Quantity        int     `json:"quantity,omitempty"`
	LineUnitPrice   float64 `json:"lineUnitPrice,omitempty"`
	LineGrossAmount float64 `json:"lineGrossAmount,omitempty"`
	VatRate         float64 `json:"vatRate,omitempty"`
	ClaimItemStatus string  `json:"claimItemStatus,omitempty"`
	ClaimItemReason string  `json:"claimItemReason,omitempty"`
	ProductSize     string  `json:"productSize,omitempty"`
	ProductColor    string  `json:"productColor,omitempty"`
}

// ClaimFilter filters return requests.
type ClaimFilter struct {
	Page             *int
	Size             *int
	StartDate        Date
	EndDate          Date
	ClaimStatus      string
	OrderNumber      string
	ClaimIDs         []string
	OrderByField     string
	OrderByDirection SortDirection
}

func (f ClaimFilter) query() *Query {
	return NewQuery().
		Paginate(f.Page, f.Size, MaxLegacyPageSize).
		Set("claimStatus", f.ClaimStatus).
		Set("orderNumber", f.OrderNumber).
		Set("claimIds", f.ClaimIDs).
		Set("orderByField", f.OrderByField).
		Set("orderByDirection", f.OrderByDirection).
		Set("startDate", f.StartDate).
		Set("endDate", f.EndDate)
}

// ClaimIssueReason is a reason a seller may give when rejecting a claim.
type ClaimIssueReason struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// FinanceFilter filters settlement and other financial records. StartDate
// and EndDate are required. TransactionTypes takes precedence over
// TransactionType when both are set.
type FinanceFilter struct {
	StartDate        Date
	EndDate          Date
	TransactionType  string
	TransactionTypes []string
	PaymentDate      Date
	Page             *int
	Size             *int
}

func (f FinanceFilter) query() *Query {
	q := NewQuery().
		Set("startDate", f.StartDate).
		Set("endDate", f.EndDate)
	if len(f.TransactionTypes) > 0 {
		q.Set("transactionTypes", f.TransactionTypes)
	} else {
		q.Set("transactionType", f.TransactionType)
	}
	return q.
		Set("paymentDate", f.PaymentDate).
		Set("page", f.Page).
		Set("size", f.Size)
}

// SettlementRecord is a sale, return or discount ledger entry.
type SettlementRecord struct {
	TransactionDate   int64   `json:"transactionDate,omitempty"`
	Barcode           string  `json:"barcode,omitempty"`
	TransactionType   string  `json:"transactionType,omitempty"`
	Debt              float64 `json:"debt,omitempty"`
	Credit            float64 `json:"credit,omitempty"`
	CommissionAmount  float64 `json:"commissionAmount,omitempty"`
	SellerRevenue     float64 `json:"sellerRevenue,omitempty"`
	OrderNumber       string  `json:"orderNumber,omitempty"`
	PaymentOrderID    int64   `json:"paymentOrderId,omitempty"`
	ShipmentPackageID int64   `json:"shipmentPackageId,omitempty"`
	PaymentDate       int64   `json:"paymentDate,omitempty"`
}

// OtherFinancialsRecord is a transfer, invoice or deduction ledger entry.
type OtherFinancialsRecord struct {
	TransactionDate int64   `json:"transactionDate,omitempty"`
	TransactionType string  `json:"transactionType,omitempty"`
	Debt            float64 `json:"debt,omitempty"`
	Credit          float64 `json:"credit,omitempty"`
	Description     string  `json:"description,omitempty"`
	PaymentOrderID  int64   `json:"paymentOrderId,omitempty"`
	PaymentDate     int64   `json:"paymentDate,omitempty"`
}
