package mockapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

// Fixed fixture clock so responses are reproducible.
var fixtureEpoch = time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

var brands = []trendyol.Brand{
	{ID: 1791, Name: "Koton"},
	{ID: 1792, Name: "LC Waikiki"},
	{ID: 1793, Name: "Mavi"},
	{ID: 1794, Name: "DeFacto"},
	{ID: 1795, Name: "Penti"},
}

var categories = []trendyol.Category{
	{
		ID:   403,
		Name: "Giyim",
		SubCategories: []trendyol.Category{
			{ID: 411, Name: "Gömlek", ParentID: 403},
			{ID: 412, Name: "Tişört", ParentID: 403},
		},
	},
	{ID: 368, Name: "Elektronik"},
}

var colorValues = []string{"Beyaz", "Siyah", "Kırmızı", "Mavi", "Yeşil", "Sarı", "Mor", "Gri", "Lacivert", "Bej"}

func categoryAttributesV2(categoryID int64) trendyol.CategoryAttributeList {
	return trendyol.CategoryAttributeList{
		ID:          categoryID,
		Name:        "Gömlek",
		DisplayName: "Gömlek",
		CategoryAttributes: []trendyol.CategoryAttributeV2{
			{
				Attribute:  trendyol.IDName{ID: 338, Name: "Beden"},
				CategoryID: categoryID,
				Required:   true,
				Varianter:  true,
			},
			{
				Attribute:  trendyol.IDName{ID: 47, Name: "Renk"},
				CategoryID: categoryID,
				Required:   true,
				Slicer:     true,
			},
			{
				AllowCustom: true,
				Attribute:   trendyol.IDName{ID: 14, Name: "Materyal"},
				CategoryID:  categoryID,
			},
		},
	}
}

func legacyCategoryAttributes() []trendyol.CategoryAttribute {
	values := make([]trendyol.CategoryAttributeValue, 0, 3)
	for i, name := range colorValues[:3] {
		values = append(values, trendyol.CategoryAttributeValue{ID: int64(6980 + i), Name: name})
	}
	return []trendyol.CategoryAttribute{
		{ID: 47, Name: "Renk", Required: true, AttributeValues: values},
		{ID: 14, Name: "Materyal", AllowCustom: true},
	}
}

func attributeValue(i int) trendyol.AttributeValue {
	return trendyol.AttributeValue{
		AttributeValueID:   int64(6980 + i),
		AttributeValueName: fmt.Sprintf("%s %d", colorValues[i%len(colorValues)], i/len(colorValues)+1),
	}
}

func barcode(i int) string {
	return fmt.Sprintf("MOCK-%05d", i+1)
}

func approvedProduct(i int) trendyol.ApprovedProduct {
	modified := fixtureEpoch.Add(time.Duration(i) * time.Hour).UnixMilli()
	return trendyol.ApprovedProduct{
		ContentID:        int64(9510000 + i),
		ProductMainID:    fmt.Sprintf("MAIN-%05d", i+1),
		Brand:            &trendyol.IDName{ID: brands[i%len(brands)].ID, Name: brands[i%len(brands)].Name},
		Category:         &trendyol.IDName{ID: 411, Name: "Gömlek"},
		CreationDate:     fixtureEpoch.UnixMilli(),
		LastModifiedDate: modified,
		Title:            fmt.Sprintf("Mock Gömlek %d", i+1),
		Images:           []trendyol.Image{{URL: fmt.Sprintf("https://cdn.example.com/%d.jpg", i+1)}},
		Variants: []trendyol.Variant{{
			VariantID: int64(700000 + i),
			Barcode:   barcode(i),
			OnSale:    true,
			StockCode: fmt.Sprintf("STK-%05d", i+1),
			VatRate:   10,
			Price: &trendyol.VariantPrice{
				SalePrice: 149.99 + float64(i),
				ListPrice: 199.99 + float64(i),
			},
			DeliveryOptions: &trendyol.VariantDeliveryOptions{DeliveryDuration: 2},
		}},
	}
}

func unapprovedProduct(i int) trendyol.UnapprovedProduct {
	return trendyol.UnapprovedProduct{
		ProductMainID:  fmt.Sprintf("PEND-%05d", i+1),
		Barcode:        fmt.Sprintf("PEND-%05d", i+1),
		Title:          fmt.Sprintf("Pending Tişört %d", i+1),
		Brand:          &trendyol.IDName{ID: brands[i%len(brands)].ID, Name: brands[i%len(brands)].Name},
		Category:       &trendyol.IDName{ID: 412, Name: "Tişört"},
		Quantity:       10,
		ListPrice:      99.90,
		SalePrice:      89.90,
		VatRate:        10,
		CreateDateTime: fixtureEpoch.UnixMilli(),
		RejectReasonDetails: []trendyol.RejectReasonDetail{{
			RejectReason:       "Görsel",
			RejectReasonDetail: "Ürün görseli bulanık",
		}},
	}
}

func legacyProduct(i int) trendyol.Product {
	return trendyol.Product{
		ID:            trendyol.ID(fmt.Sprintf("%032x", i+1)),
		Title:         fmt.Sprintf("Mock Gömlek %d", i+1),
		Brand:         brands[i%len(brands)].Name,
		BrandID:       brands[i%len(brands)].ID,
		CategoryID:    411,
		CategoryName:  "Gömlek",
		Barcode:       barcode(i),
		StockCode:     fmt.Sprintf("STK-%05d", i+1),
		ProductMainID: fmt.Sprintf("MAIN-%05d", i+1),
		SalePrice:     149.99 + float64(i),
		ListPrice:     199.99 + float64(i),
		Quantity:      25,
		VatRate:       10,
		Approved:      true,
		OnSale:        true,
	}
}

func order(i int, at time.Time) trendyol.Order {
	return trendyol.Order{
		ShipmentPackageID: int64(3300000 + i),
		OrderNumber:       fmt.Sprintf("10%08d", i+1),
		CustomerID:        trendyol.IDFromInt(int64(5000 + i)),
		CustomerFirstName: "Ayşe",
		CustomerLastName:  "Yılmaz",
		OrderDate:         at.UnixMilli(),
		Status:            "Created",
		PackageTotalPrice: 149.99,
		CurrencyCode:      "TRY",
		Lines: []trendyol.OrderLine{{
			LineID:        int64(800000 + i),
			ProductID:     trendyol.IDFromInt(int64(9510000 + i)),
			ProductName:   fmt.Sprintf("Mock Gömlek %d", i+1),
			Quantity:      1,
			LineUnitPrice: 149.99,
			Barcode:       barcode(i),
		}},
	}
}

var issueReasons = []trendyol.ClaimIssueReason{
	{ID: 1, Name: "Ürün hasarlı değil", Code: "NOT_DAMAGED"},
	{ID: 2, Name: "Eksik parça yok", Code: "COMPLETE"},
}

func claim(at time.Time) trendyol.Claim {
	return trendyol.Claim{
		ClaimID:     "c1a2b3c4-0000-4000-8000-000000000001",
		OrderNumber: "1000000001",
		ClaimDate:   at.UnixMilli(),
		ClaimStatus: "Created",
		ClaimItems: []trendyol.ClaimItem{{
			Barcode:         barcode(0),
			ProductName:     "Mock Gömlek 1",
			Quantity:        1,
			ClaimItemReason: "Beden uymadı",
		}},
	}
}

func questions() []trendyol.Question {
	return []trendyol.Question{
		{
			ID:           "701",
			Text:         "Bu ürün dar kalıp mı?",
			ProductName:  "Mock Gömlek 1",
			Barcode:      barcode(0),
			CreationDate: fixtureEpoch.UnixMilli(),
			Status:       trendyol.WaitingForAnswer,
		},
		{
			ID:           "702",
			Text:         "Kumaşı pamuklu mu?",
			AnswerText:   "Evet, %100 pamuk.",
			ProductName:  "Mock Gömlek 2",
			Barcode:      barcode(1),
			CreationDate: fixtureEpoch.UnixMilli(),
			Status:       trendyol.Answered,
		},
	}
}

var settlementTypes = []string{"Sale", "Return", "Discount", "Coupon"}

func settlement(i int, at time.Time) trendyol.SettlementRecord {
	return trendyol.SettlementRecord{
		TransactionDate:  at.UnixMilli(),
		Barcode:          barcode(i),
		TransactionType:  settlementTypes[i%len(settlementTypes)],
		Credit:           149.99,
		CommissionAmount: 22.5,
		SellerRevenue:    127.49,
		OrderNumber:      fmt.Sprintf("10%08d", i+1),
	}
}

var otherFinancialTypes = []string{"WireTransfer", "PaymentOrder", "DeductionInvoices"}

func otherFinancial(i int, at time.Time) trendyol.OtherFinancialsRecord {
	return trendyol.OtherFinancialsRecord{
		TransactionDate: at.UnixMilli(),
		TransactionType: otherFinancialTypes[i%len(otherFinancialTypes)],
		Debt:            float64(10 * (i + 1)),
		Description:     strings.ToLower(otherFinancialTypes[i%len(otherFinancialTypes)]),
	}
}
