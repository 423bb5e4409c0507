package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

const timeLayout = "2006-01-02 15:04"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// formatMillis renders epoch millis in UTC, or "-" when unset.
func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).UTC().Format(timeLayout)
}

func printBrandsTable(w io.Writer, brands []trendyol.Brand) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\n")
	for _, b := range brands {
		tw.writef("%d\t%s\n", b.ID, b.Name)
	}
	return tw.finish()
}

// printCategoryTree prints categories indented by depth.
func printCategoryTree(w io.Writer, categories []trendyol.Category) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\n")
	var walk func(cs []trendyol.Category, depth int)
	walk = func(cs []trendyol.Category, depth int) {
		for _, c := range cs {
			tw.writef("%d\t%s%s\n", c.ID, strings.Repeat("  ", depth), c.Name)
			walk(c.SubCategories, depth+1)
		}
	}
	walk(categories, 0)
	return tw.finish()
}

func printAttributesTable(w io.Writer, attrs []trendyol.CategoryAttributeV2) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tREQUIRED\tVARIANTER\tSLICER\tCUSTOM\n")
	for _, a := range attrs {
		tw.writef("%d\t%s\t%v\t%v\t%v\t%v\n",
			a.Attribute.ID,
			a.Attribute.Name,
			a.Required,
			a.Varianter,
			a.Slicer,
			a.AllowCustom,
		)
	}
	return tw.finish()
}

func printAttributeValuesTable(w io.Writer, values []trendyol.AttributeValue) error {
	tw := newTabWriter(w)
	tw.writef("ID\tVALUE\n")
	for _, v := range values {
		tw.writef("%d\t%s\n", v.AttributeValueID, v.AttributeValueName)
	}
	return tw.finish()
}

func printApprovedTable(w io.Writer, products []trendyol.ApprovedProduct) error {
	tw := newTabWriter(w)
	tw.writef("CONTENT ID\tBARCODE\tTITLE\tBRAND\tPRICE\tON SALE\n")
	for i := range products {
		p := &products[i]
		brand := "-"
		if p.Brand != nil {
			brand = p.Brand.Name
		}
		for _, v := range p.Variants {
			price := "-"
			if v.Price != nil {
				price = fmt.Sprintf("%.2f", v.Price.SalePrice)
			}
			tw.writef("%d\t%s\t%s\t%s\t%s\t%v\n",
				p.ContentID,
				v.Barcode,
				truncate(p.Title, 40),
				brand,
				price,
				v.OnSale,
			)
		}
	}
	return tw.finish()
}

func printUnapprovedTable(w io.Writer, products []trendyol.UnapprovedProduct) error {
	tw := newTabWriter(w)
	tw.writef("BARCODE\tTITLE\tPRICE\tREJECT REASON\n")
	for i := range products {
		p := &products[i]
		reason := "-"
		if len(p.RejectReasonDetails) > 0 {
			reason = p.RejectReasonDetails[0].RejectReasonDetail
		}
		tw.writef("%s\t%s\t%.2f\t%s\n",
			p.Barcode,
			truncate(p.Title, 40),
			p.SalePrice,
			truncate(reason, 40),
		)
	}
	return tw.finish()
}

func printBasicInfo(w io.Writer, info trendyol.ProductBasicInfo) error {
	tw := newTabWriter(w)
	tw.writef("Barcode:\t%s\n", info.Barcode)
	tw.writef("Approved:\t%v\n", info.Approved)
	tw.writef("Approved At:\t%s\n", formatMillis(info.ApprovedDate))
	tw.writef("Archived:\t%v\n", info.Archived)
	tw.writef("Content ID:\t%d\n", info.ContentID)
	tw.writef("Listing ID:\t%s\n", info.ListingID)
	return tw.finish()
}

func printOrdersTable(w io.Writer, orders []trendyol.Order) error {
	tw := newTabWriter(w)
	tw.writef("ORDER\tPACKAGE\tDATE\tSTATUS\tCUSTOMER\tTOTAL\n")
	for i := range orders {
		o := &orders[i]
		tw.writef("%s\t%d\t%s\t%s\t%s %s\t%.2f %s\n",
			o.OrderNumber,
			o.ShipmentPackageID,
			formatMillis(o.OrderDate),
			o.Status,
			o.CustomerFirstName,
			o.CustomerLastName,
			o.PackageTotalPrice,
			o.CurrencyCode,
		)
	}
	return tw.finish()
}

func printQuestionsTable(w io.Writer, questions []trendyol.Question) error {
	tw := newTabWriter(w)
	tw.writef("ID\tDATE\tSTATUS\tPRODUCT\tQUESTION\n")
	for i := range questions {
		q := &questions[i]
		text := q.Text
		if text == "" {
			text = q.QuestionText
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			q.ID,
			formatMillis(q.CreationDate),
			q.Status,
			truncate(q.ProductName, 30),
			truncate(text, 50),
		)
	}
	return tw.finish()
}

func printClaimsTable(w io.Writer, claims []trendyol.Claim) error {
	tw := newTabWriter(w)
	tw.writef("CLAIM\tORDER\tDATE\tSTATUS\tITEMS\n")
	for i := range claims {
		c := &claims[i]
		tw.writef("%s\t%s\t%s\t%s\t%d\n",
			c.ClaimID,
			c.OrderNumber,
			formatMillis(c.ClaimDate),
			c.ClaimStatus,
			len(c.ClaimItems),
		)
	}
	return tw.finish()
}

func printSettlementsTable(w io.Writer, records []trendyol.SettlementRecord) error {
	tw := newTabWriter(w)
	tw.writef("DATE\tTYPE\tORDER\tBARCODE\tCREDIT\tDEBT\tCOMMISSION\tREVENUE\n")
	for i := range records {
		r := &records[i]
		tw.writef("%s\t%s\t%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\n",
			formatMillis(r.TransactionDate),
			r.TransactionType,
			r.OrderNumber,
			r.Barcode,
			r.Credit,
			r.Debt,
			r.CommissionAmount,
			r.SellerRevenue,
		)
	}
	return tw.finish()
}

func printWebhooksTable(w io.Writer, hooks []trendyol.Webhook) error {
	tw := newTabWriter(w)
	tw.writef("ID\tURL\tACTIVE\tCREATED\n")
	for i := range hooks {
		h := &hooks[i]
		active := "-"
		if h.Active != nil {
			active = fmt.Sprintf("%v", *h.Active)
		}
		tw.writef("%s\t%s\t%s\t%s\n",
			h.ID,
			h.URL,
			active,
			formatMillis(h.CreatedDate),
		)
	}
	return tw.finish()
}
