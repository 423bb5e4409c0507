package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

func (a *app) productsCmd() *cobra.Command {
	productsRoot := &cobra.Command{
		Use:   "products",
		Short: "Query seller products",
	}

	productsRoot.AddCommand(
		a.productsApprovedCmd(),
		a.productsUnapprovedCmd(),
		a.productsInfoCmd(),
	)

	return productsRoot
}

// productFilterFlags registers the flags shared by the v2 product lists and
// returns a func that builds the filter from them.
func productFilterFlags(cmd *cobra.Command) func() trendyol.ProductFilterV2 {
	var (
		barcode   string
		status    string
		stockCode string
		brandIDs  []int64
	)
	cmd.Flags().StringVar(&barcode, "barcode", "", "filter by barcode")
	cmd.Flags().StringVar(&status, "status", "", "filter by product status")
	cmd.Flags().StringVar(&stockCode, "stock-code", "", "filter by stock code")
	cmd.Flags().Int64SliceVar(&brandIDs, "brand-id", nil, "filter by brand id (repeatable)")
	cmd.Flags().Int("page", 0, "page index")
	cmd.Flags().Int("size", 0, "page size")
	cmd.Flags().Bool("all", false, "follow pagination to the last page")

	return func() trendyol.ProductFilterV2 {
		return trendyol.ProductFilterV2{
			Barcode:   barcode,
			Status:    status,
			StockCode: stockCode,
			BrandIDs:  brandIDs,
			Page:      optionalInt(cmd, "page"),
			Size:      optionalInt(cmd, "size"),
		}
	}
}

func (a *app) productsApprovedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approved",
		Short: "List approved products",
		Args:  cobra.NoArgs,
	}
	filterFn := productFilterFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		c, done, err := a.newClient(cmd)
		if err != nil {
			return err
		}
		defer done()

		all, _ := cmd.Flags().GetBool("all")
		filter := filterFn()
		resp := walkPages(all, func(next *trendyol.Continuation) trendyol.Response[trendyol.Page[trendyol.ApprovedProduct]] {
			f := filter
			if next != nil {
				f = filter.WithContinuation(*next)
			}
			return c.ApprovedProductsV2(cmd.Context(), f)
		})
		return render(a, cmd, resp, func(w io.Writer, p trendyol.Page[trendyol.ApprovedProduct]) error {
			return printApprovedTable(w, p.Content)
		})
	}
	return cmd
}

func (a *app) productsUnapprovedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unapproved",
		Short: "List products awaiting approval or rejected",
		Args:  cobra.NoArgs,
	}
	filterFn := productFilterFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		c, done, err := a.newClient(cmd)
		if err != nil {
			return err
		}
		defer done()

		all, _ := cmd.Flags().GetBool("all")
		filter := filterFn()
		resp := walkPages(all, func(next *trendyol.Continuation) trendyol.Response[trendyol.Page[trendyol.UnapprovedProduct]] {
			f := filter
			if next != nil {
				f = filter.WithContinuation(*next)
			}
			return c.UnapprovedProductsV2(cmd.Context(), f)
		})
		return render(a, cmd, resp, func(w io.Writer, p trendyol.Page[trendyol.UnapprovedProduct]) error {
			return printUnapprovedTable(w, p.Content)
		})
	}
	return cmd
}

func (a *app) productsInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <barcode>",
		Short: "Show the approval state of a barcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, done, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := c.ProductBasicInfoV2(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return render(a, cmd, resp, printBasicInfo)
		},
	}
}
