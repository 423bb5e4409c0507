package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

func (a *app) pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check connectivity and credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, done, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			defer done()

			if err := c.Ping(cmd.Context()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "OK: seller %s at %s\n", c.SellerID(), c.BaseURL())
			return err
		},
	}
}

func (a *app) brandsCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "brands",
		Short: "List brands or look one up by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, done, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			defer done()

			var resp trendyol.Response[[]trendyol.Brand]
			if name != "" {
				if resp, err = c.BrandsByName(cmd.Context(), name); err != nil {
					return err
				}
			} else {
				resp = c.Brands(cmd.Context(), trendyol.BrandFilter{
					Page: optionalInt(cmd, "page"),
					Size: optionalInt(cmd, "size"),
				})
			}
			return renderList(a, cmd, resp, "No brands found.", printBrandsTable)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "exact brand name to look up")
	cmd.Flags().Int("page", 0, "page index")
	cmd.Flags().Int("size", 0, "page size (max 200)")
	return cmd
}

func (a *app) categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show the category tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, done, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			defer done()

			return renderList(a, cmd, c.Categories(cmd.Context()), "No categories found.", printCategoryTree)
		},
	}

	cmd.AddCommand(a.categoryAttributesCmd(), a.categoryValuesCmd())
	return cmd
}

func (a *app) categoryAttributesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attributes <category-id>",
		Short: "List the attributes of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, err := parseID(args[0], "category-id")
			if err != nil {
				return err
			}

			c, done, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := c.CategoryAttributesV2(cmd.Context(), categoryID)
			if err != nil {
				return err
			}
			return render(a, cmd, resp, func(w io.Writer, l trendyol.CategoryAttributeList) error {
				return printAttributesTable(w, l.CategoryAttributes)
			})
		},
	}
}

func (a *app) categoryValuesCmd() *cobra.Command {
	var (
		name string
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "values <category-id> <attribute-id>",
		Short: "List the allowed values of a category attribute",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, err := parseID(args[0], "category-id")
			if err != nil {
				return err
			}
			attributeID, err := parseID(args[1], "attribute-id")
			if err != nil {
				return err
			}

			c, done, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			defer done()

			filter := trendyol.AttributeValueFilter{
				Page:               optionalInt(cmd, "page"),
				Size:               optionalInt(cmd, "size"),
				AttributeValueName: name,
			}

			var callErr error
			resp := walkPages(all, func(next *trendyol.Continuation) trendyol.Response[trendyol.Page[trendyol.AttributeValue]] {
				f := filter
				if next != nil {
					f = filter.WithContinuation(*next)
				}
				r, err := c.CategoryAttributeValuesV2(cmd.Context(), categoryID, attributeID, f)
				if err != nil {
					callErr = err
				}
				return r
			})
			if callErr != nil {
				return callErr
			}

			return render(a, cmd, resp, func(w io.Writer, p trendyol.Page[trendyol.AttributeValue]) error {
				return printAttributeValuesTable(w, p.Content)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filter values by name")
	cmd.Flags().BoolVar(&all, "all", false, "follow pagination to the last page")
	cmd.Flags().Int("page", 0, "page index")
	cmd.Flags().Int("size", 0, "page size (max 1000)")
	return cmd
}
