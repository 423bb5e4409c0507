package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

func (a *app) ordersCmd() *cobra.Command {
	ordersRoot := &cobra.Command{
		Use:   "orders",
		Short: "Query shipment packages",
	}

	var days, size int
	recent := &cobra.Command{
		Use:   "recent",
		Short: "List orders from the last few days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, done, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			defer done()

			return renderList(a, cmd, c.RecentOrders(cmd.Context(), days, size), "No orders found.", printOrdersTable)
		},
	}
	recent.Flags().IntVar(&days, "days", trendyol.DefaultRecentDays, "how many days back to look")
	recent.Flags().IntVar(&size, "size", trendyol.DefaultRecentSize, "page size (max 200)")

	ordersRoot.AddCommand(recent)
	return ordersRoot
}

func (a *app) questionsCmd() *cobra.Command {
	questionsRoot := &cobra.Command{
		Use:   "questions",
		Short: "Read and answer customer questions",
	}

	var size int
	unanswered := &cobra.Command{
		Use:   "unanswered",
		Short: "List questions waiting for an answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, done, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			defer done()

			return renderList(a, cmd, c.UnansweredQuestions(cmd.Context(), size), "No unanswered questions.", printQuestionsTable)
		},
	}
	unanswered.Flags().IntVar(&size, "size", trendyol.DefaultRecentSize, "page size (max 200)")

	answer := &cobra.Command{
		Use:   "answer <question-id> <text>",
		Short: "Answer a customer question",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, done, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := c.AnswerQuestion(cmd.Context(), trendyol.QuestionAnswer{
				QuestionID: trendyol.ID(args[0]),
				Text:       args[1],
			})
			if err != nil {
				return err
			}
			if err := resp.Err(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Answered question %s.\n", args[0])
			return err
		},
	}

	questionsRoot.AddCommand(unanswered, answer)
	return questionsRoot
}

func (a *app) claimsCmd() *cobra.Command {
	claimsRoot := &cobra.Command{
		Use:   "claims",
		Short: "Query customer returns",
	}

	var days, size int
	recent := &cobra.Command{
		Use:   "recent",
		Short: "List claims from the last few days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, done, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			defer done()

			return renderList(a, cmd, c.RecentClaims(cmd.Context(), days, size), "No claims found.", printClaimsTable)
		},
	}
	recent.Flags().IntVar(&days, "days", trendyol.DefaultRecentDays, "how many days back to look")
	recent.Flags().IntVar(&size, "size", trendyol.DefaultRecentSize, "page size (max 200)")

	claimsRoot.AddCommand(recent)
	return claimsRoot
}

func (a *app) settlementsCmd() *cobra.Command {
	var (
		start, end string
		days       int
		types      []string
	)

	cmd := &cobra.Command{
		Use:   "settlements",
		Short: "List sale, return and discount settlements",
		Long: "List settlement records between --start and --end. Dates accept\n" +
			"2006-01-02 or RFC 3339; without them the last --days days are used.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, to, err := dateWindow(start, end, days)
			if err != nil {
				return err
			}

			c, done, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := c.Settlements(cmd.Context(), trendyol.FinanceFilter{
				StartDate:        from,
				EndDate:          to,
				TransactionTypes: types,
				Page:             optionalInt(cmd, "page"),
				Size:             optionalInt(cmd, "size"),
			})
			if err != nil {
				return err
			}
			return renderList(a, cmd, resp, "No settlements found.", printSettlementsTable)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start of the range")
	cmd.Flags().StringVar(&end, "end", "", "end of the range")
	cmd.Flags().IntVar(&days, "days", trendyol.DefaultRecentDays, "range length when --start is omitted")
	cmd.Flags().StringSliceVar(&types, "type", nil, "transaction types, e.g. Sale,Return")
	cmd.Flags().Int("page", 0, "page index")
	cmd.Flags().Int("size", 0, "page size (500 or 1000)")
	return cmd
}

func (a *app) webhooksCmd() *cobra.Command {
	webhooksRoot := &cobra.Command{
		Use:   "webhooks",
		Short: "Manage seller webhooks",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List webhooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, done, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			defer done()

			return renderList(a, cmd, c.Webhooks(cmd.Context()), "No webhooks found.", printWebhooksTable)
		},
	}

	var statuses []string
	create := &cobra.Command{
		Use:   "create <url>",
		Short: "Subscribe a URL to order events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, done, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := c.CreateWebhook(cmd.Context(), trendyol.Webhook{
				URL:                args[0],
				SubscribedStatuses: statuses,
			})
			if err != nil {
				return err
			}
			if err := resp.Err(); err != nil {
				return err
			}
			if a.jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp.Data)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created webhook %s.\n", resp.Data.ID)
			return err
		},
	}
	create.Flags().StringSliceVar(&statuses, "status", nil, "order statuses to subscribe to")

	remove := &cobra.Command{
		Use:   "delete <webhook-id>",
		Short: "Delete a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, done, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := c.DeleteWebhook(cmd.Context(), trendyol.ID(args[0]))
			if err != nil {
				return err
			}
			if err := resp.Err(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted webhook %s.\n", args[0])
			return err
		},
	}

	webhooksRoot.AddCommand(list, create, remove)
	return webhooksRoot
}
