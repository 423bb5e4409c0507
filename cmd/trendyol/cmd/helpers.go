package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

// render fails on an unsuccessful envelope, otherwise writes the data as
// JSON or through table.
func render[T any](a *app, cmd *cobra.Command, resp trendyol.Response[T], table func(io.Writer, T) error) error {
	if err := resp.Err(); err != nil {
		return err
	}
	if a.jsonOutput() {
		return outputJSON(cmd.OutOrStdout(), resp.Data)
	}
	return table(cmd.OutOrStdout(), resp.Data)
}

// renderList is render for list data, printing empty instead of an empty
// table.
func renderList[T any](
	a *app,
	cmd *cobra.Command,
	resp trendyol.Response[[]T],
	empty string,
	table func(io.Writer, []T) error,
) error {
	return render(a, cmd, resp, func(w io.Writer, items []T) error {
		if len(items) == 0 {
			_, err := fmt.Fprintln(w, empty)
			return err
		}
		return table(w, items)
	})
}

// walkPages fetches the first page and, when all is set, follows each
// continuation, appending its content to the first page. A cursor the
// server already handed out ends the walk with a failure.
func walkPages[T any](
	all bool,
	fetch func(next *trendyol.Continuation) trendyol.Response[trendyol.Page[T]],
) trendyol.Response[trendyol.Page[T]] {
	acc := fetch(nil)
	if !all || !acc.Success {
		return acc
	}

	seen := map[string]bool{}
	cur := acc.Data
	for {
		next, ok := cur.Next()
		if !ok {
			break
		}
		if next.UsesCursor() {
			if seen[next.NextPageToken] {
				return trendyol.Response[trendyol.Page[T]]{
					Error: fmt.Sprintf("pagination stalled: cursor %q repeated", next.NextPageToken),
				}
			}
			seen[next.NextPageToken] = true
		}
		resp := fetch(&next)
		if !resp.Success {
			return resp
		}
		acc.Data.Content = append(acc.Data.Content, resp.Data.Content...)
		cur = resp.Data
	}

	acc.Data.Page = cur.Page
	acc.Data.NextPageToken = ""
	return acc
}

// optionalInt returns the flag value only when it was given.
func optionalInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return nil
	}
	return &v
}

func parseID(s, name string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer (got %q)", name, s)
	}
	return id, nil
}

// dateWindow resolves --start and --end, defaulting to the last days days.
func dateWindow(start, end string, days int) (trendyol.Date, trendyol.Date, error) {
	now := time.Now()
	from, to := trendyol.DaysAgo(days, now), trendyol.DateFromTime(now)

	var err error
	if start != "" {
		if from, err = trendyol.ParseDate(start); err != nil {
			return from, to, fmt.Errorf("--start: %w", err)
		}
	}
	if end != "" {
		if to, err = trendyol.ParseDate(end); err != nil {
			return from, to, fmt.Errorf("--end: %w", err)
		}
	}
	return from, to, nil
}
