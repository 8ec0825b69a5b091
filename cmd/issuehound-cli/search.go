package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	coresearch "issuehound/internal/core/search"
	searchdom "issuehound/internal/services/search/domain"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search GitHub issues",
	RunE: func(cmd *cobra.Command, args []string) error {
		labels, _ := cmd.Flags().GetStringSlice("label")
		lang, _ := cmd.Flags().GetString("lang")
		state, _ := cmd.Flags().GetString("state")
		sort, _ := cmd.Flags().GetString("sort")
		order, _ := cmd.Flags().GetString("order")
		unassigned, _ := cmd.Flags().GetBool("unassigned")
		pages, _ := cmd.Flags().GetInt("pages")

		f := coresearch.Default()
		f.Labels = labels
		f.Language = lang
		if state != "" {
			f.State = state
		}
		if sort != "" {
			f.Sort = sort
		}
		if order != "" {
			f.Order = order
		}
		f.Unassigned = unassigned

		in := searchdom.SearchInput{Query: strings.Join(args, " "), Filters: f}
		res, err := cli.search.Search(cmd.Context(), in)
		if err != nil {
			return err
		}
		for p := 1; p < pages && res.HasMore; p++ {
			if res, err = cli.search.LoadMore(cmd.Context(), in); err != nil {
				return err
			}
		}

		if len(res.Items) == 0 {
			fmt.Println(dimStyle.Render("no issues found"))
			return nil
		}
		for _, it := range res.Items {
			fmt.Println(issueLine(it.Issue, it.Seen))
		}
		fmt.Println(dimStyle.Render(fmt.Sprintf("%d of %d issues", len(res.Items), res.Total)))
		return nil
	},
}

func init() {
	searchCmd.Flags().StringSlice("label", nil, "Filter by label, repeatable")
	searchCmd.Flags().String("lang", "", "Filter by language")
	searchCmd.Flags().String("state", "", "Issue state: open or closed")
	searchCmd.Flags().String("sort", "", "Sort key: created, updated or comments")
	searchCmd.Flags().String("order", "", "Sort order: asc or desc")
	searchCmd.Flags().Bool("unassigned", false, "Only unassigned issues")
	searchCmd.Flags().Int("pages", 1, "Number of result pages to load")
	rootCmd.AddCommand(searchCmd)
}
