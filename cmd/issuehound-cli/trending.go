package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var trendingCmd = &cobra.Command{
	Use:   "trending [query...]",
	Short: "Show top starred repositories for a query, or recent risers",
	RunE: func(cmd *cobra.Command, args []string) error {
		repos, err := cli.trending.Top(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		if len(repos) == 0 {
			fmt.Println(dimStyle.Render("nothing trending"))
			return nil
		}
		for _, r := range repos {
			fmt.Printf("%s %s\n", titleStyle.Render(r.FullName),
				dimStyle.Render(fmt.Sprintf("%s stars, %s open issues",
					humanize.Comma(int64(r.Stargazers)), humanize.Comma(int64(r.OpenIssues)))))
			if r.Description != "" {
				fmt.Println("    " + r.Description)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trendingCmd)
}
