package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <owner/repo> <number>",
	Short: "Show one issue with its rendered description",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		full := args[0]
		if strings.Count(full, "/") != 1 {
			return fmt.Errorf("repository must be owner/name, got %q", full)
		}
		number, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("issue number must be numeric, got %q", args[1])
		}

		it, err := cli.gh.GetIssue(cmd.Context(), full, number)
		if err != nil {
			return err
		}

		bookmarked, err := cli.bookmarks.IsBookmarked(cmd.Context(), it.ID)
		if err != nil {
			return err
		}

		fmt.Println(issueLine(it, true))
		if bookmarked {
			fmt.Println(labelStyle.Render("bookmarked"))
		}
		fmt.Println()
		fmt.Println(renderBody(it.Body))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
