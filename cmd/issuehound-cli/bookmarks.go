package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	bookmarksdom "issuehound/internal/services/bookmarks/domain"
)

var bookmarksCmd = &cobra.Command{
	Use:     "bookmarks",
	Short:   "List bookmarked issues, newest first",
	Aliases: []string{"bm"},
	RunE: func(cmd *cobra.Command, args []string) error {
		xs, err := cli.bookmarks.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(xs) == 0 {
			fmt.Println(dimStyle.Render("no bookmarks yet"))
			return nil
		}
		for _, it := range xs {
			fmt.Println(issueLine(it, true))
		}
		return nil
	},
}

var bookmarksToggleCmd = &cobra.Command{
	Use:   "toggle <owner/repo> <number>",
	Short: "Bookmark an issue, or remove it if already bookmarked",
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
		res, err := cli.bookmarks.Toggle(cmd.Context(), bookmarksdom.ToggleInput{Issue: it})
		if err != nil {
			return err
		}
		if res.Bookmarked {
			fmt.Printf("bookmarked %s#%d\n", full, number)
		} else {
			fmt.Printf("removed %s#%d\n", full, number)
		}
		return nil
	},
}

var bookmarksRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a bookmark by issue id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("issue id must be numeric, got %q", args[0])
		}
		if err := cli.bookmarks.Remove(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("removed")
		return nil
	},
}

func init() {
	bookmarksCmd.AddCommand(bookmarksToggleCmd)
	bookmarksCmd.AddCommand(bookmarksRemoveCmd)
	rootCmd.AddCommand(bookmarksCmd)
}
