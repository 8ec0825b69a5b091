package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var limitCmd = &cobra.Command{
	Use:   "limit",
	Short: "Show the remaining GitHub search budget",
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, err := cli.auth.Token(cmd.Context())
		if err != nil {
			return err
		}
		if tok != "" {
			// A probe refreshes the window without spending a search call
			if _, err := cli.gh.ProbeRateLimit(cmd.Context()); err != nil {
				fmt.Println(dimStyle.Render("probe failed, showing last known window"))
			}
		}

		snap := cli.gate.Snapshot()
		fmt.Printf("%s requests remaining\n", titleStyle.Render(fmt.Sprint(snap.Remaining)))
		if cli.gate.Limited() {
			fmt.Println(newStyle.Render("rate limited"), dimStyle.Render("resets "+humanize.Time(time.Unix(snap.ResetAt, 0))))
		} else if snap.ResetAt > 0 {
			fmt.Println(dimStyle.Render("window resets " + humanize.Time(time.Unix(snap.ResetAt, 0))))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(limitCmd)
}
