package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// kindsCmd lists the subject kinds a walkthrough can create.
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the example kinds walkthroughs can create",
	Args:  cobra.NoArgs,
	RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, _ []string) error {
		for _, kind := range cc.Container.Registry().Kinds() {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), kind); err != nil {
				return err
			}
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
