package main

import (
	"fmt"

	"github.com/guildlog/guildlog-go/pkg/guildlog"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the event categories records classify into",
	Long: `List every category a record can classify into, in the priority
order the classifier applies them. Useful as values for --category.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range guildlog.Categories() {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
