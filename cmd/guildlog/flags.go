package main

import (
	"github.com/guildlog/guildlog-go/pkg/guildlog"
	"github.com/guildlog/guildlog-go/pkg/guildlog/preset"
	"github.com/spf13/cobra"
)

// filterFlags holds the filter and sort flags shared by show and export.
type filterFlags struct {
	player     string
	category   string
	startDate  string
	endDate    string
	find       string
	sortBy     string
	presetPath string
}

func (ff *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&ff.player, "player", "p", "",
		"Keep records whose player name contains this (case-insensitive)")
	cmd.Flags().StringVarP(&ff.category, "category", "c", "",
		"Keep records whose category contains this (case-insensitive)")
	cmd.Flags().StringVar(&ff.startDate, "from", "",
		"Start of the date range (YYYY-MM-DD, requires --to)")
	cmd.Flags().StringVar(&ff.endDate, "to", "",
		"End of the date range, inclusive (YYYY-MM-DD, requires --from)")
	cmd.Flags().StringVar(&ff.find, "find", "",
		"Keep records where any field contains this (case-insensitive)")
	cmd.Flags().StringVarP(&ff.sortBy, "sort", "s", "",
		"Sort by: timestamp, player, category, or level")
	cmd.Flags().StringVar(&ff.presetPath, "preset", "",
		"YAML preset file with filter criteria (explicit flags win)")
}

// criteria merges the preset file, when given, with the flags the user
// actually set. An explicit flag always beats the preset value.
func (ff *filterFlags) criteria(cmd *cobra.Command) (guildlog.Criteria, error) {
	var c guildlog.Criteria
	if ff.presetPath != "" {
		pf, err := preset.Load(ff.presetPath)
		if err != nil {
			return guildlog.Criteria{}, err
		}
		c = pf.Criteria()
	}

	flags := cmd.Flags()
	if flags.Changed("player") {
		c.Player = ff.player
	}
	if flags.Changed("category") {
		c.Category = ff.category
	}
	if flags.Changed("from") {
		c.StartDate = ff.startDate
	}
	if flags.Changed("to") {
		c.EndDate = ff.endDate
	}
	if flags.Changed("find") {
		c.Find = ff.find
	}
	if flags.Changed("sort") {
		c.SortBy = guildlog.SortKey(ff.sortBy)
	}
	return c, nil
}
