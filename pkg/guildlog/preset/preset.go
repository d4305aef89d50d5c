// Package preset provides reusable filter definitions for guild logs.
// It allows users to keep named filter and sort combinations in YAML files
// instead of repeating command-line flags.
package preset

import "github.com/guildlog/guildlog-go/pkg/guildlog"

// File represents the structure of a YAML preset file.
//
// Example YAML file:
//
//	version: 1
//	name: january-deaths
//	filters:
//	  category: Death
//	  start_date: 2024-01-01
//	  end_date: 2024-01-31
//	  sort_by: timestamp
type File struct {
	// Version is the preset file format version. Currently only version 1
	// is supported.
	Version int `yaml:"version"`

	// Name optionally labels the preset for display purposes.
	Name string `yaml:"name,omitempty"`

	// Filters holds the filter and sort fields.
	Filters Filters `yaml:"filters"`
}

// Filters mirrors guildlog.Criteria field for field. All fields are
// optional, but a preset with every field empty is rejected.
type Filters struct {
	// Player is a case-insensitive substring match on the player name.
	Player string `yaml:"player,omitempty"`

	// Category is a case-insensitive substring match on the category label.
	Category string `yaml:"category,omitempty"`

	// StartDate and EndDate bound the timestamp as YYYY-MM-DD dates.
	// Both must be set for the range to take effect.
	StartDate string `yaml:"start_date,omitempty"`
	EndDate   string `yaml:"end_date,omitempty"`

	// Find is a case-insensitive substring match over all record fields.
	Find string `yaml:"find,omitempty"`

	// SortBy selects the sort order: timestamp, player, category, or level.
	SortBy string `yaml:"sort_by,omitempty"`
}

// Criteria converts the preset into filter criteria. The conversion is a
// plain field mapping; guildlog.ApplyFilters re-validates dates and the
// sort key, so a hand-built File that skipped Validate still fails loudly.
func (f *File) Criteria() guildlog.Criteria {
	return guildlog.Criteria{
		Player:    f.Filters.Player,
		Category:  f.Filters.Category,
		StartDate: f.Filters.StartDate,
		EndDate:   f.Filters.EndDate,
		Find:      f.Filters.Find,
		SortBy:    guildlog.SortKey(f.Filters.SortBy),
	}
}
