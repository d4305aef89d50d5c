package guildlog

import (
	"time"

	"github.com/guildlog/guildlog-go/pkg/guildlog/record"
)

// Record and Category are re-exported from the record subpackage so most
// callers only import this package.
type (
	Record   = record.Record
	Category = record.Category
)

// The closed category set, in classification priority order.
const (
	CategoryDeath     = record.CategoryDeath
	CategoryLevelUp   = record.CategoryLevelUp
	CategoryJoin      = record.CategoryJoin
	CategoryLeave     = record.CategoryLeave
	CategoryPromotion = record.CategoryPromotion
	CategoryDemotion  = record.CategoryDemotion
	CategoryOnline    = record.CategoryOnline
	CategoryOther     = record.CategoryOther
)

// DisplayTimeLayout is the layout record timestamps serialize to.
const DisplayTimeLayout = record.DisplayTimeLayout

// Categories returns the closed category set in priority order.
func Categories() []Category {
	return record.Categories()
}

// ReferenceLocation returns the fixed timezone all record timestamps are
// normalized to.
func ReferenceLocation() *time.Location {
	return record.ReferenceLocation()
}
