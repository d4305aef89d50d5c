package guildlog_test

import (
	"fmt"
	"log"
	"os"

	"github.com/guildlog/guildlog-go/pkg/guildlog"
)

// ExampleParseLine demonstrates parsing a single guild log line.
func ExampleParseLine() {
	line := "5) 3 Jan '24 09:15pm : Aria Nightshade has died at level 42; slain by Dragon"

	rec, err := guildlog.ParseLine(line)
	if err != nil {
		log.Printf("timestamp dropped: %v", err)
		return
	}

	if rec == nil {
		// Line is not a guild log entry
		fmt.Println("Not a log entry")
		return
	}

	fmt.Printf("Player: %s\n", rec.Player)
	fmt.Printf("Category: %s\n", rec.Category)
	fmt.Printf("Details: %s\n", rec.Details)
	fmt.Printf("Time: %s\n", rec.TimestampDisplay())
	// Output:
	// Player: Aria Nightshade
	// Category: Death
	// Details: slain by Dragon
	// Time: 2024-01-03 04:15:00 PM
}

// ExampleLoadFromText demonstrates loading a whole log export.
func ExampleLoadFromText() {
	text := `1) 3 Jan '24 09:15pm : Aria has died
2) 12 Feb '24 08:30am : Baldric JOINED the guild LVL: 7
system notice, not an entry`

	records, diags, err := guildlog.LoadFromText(text)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d records, %d diagnostics\n", len(records), len(diags))
	for _, rec := range records {
		fmt.Printf("%s: %s\n", rec.Player, rec.Category)
	}
	// Output:
	// 2 records, 1 diagnostics
	// Aria: Death
	// Baldric: Join
}

// ExampleApplyFilters demonstrates filtering and sorting records.
func ExampleApplyFilters() {
	text := `1) 3 Jan '24 09:15pm : Aria has died
2) 2 Jan '24 08:30am : Borin has died
3) 12 Feb '24 01:00pm : Corin JOINED the guild LVL: 3`

	records, _, err := guildlog.LoadFromText(text)
	if err != nil {
		log.Fatal(err)
	}

	deaths, err := guildlog.ApplyFilters(records, guildlog.Criteria{
		Category: "death",
		SortBy:   guildlog.SortTimestamp,
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, rec := range deaths {
		fmt.Println(rec.Player)
	}
	// Output:
	// Borin
	// Aria
}

// ExampleExportCSV demonstrates CSV export of records.
func ExampleExportCSV() {
	records := []guildlog.Record{
		{Player: "Corin", RawEvent: "has Left the guild", Category: guildlog.CategoryLeave},
	}

	if err := guildlog.ExportCSV(os.Stdout, records); err != nil {
		log.Fatal(err)
	}
	// Output:
	// Timestamp,Player,Event,Details,Level,Event Type
	// ,Corin,has Left the guild,,,Leave
}
