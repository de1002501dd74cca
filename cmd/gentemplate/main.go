// Generates a sample inspection template workbook for local runs and tests.
package main

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

var header = []string{
	"STT",
	"Type",
	"TITLE",
	"Description",
	"Status",
	"Note",
	"Corrective action",
	"Target",
}

var items = [][]any{
	{1, "Ramp", "FOD check", "FOD compliance on parking bays before arrival and after departure", "", "", "", "Daily"},
	{2, "Line", "Fuel drain", "Random check of WKLY fuel drain per checklist", "", "", "", "Daily"},
	{3, "Doc", "OWP feedback", "Review previous day's OWP feedback and daily check records", "", "", "", "Daily"},
	{6, "Cabin", "Cargo compartment", "Corrosion signs around cargo door frame and linings, TDP condition", "", "", "", "Weekly"},
	{7, "Cabin", "Lavatory", "Chemical quantity and number of rinses", "", "", "", "Daily"},
	{8, "Cabin", "Life vests", "Random check of life vests under passenger seats", "", "", "", "Daily"},
	{11, "Line", "Anti-ice panel", "Anti-ice access panel position check", "", "", "", "Daily"},
	{19, "Ramp", "PTS compliance", "Transit timeline compliance against the agreed PTS", "", "", "", "Daily"},
}

func main() {
	out := "template.xlsx"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for i, name := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	for r, item := range items {
		for c, value := range item {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	if err := f.SaveAs(out); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d items)\n", out, len(items))
}
