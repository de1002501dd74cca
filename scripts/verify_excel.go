package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Standalone check for a generated report workbook: verifies the header
// shape, that every data line carries the session columns, and tallies the
// status column. Usage: go run scripts/verify_excel.go <report.xlsx>
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: verify_excel <report.xlsx>")
	}
	filename := os.Args[1]

	f, err := excelize.OpenFile(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]
	rows, err := f.GetRows(sheet)
	if err != nil {
		log.Fatal(err)
	}
	if len(rows) == 0 {
		log.Fatal("workbook is empty")
	}

	header := rows[0]
	fmt.Printf("=== REPORT CHECK: %s ===\n", filename)
	fmt.Printf("Sheet: %s\n", sheet)
	fmt.Printf("Header: %v\n", header)
	fmt.Printf("Data lines: %d\n\n", len(rows)-1)

	colIndex := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		return -1
	}

	ok := true
	for _, required := range []string{"STT", "Date", "INSPECTOR", "Status"} {
		if colIndex(required) < 0 {
			fmt.Printf("MISSING COLUMN: %s\n", required)
			ok = false
		}
	}
	if colIndex("DATE") >= 0 {
		fmt.Println("UNEXPECTED COLUMN: DATE should not survive export")
		ok = false
	}

	dateIdx := colIndex("Date")
	inspIdx := colIndex("INSPECTOR")
	statusIdx := colIndex("Status")
	tally := make(map[string]int)

	for i, row := range rows[1:] {
		line := i + 2
		if dateIdx >= 0 && (dateIdx >= len(row) || strings.TrimSpace(row[dateIdx]) == "") {
			fmt.Printf("line %d: Date is empty\n", line)
			ok = false
		}
		if inspIdx >= 0 && (inspIdx >= len(row) || strings.TrimSpace(row[inspIdx]) == "") {
			fmt.Printf("line %d: INSPECTOR is empty\n", line)
			ok = false
		}
		if statusIdx >= 0 && statusIdx < len(row) {
			if status := strings.TrimSpace(row[statusIdx]); status != "" {
				tally[status]++
			}
		}
	}

	fmt.Println()
	fmt.Println("Status tally:")
	for status, n := range tally {
		fmt.Printf("  %s: %d\n", status, n)
	}

	fmt.Println()
	if ok {
		fmt.Println("Report structure: OK")
	} else {
		fmt.Println("Report structure: PROBLEMS FOUND")
		os.Exit(1)
	}
}
