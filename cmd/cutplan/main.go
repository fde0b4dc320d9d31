// CutPlan is a cutting plan generator for panel saws.
//
// Reads an item list and a material list, packs the items onto stock
// boards with kerf spacing under edge-banding constraints, and writes a
// priced cutting plan (PDF report, Excel workbook, DXF drawing, QR cut
// labels).
//
// Build:
//   go build -o cutplan ./cmd/cutplan
package main

import (
	"os"

	"github.com/piwi3910/cutplan/internal/cli"
)

// Set via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
