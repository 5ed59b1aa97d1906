package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/CARMI-Logistics/sarv-cli/internal/toast"
)

// printToast renders store feedback on the terminal as it happens.
func printToast(item toast.Item) {
	switch item.Severity {
	case toast.SeverityError:
		fmt.Fprintf(os.Stderr, "✗ %s\n", item.Message)
	case toast.SeveritySuccess:
		fmt.Printf("✓ %s\n", item.Message)
	default:
		fmt.Printf("· %s\n", item.Message)
	}
}

// printJSON pretty-prints v when --json was passed; returns whether it did.
func printJSON(v any) bool {
	if !jsonOutput {
		return false
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Printf("Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
	return true
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
}
