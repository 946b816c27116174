// Command acedump decodes one ACE table and prints its JSON summary.
// It is a small illustrative binary, not the xsdir-aware listing tool
// (an external collaborator, out of scope for this module).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/NuclearData/DataListing"
)

func main() {
	path := flag.String("f", "", "path to an ACE table file")
	address := flag.Int("line", 1, "1-based starting line within the file")
	flag.Parse()

	if *path == "" {
		log.Fatal("acedump: -f is required")
	}

	table, err := ace.DecodeFile(*path, *address)
	if err != nil {
		log.Fatalf("acedump: %v", err)
	}

	summary := ace.Summarize(table)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		log.Fatalf("acedump: %v", err)
	}

	for _, d := range table.Diagnostics {
		fmt.Fprintln(os.Stderr, "acedump: diagnostic:", d.String())
	}
}
