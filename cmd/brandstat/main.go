// Command brandstat aggregates product CSV files into brand rating
// reports.
//
// Exit contract: 0 on success; any handled failure (configuration,
// schema, encoding, data, file access) prints a single
// "Error: ..." line on stderr and exits 1.
package main

import (
	"fmt"
	"os"

	"github.com/brandstat-labs/brandstat-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
