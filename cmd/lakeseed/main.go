// Command lakeseed seeds the trading research data lake.
package main

import (
	"os"

	"github.com/custodia-labs/lakeseed/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
