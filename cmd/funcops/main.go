// Command funcops runs programs under the funcops decorators: optional
// timing and telemetry, terminating with the program's exit status.
package main

import (
	"os"

	"github.com/jonwraymond/funcops/cmd/funcops/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(2)
	}
}
