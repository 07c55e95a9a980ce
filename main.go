// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Cithare.
//
// Usage:
//
//	go run . [flags]
//	./cithare [command] [flags]
//
// This launches the Cithare CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/cithare/internal/logging"
	"github.com/toeirei/cithare/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
