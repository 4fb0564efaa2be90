// cmd/catalogctl/main.go
package main

import (
	"os"

	"github.com/dalemusser/techhub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
