package main

import (
	"os"

	"github.com/lintry/lintry/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
