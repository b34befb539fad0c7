package main

import (
	"os"

	"github.com/charmingruby/fpidioms/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
