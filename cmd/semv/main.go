package main

import (
	"os"

	"github.com/ariel-frischer/semv/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
