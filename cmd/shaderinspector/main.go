package main

import (
	"os"

	"shaderinspector/internal/cli"
)

func main() { os.Exit(cli.Main()) }
