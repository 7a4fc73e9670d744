package main

import (
	"os"

	"github.com/sushichan044/docfill/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
