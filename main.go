package main

import (
	"github.com/lbryio/base58.go/cmd"
)

func main() {
	cmd.Execute()
}
