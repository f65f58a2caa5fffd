package main

import (
	"github.com/rleclezio/digital-twin/cmd"
)

func main() {
	cmd.Execute()
}
