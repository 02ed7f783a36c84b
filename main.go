package main

import (
	"github.com/scicomp/gofdm/cmd"
)

func main() {
	cmd.Execute()
}
